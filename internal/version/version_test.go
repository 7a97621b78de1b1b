package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.Contains(t, info.Platform, "/")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
		Platform:  "linux/amd64",
		Dependencies: map[string]string{
			"github.com/shopspring/decimal": "v1.4.0",
		},
	}

	str := info.String()

	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
	assert.Contains(t, str, "linux/amd64")
	assert.Contains(t, str, "github.com/shopspring/decimal v1.4.0")
	assert.NotContains(t, str, "cuelang.org/go")
}

func TestInfoString_NoDependencies(t *testing.T) {
	str := Info{Version: "v1.0.0"}.String()
	assert.NotContains(t, str, "Libraries")
}

func TestMatchDependencies(t *testing.T) {
	deps := []*debug.Module{
		{Path: "github.com/shopspring/decimal", Version: "v1.4.0"},
		{Path: "cuelang.org/go", Version: "v0.15.4", Replace: &debug.Module{Path: "../cue", Version: "v0.15.5"}},
		{Path: "github.com/spf13/cobra", Version: "v1.10.2"},
		nil,
	}

	got := matchDependencies(deps, reportedModules)

	assert.Equal(t, map[string]string{
		"github.com/shopspring/decimal": "v1.4.0",
		"cuelang.org/go":                "v0.15.5",
	}, got)
	assert.Nil(t, matchDependencies(nil, reportedModules))
}
