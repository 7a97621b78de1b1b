// Package version provides version information for the bundle-expander CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Modules whose versions affect expansion output and are reported by
// `bundle-expander version`.
var reportedModules = []string{
	"github.com/shopspring/decimal",
	"cuelang.org/go",
}

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// Platform is GOOS/GOARCH.
	Platform string `json:"platform"`

	// Dependencies maps module path to the version compiled in.
	// Empty when build info is unavailable (e.g. under `go test`).
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:      Version,
		GitCommit:    GitCommit,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		Dependencies: dependencyVersions(reportedModules),
	}
}

func dependencyVersions(modules []string) map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return matchDependencies(info.Deps, modules)
}

func matchDependencies(deps []*debug.Module, modules []string) map[string]string {
	out := make(map[string]string)
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		for _, m := range modules {
			if dep.Path != m {
				continue
			}
			v := dep.Version
			if dep.Replace != nil && dep.Replace.Version != "" {
				v = dep.Replace.Version
			}
			out[m] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// String returns a human-readable version string.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "bundle-expander:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s (%s)",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.Platform)

	if len(i.Dependencies) > 0 {
		sb.WriteString("\n\nLibraries:")
		for _, m := range reportedModules {
			if v, ok := i.Dependencies[m]; ok {
				fmt.Fprintf(&sb, "\n  %s %s", m, v)
			}
		}
	}
	return sb.String()
}
