package cmdtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartkit/bundle-expander/internal/bundle"
	"github.com/cartkit/bundle-expander/internal/config"
	oerrors "github.com/cartkit/bundle-expander/internal/errors"
)

func TestGlobalConfig_BundleOptions(t *testing.T) {
	g := &GlobalConfig{Resolved: config.Resolved{
		Rounding:           config.ResolvedValue{Key: "expand.rounding", Value: "half-even"},
		StrictZeroQuantity: config.ResolvedValue{Key: "expand.strictZeroQuantity", Value: "true"},
	}}

	opts, err := g.BundleOptions()
	require.NoError(t, err)
	assert.Equal(t, bundle.Options{StrictZeroQuantity: true, Rounding: bundle.RoundHalfEven}, opts)
}

func TestGlobalConfig_BundleOptionsInvalid(t *testing.T) {
	g := &GlobalConfig{Resolved: config.Resolved{
		Rounding:           config.ResolvedValue{Key: "expand.rounding", Value: "up"},
		StrictZeroQuantity: config.ResolvedValue{Key: "expand.strictZeroQuantity", Value: "false"},
	}}

	_, err := g.BundleOptions()
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, oerrors.ExitCodeFromError(err))

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Error(), "expand.rounding")
}
