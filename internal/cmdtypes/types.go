// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/cartkit/bundle-expander/internal/bundle"
	"github.com/cartkit/bundle-expander/internal/config"
	oerrors "github.com/cartkit/bundle-expander/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file, nil when loading failed.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath config.ResolvedValue

	// Resolved holds the runtime settings after precedence resolution.
	Resolved config.Resolved

	Verbose bool
}

// BundleOptions returns the expander options for the resolved settings.
// Invalid values are reported as validation errors.
func (g *GlobalConfig) BundleOptions() (bundle.Options, error) {
	opts, err := g.Resolved.BundleOptions()
	if err != nil {
		return bundle.Options{}, oerrors.NewExitError(err, oerrors.ExitValidationError)
	}
	return opts, nil
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitInputError      = oerrors.ExitInputError
	ExitNotFound        = oerrors.ExitNotFound
	ExitMismatch        = oerrors.ExitMismatch
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
