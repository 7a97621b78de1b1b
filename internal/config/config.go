// Package config provides configuration loading and management.
package config

import (
	"fmt"

	"github.com/cartkit/bundle-expander/internal/bundle"
)

// Default values applied when neither flag, env nor config file set a value.
const (
	DefaultOutput      = "json"
	DefaultInputFormat = "auto"
	DefaultRounding    = string(bundle.RoundHalfUp)
)

// ExpandConfig contains bundle expansion settings.
type ExpandConfig struct {
	// StrictZeroQuantity rejects bundle components with quantity 0 instead of
	// expanding them with quantity 1.
	// Env: BUNDLE_EXPANDER_STRICT_ZERO_QUANTITY, Default: false
	StrictZeroQuantity bool `json:"strictZeroQuantity,omitempty" yaml:"strictZeroQuantity"`

	// Rounding is the rounding mode for converted prices.
	// Valid values: "half-up" (default), "half-even".
	// Env: BUNDLE_EXPANDER_ROUNDING
	Rounding string `json:"rounding,omitempty" yaml:"rounding,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the bundle-expander configuration file.
type Config struct {
	// Output is the default result format: "json" or "yaml".
	// Env: BUNDLE_EXPANDER_OUTPUT
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// InputFormat is the default input format: "auto", "json" or "yaml".
	// Env: BUNDLE_EXPANDER_INPUT_FORMAT
	InputFormat string `json:"inputFormat,omitempty" yaml:"inputFormat,omitempty"`

	// Expand contains bundle expansion settings.
	Expand ExpandConfig `json:"expand,omitempty" yaml:"expand"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `bundle-expander config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Output:      DefaultOutput,
		InputFormat: DefaultInputFormat,
		Expand: ExpandConfig{
			Rounding: DefaultRounding,
		},
	}
}

// WithDefaults returns a copy of c with unset values filled from defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Output == "" {
		out.Output = DefaultOutput
	}
	if out.InputFormat == "" {
		out.InputFormat = DefaultInputFormat
	}
	if out.Expand.Rounding == "" {
		out.Expand.Rounding = DefaultRounding
	}
	return &out
}

// BundleOptions converts the expansion settings into expander options.
func (c ExpandConfig) BundleOptions() (bundle.Options, error) {
	mode, ok := bundle.ParseRoundingMode(c.Rounding)
	if !ok {
		return bundle.Options{}, &ValidationError{
			Field:   "expand.rounding",
			Message: fmt.Sprintf("unknown rounding mode %q (valid: %v)", c.Rounding, bundle.ValidRoundingModes()),
		}
	}
	return bundle.Options{
		StrictZeroQuantity: c.StrictZeroQuantity,
		Rounding:           mode,
	}, nil
}
