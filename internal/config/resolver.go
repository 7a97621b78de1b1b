package config

import (
	"os"
	"strconv"

	"github.com/cartkit/bundle-expander/internal/bundle"
	"github.com/cartkit/bundle-expander/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue tracks a configuration value and where it came from.
type ResolvedValue struct {
	// Key is the configuration key (e.g. "output", "expand.rounding").
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// StringSetting describes the candidate values for one string setting.
type StringSetting struct {
	Key string
	// Flag is the flag value; FlagSet reports whether the user passed it.
	Flag    string
	FlagSet bool
	// Env is the environment variable consulted after the flag.
	Env string
	// Config is the value from the config file (empty if not set).
	Config string
	// Default is used when nothing else is set.
	Default string
}

// ResolveString resolves a setting using precedence:
// (1) flag, (2) environment variable, (3) config file, (4) default.
func ResolveString(s StringSetting) ResolvedValue {
	type candidate struct {
		source ConfigSource
		value  string
		set    bool
	}

	envValue := ""
	if s.Env != "" {
		envValue = os.Getenv(s.Env)
	}

	candidates := []candidate{
		{SourceFlag, s.Flag, s.FlagSet},
		{SourceEnv, envValue, envValue != ""},
		{SourceConfig, s.Config, s.Config != ""},
		{SourceDefault, s.Default, true},
	}

	result := ResolvedValue{
		Key:      s.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		// Record shadowed values
		if c.value != "" {
			result.Shadowed[c.source] = c.value
		}
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BUNDLE_EXPANDER_CONFIG env, (3) ~/.bundle-expander/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{Key: "config", Shadowed: map[ConfigSource]string{}}, err
	}

	return ResolveString(StringSetting{
		Key:     "config",
		Flag:    flagValue,
		FlagSet: flagValue != "",
		Env:     EnvConfig,
		Default: paths.ConfigFile,
	}), nil
}

// Flags carries the global flag values relevant to resolution.
type Flags struct {
	Output         string
	OutputSet      bool
	InputFormat    string
	InputFormatSet bool
	Rounding       string
	RoundingSet    bool
	Strict         bool
	StrictSet      bool
}

// Resolved is the fully resolved runtime configuration.
type Resolved struct {
	Output             ResolvedValue
	InputFormat        ResolvedValue
	Rounding           ResolvedValue
	StrictZeroQuantity ResolvedValue
}

// Resolve applies flag > env > config > default precedence to every
// runtime setting. cfg may be nil when no config file was loaded.
func Resolve(flags Flags, cfg *Config) Resolved {
	if cfg == nil {
		cfg = &Config{}
	}

	strictFlag, strictConfig := "", ""
	if flags.StrictSet {
		strictFlag = strconv.FormatBool(flags.Strict)
	}
	if cfg.Expand.StrictZeroQuantity {
		strictConfig = "true"
	}

	return Resolved{
		Output: ResolveString(StringSetting{
			Key: "output", Flag: flags.Output, FlagSet: flags.OutputSet,
			Env: EnvOutput, Config: cfg.Output, Default: DefaultOutput,
		}),
		InputFormat: ResolveString(StringSetting{
			Key: "inputFormat", Flag: flags.InputFormat, FlagSet: flags.InputFormatSet,
			Env: EnvInputFormat, Config: cfg.InputFormat, Default: DefaultInputFormat,
		}),
		Rounding: ResolveString(StringSetting{
			Key: "expand.rounding", Flag: flags.Rounding, FlagSet: flags.RoundingSet,
			Env: EnvRounding, Config: cfg.Expand.Rounding, Default: DefaultRounding,
		}),
		StrictZeroQuantity: ResolveString(StringSetting{
			Key: "expand.strictZeroQuantity", Flag: strictFlag, FlagSet: flags.StrictSet,
			Env: EnvStrictZeroQuantity, Config: strictConfig, Default: "false",
		}),
	}
}

// Values returns the resolved values in a stable order for logging.
func (r Resolved) Values() []ResolvedValue {
	return []ResolvedValue{r.Output, r.InputFormat, r.Rounding, r.StrictZeroQuantity}
}

// BundleOptions converts the resolved expansion settings into expander options.
func (r Resolved) BundleOptions() (bundle.Options, error) {
	strict, err := strconv.ParseBool(r.StrictZeroQuantity.Value)
	if err != nil {
		return bundle.Options{}, &ValidationError{
			Field:   r.StrictZeroQuantity.Key,
			Message: "must be true or false, got " + strconv.Quote(r.StrictZeroQuantity.Value),
		}
	}
	return ExpandConfig{
		StrictZeroQuantity: strict,
		Rounding:           r.Rounding.Value,
	}.BundleOptions()
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
