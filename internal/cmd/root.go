// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/cartkit/bundle-expander/internal/cmd/config"
	"github.com/cartkit/bundle-expander/internal/cmdtypes"
	"github.com/cartkit/bundle-expander/internal/config"
	"github.com/cartkit/bundle-expander/internal/output"
)

// dotEnvFile is loaded from the working directory before configuration.
const dotEnvFile = ".env"

// rootFlags holds the persistent flag values of the root command.
type rootFlags struct {
	config      string
	output      string
	inputFormat string
	rounding    string
	strict      bool
	verbose     bool
	timestamps  bool
}

// NewRootCmd creates the root command for the bundle-expander CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "bundle-expander",
		Short: "Expand bundle products in a cart into their components",
		Long: `bundle-expander reads a cart document, finds lines whose product carries
bundled component data and emits lineExpand operations that replace each
bundle with its components at converted unit prices.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "Path to config file (env: BUNDLE_EXPANDER_CONFIG)")
	pf.StringVarP(&flags.output, "output", "o", config.DefaultOutput, "Result format: json, yaml (env: BUNDLE_EXPANDER_OUTPUT)")
	pf.StringVar(&flags.inputFormat, "input-format", config.DefaultInputFormat, "Input format: auto, json, yaml (env: BUNDLE_EXPANDER_INPUT_FORMAT)")
	pf.StringVar(&flags.rounding, "rounding", config.DefaultRounding, "Price rounding: half-up, half-even (env: BUNDLE_EXPANDER_ROUNDING)")
	pf.BoolVar(&flags.strict, "strict-zero-quantity", false, "Treat component quantity 0 as malformed (env: BUNDLE_EXPANDER_STRICT_ZERO_QUANTITY)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewRunCmd(cfg))
	rootCmd.AddCommand(NewExplainCmd(cfg))
	rootCmd.AddCommand(NewCheckCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging and resolves configuration into cfg.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	// .env only seeds unset variables, so real env still wins.
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		output.Debug("dotenv load error", "error", err)
	}

	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		output.Debug("config path resolution error", "error", err)
	}

	// Load configuration first so we can use config values for logging setup
	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - allow commands that don't need config to work
	}

	changed := c.Flags().Changed
	resolved := config.Resolve(config.Flags{
		Output:         flags.output,
		OutputSet:      changed("output"),
		InputFormat:    flags.inputFormat,
		InputFormatSet: changed("input-format"),
		Rounding:       flags.rounding,
		RoundingSet:    changed("rounding"),
		Strict:         flags.strict,
		StrictSet:      changed("strict-zero-quantity"),
	}, loaded)

	cfg.Config = loaded
	cfg.ConfigPath = configPath
	cfg.Resolved = resolved
	cfg.Verbose = flags.verbose

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
	}
	if changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded != nil && loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLoggingTo(c.ErrOrStderr(), logCfg)

	if flags.verbose {
		config.LogResolvedValues(append([]config.ResolvedValue{configPath}, resolved.Values()...))
	}

	return nil
}
