package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cartkit/bundle-expander/internal/cmdtypes"
	"github.com/cartkit/bundle-expander/internal/config"
	oerrors "github.com/cartkit/bundle-expander/internal/errors"
)

const configHeader = "# bundle-expander configuration\n" +
	"# Precedence: flags > BUNDLE_EXPANDER_* env > this file > defaults\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new configuration file",
		Long: `Create a new bundle-expander configuration file with default values.

The configuration file is created at ~/.bundle-expander/config.yaml by default.
Use --config flag or BUNDLE_EXPANDER_CONFIG to specify a different location.

Examples:
  # Initialize configuration
  bundle-expander config init

  # Overwrite existing configuration
  bundle-expander config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	expandedPath, err := config.ExpandPath(cfg.ConfigPath.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}
	if expandedPath == "" {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine config file path")
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return oerrors.NewExitError(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: expandedPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}, oerrors.ExitValidationError)
	}

	// Create directories with secure permissions (0700)
	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", expandedPath)
	fmt.Fprintln(c.OutOrStdout(), "Validate with: bundle-expander config vet")
	return nil
}
