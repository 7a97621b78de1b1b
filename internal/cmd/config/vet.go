package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartkit/bundle-expander/internal/cmdtypes"
	"github.com/cartkit/bundle-expander/internal/config"
	oerrors "github.com/cartkit/bundle-expander/internal/errors"
	"github.com/cartkit/bundle-expander/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the bundle-expander configuration file against the embedded schema.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Only known keys are present and every value has the right type and range

The config path is resolved using precedence:
  --config flag > BUNDLE_EXPANDER_CONFIG env > ~/.bundle-expander/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	expandedPath, err := config.ExpandPath(cfg.ConfigPath.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	output.Debug("validating config",
		"path", expandedPath,
		"source", cfg.ConfigPath.Source,
	)

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewExitError(
			oerrors.NewNotFoundError("configuration file not found", expandedPath,
				"Run 'bundle-expander config init' to create default configuration"),
			oerrors.ExitNotFound)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(expandedPath); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			w := c.ErrOrStderr()
			fmt.Fprintln(w, "Error: config validation failed")
			fmt.Fprintf(w, "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{
				Code:    oerrors.ExitValidationError,
				Err:     fmt.Errorf("%w: %s", oerrors.ErrValidation, expandedPath),
				Printed: true,
			}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+expandedPath))
	return nil
}
