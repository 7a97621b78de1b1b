package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartkit/bundle-expander/internal/cmdtypes"
	"github.com/cartkit/bundle-expander/internal/config"
	"github.com/cartkit/bundle-expander/internal/output"
	"github.com/cartkit/bundle-expander/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show bundle-expander version information.

Displays:
  - version, commit and build date
  - Go version and platform
  - versions of the decimal and CUE libraries compiled in

With -o json the information is printed as a JSON object.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVersion(c, cfg)
		},
	}
}

func runVersion(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	info := version.Get()
	w := c.OutOrStdout()

	if cfg.Resolved.Output.Source == config.SourceFlag && cfg.Resolved.Output.Value == string(output.FormatJSON) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintln(w, info.String())
	return nil
}
