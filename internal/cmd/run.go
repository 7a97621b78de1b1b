package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cartkit/bundle-expander/internal/cmdtypes"
	"github.com/cartkit/bundle-expander/internal/cmdutil"
	"github.com/cartkit/bundle-expander/internal/output"
	"github.com/cartkit/bundle-expander/internal/transform"
)

// NewRunCmd creates the run command.
func NewRunCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var dest cmdutil.DestinationFlags

	c := &cobra.Command{
		Use:   "run [input]",
		Short: "Expand the bundles of a cart",
		Long: `Read a cart input document and write the expansion result.

The input is read from the given file, or from stdin when the argument is
omitted or "-". Lines whose bundle data cannot be parsed are left unchanged
and reported as warnings on stderr.

Examples:
  # Expand a cart file
  bundle-expander run cart.json

  # Read from stdin, write YAML
  cat cart.json | bundle-expander run -o yaml

  # Write the result to a file
  bundle-expander run cart.yaml --out result.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRun(c, args, cfg, &dest)
		},
	}

	dest.AddTo(c)

	return c
}

func runRun(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, dest *cmdutil.DestinationFlags) error {
	opts, err := cfg.BundleOptions()
	if err != nil {
		return err
	}
	format, err := cmdutil.ParseOutputFormat(cfg.Resolved.Output.Value)
	if err != nil {
		return err
	}
	inFormat, err := cmdutil.ParseInputFormat(cfg.Resolved.InputFormat.Value)
	if err != nil {
		return err
	}

	input, err := cmdutil.ReadInput(c.InOrStdin(), cmdutil.ResolveInputPath(args), inFormat)
	if err != nil {
		return err
	}

	report := transform.New(opts).Explain(input)
	cmdutil.LogLineDecisions(report, cfg.Verbose)

	if err := cmdutil.WriteResult(c.OutOrStdout(), dest.Out, report.Result, format); err != nil {
		return err
	}

	output.Debug("transform complete",
		"lines", len(report.Lines),
		"expanded", report.Expanded(),
		"malformed", len(report.Malformed()),
	)
	return nil
}
