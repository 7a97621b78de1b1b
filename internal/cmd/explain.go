package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartkit/bundle-expander/internal/cmdtypes"
	"github.com/cartkit/bundle-expander/internal/cmdutil"
	"github.com/cartkit/bundle-expander/internal/output"
	"github.com/cartkit/bundle-expander/internal/transform"
)

// NewExplainCmd creates the explain command.
func NewExplainCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [input]",
		Short: "Show the expansion decision for every cart line",
		Long: `Classify every line of a cart input document and print a table with the
decision taken for it: expanded, not a product variant, no product, no
bundle data, malformed bundle data or empty bundle.

Examples:
  bundle-expander explain cart.json
  cat cart.yaml | bundle-expander explain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runExplain(c, args, cfg)
		},
	}
}

func runExplain(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig) error {
	opts, err := cfg.BundleOptions()
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

	w := c.OutOrStdout()
	if len(report.Lines) == 0 {
		fmt.Fprintln(w, output.StyleDim.Render("cart has no lines"))
		return nil
	}
	fmt.Fprintln(w, output.RenderReportTable(report))
	fmt.Fprintln(w, output.FormatReportSummary(report))
	return nil
}
