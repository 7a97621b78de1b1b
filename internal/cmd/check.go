package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartkit/bundle-expander/internal/cmdtypes"
	"github.com/cartkit/bundle-expander/internal/cmdutil"
	oerrors "github.com/cartkit/bundle-expander/internal/errors"
	"github.com/cartkit/bundle-expander/internal/output"
	"github.com/cartkit/bundle-expander/internal/transform"
)

// NewCheckCmd creates the check command.
func NewCheckCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var expect cmdutil.ExpectFlags

	c := &cobra.Command{
		Use:   "check <input> --expect <result>",
		Short: "Compare the expansion result with an expected document",
		Long: `Run the expansion on an input document and compare the result with an
expected result document. Both documents may be JSON or YAML; the comparison
is structural, so formatting and key order do not matter.

Exits with code 5 when the documents differ.

Examples:
  bundle-expander check cart.json --expect result.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c, args, cfg, &expect)
		},
	}

	expect.AddTo(c)

	return c
}

func runCheck(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, expect *cmdutil.ExpectFlags) error {
	if err := expect.Validate(); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	inputPath := cmdutil.ResolveInputPath(args)
	if inputPath == cmdutil.StdinPath && expect.Expect == cmdutil.StdinPath {
		return oerrors.NewExitError(
			oerrors.NewValidationError("input and expected result cannot both be read from stdin",
				"", "--expect", "pass one of them as a file path"),
			oerrors.ExitValidationError)
	}

	opts, err := cfg.BundleOptions()
	if err != nil {
		return err
	}
	inFormat, err := cmdutil.ParseInputFormat(cfg.Resolved.InputFormat.Value)
	if err != nil {
		return err
	}

	input, err := cmdutil.ReadInput(c.InOrStdin(), inputPath, inFormat)
	if err != nil {
		return err
	}
	expected, err := cmdutil.ReadDocument(c.InOrStdin(), expect.Expect)
	if err != nil {
		return err
	}

	report := transform.New(opts).Explain(input)
	cmdutil.LogLineDecisions(report, cfg.Verbose)

	var actual bytes.Buffer
	if err := output.WriteResult(&actual, report.Result, output.FormatJSON); err != nil {
		return err
	}

	w := c.OutOrStdout()
	diff, err := output.DiffDocuments(expected, actual.Bytes(), output.ColorEnabled(w))
	if err != nil {
		return oerrors.NewExitError(
			oerrors.NewInputError("could not compare results", expect.Expect, "", err),
			oerrors.ExitInputError)
	}

	if diff == "" {
		fmt.Fprintln(w, output.FormatCheckmark("result matches "+expect.Expect))
		return nil
	}

	fmt.Fprintln(w, output.FormatCross("result differs from "+expect.Expect))
	fmt.Fprint(w, output.IndentDiff(diff, "  "))
	return &oerrors.ExitError{
		Code:    oerrors.ExitMismatch,
		Err:     fmt.Errorf("%w: %s", oerrors.ErrMismatch, expect.Expect),
		Printed: true,
	}
}
