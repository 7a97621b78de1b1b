// Package cmdutil provides shared command utilities for the transform
// subcommands. It centralizes flag groups, input reading and result
// writing helpers.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DestinationFlags holds the result destination flag (run).
type DestinationFlags struct {
	Out string
}

// AddTo registers the destination flags on the given cobra command.
func (f *DestinationFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Out, "out", "",
		"Write the result to this file instead of stdout")
}

// ExpectFlags holds the expected-result flag (check).
type ExpectFlags struct {
	Expect string
}

// AddTo registers the expect flags on the given cobra command.
func (f *ExpectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Expect, "expect", "",
		"Expected result document (JSON or YAML)")
}

// Validate checks that --expect was provided.
func (f *ExpectFlags) Validate() error {
	if f.Expect == "" {
		return fmt.Errorf("--expect is required")
	}
	return nil
}

// ResolveInputPath returns the input path from command args,
// defaulting to stdin ("-").
func ResolveInputPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return StdinPath
}
