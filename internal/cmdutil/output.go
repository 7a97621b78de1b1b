package cmdutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cartkit/bundle-expander/internal/cart"
	"github.com/cartkit/bundle-expander/internal/config"
	oerrors "github.com/cartkit/bundle-expander/internal/errors"
	"github.com/cartkit/bundle-expander/internal/output"
	"github.com/cartkit/bundle-expander/internal/transform"
)

// ParseOutputFormat converts a resolved --output value, reporting unknown
// names as validation errors.
func ParseOutputFormat(s string) (output.Format, error) {
	f, ok := output.ParseFormat(s)
	if !ok {
		return "", oerrors.NewExitError(
			oerrors.NewValidationError(
				fmt.Sprintf("unknown output format %q", s), "", "output",
				fmt.Sprintf("Valid formats: %v", output.ValidFormats())),
			oerrors.ExitValidationError)
	}
	return f, nil
}

// WriteResult writes result to w, or to the file at outPath when set.
func WriteResult(w io.Writer, outPath string, result cart.Result, format output.Format) error {
	if outPath == "" {
		return output.WriteResult(w, result, format)
	}

	var buf bytes.Buffer
	if err := output.WriteResult(&buf, result, format); err != nil {
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	output.Debug("result written", "path", outPath, "bytes", buf.Len())
	return nil
}

// LogLineDecisions logs malformed lines as warnings. With verbose, every
// line decision is logged at debug level.
func LogLineDecisions(report transform.Report, verbose bool) {
	for _, l := range report.Lines {
		lineLog := output.LineLogger(l.LineID)
		switch {
		case l.Error != "":
			lineLog.Warn("bundle data ignored", "reason", l.Reason, "error", l.Error)
		case verbose:
			lineLog.Debug(l.Reason.String(), "type", l.TypeName, "components", l.Components, "items", l.Items)
		}
	}
}

// PrintValidationError prints an error in a user-friendly format.
// Config schema errors get one line per field; other errors fall back to
// the standard key-value log format.
func PrintValidationError(msg string, err error) {
	var schemaErrs config.ValidationErrors
	if errors.As(err, &schemaErrs) {
		output.Error(msg)
		for _, e := range schemaErrs {
			output.Details(fmt.Sprintf("  %s: %s", e.Field, e.Message))
		}
		return
	}
	output.Error(msg, "error", err)
}
