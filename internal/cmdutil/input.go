package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/cartkit/bundle-expander/internal/cart"
	oerrors "github.com/cartkit/bundle-expander/internal/errors"
	"github.com/cartkit/bundle-expander/internal/output"
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// ParseInputFormat converts a resolved --input-format value, reporting
// unknown names as validation errors.
func ParseInputFormat(s string) (cart.InputFormat, error) {
	f, ok := cart.ParseInputFormat(s)
	if !ok {
		return "", oerrors.NewExitError(
			oerrors.NewValidationError(
				fmt.Sprintf("unknown input format %q", s), "", "input-format",
				fmt.Sprintf("Valid formats: %v", cart.ValidInputFormats())),
			oerrors.ExitValidationError)
	}
	return f, nil
}

// ReadDocument reads raw bytes from path, or from stdin when path is "-".
// A terminal on stdin is rejected so the command does not hang waiting.
func ReadDocument(stdin io.Reader, path string) ([]byte, error) {
	if path == StdinPath {
		if f, ok := stdin.(*os.File); ok && output.IsTerminal(f) {
			return nil, oerrors.NewExitError(
				oerrors.NewInputError("no input provided", "stdin",
					"Pipe a cart document on stdin or pass a file path.", nil),
				oerrors.ExitInputError)
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, oerrors.NewExitError(
				oerrors.NewInputError("reading stdin failed", "stdin", "", err),
				oerrors.ExitInputError)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewExitError(
				oerrors.NewNotFoundError("input file not found", path, ""),
				oerrors.ExitNotFound)
		}
		return nil, oerrors.NewExitError(
			oerrors.NewInputError("reading input failed", path, "", err),
			oerrors.ExitInputError)
	}
	return data, nil
}

// ReadInput reads and decodes a cart input document.
func ReadInput(stdin io.Reader, path string, format cart.InputFormat) (cart.Input, error) {
	data, err := ReadDocument(stdin, path)
	if err != nil {
		return cart.Input{}, err
	}

	input, err := cart.Decode(data, format)
	if err != nil {
		location := path
		if path == StdinPath {
			location = "stdin"
		}
		detail := oerrors.NewInputError("could not decode cart input", location,
			"Input must be a document with \"cart\" and \"presentmentCurrencyRate\".", err)
		var de *oerrors.DetailError
		if errors.As(detail, &de) {
			de.Context = map[string]string{"Cause": err.Error()}
		}
		return cart.Input{}, oerrors.NewExitError(detail, oerrors.ExitInputError)
	}

	output.Debug("input decoded",
		"path", path,
		"format", format,
		"lines", len(input.Cart.Lines),
		"rate", input.PresentmentCurrencyRate.String(),
	)
	return input, nil
}
