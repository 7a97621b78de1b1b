package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// InputFormat specifies the encoding of an input document.
type InputFormat string

const (
	// InputAuto detects JSON or YAML from the document content.
	InputAuto InputFormat = "auto"

	// InputJSON is a JSON document.
	InputJSON InputFormat = "json"

	// InputYAML is a YAML document.
	InputYAML InputFormat = "yaml"
)

// ParseInputFormat parses a string into an InputFormat.
// Returns false for unknown formats.
func ParseInputFormat(s string) (InputFormat, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return InputAuto, true
	case "json":
		return InputJSON, true
	case "yaml", "yml":
		return InputYAML, true
	default:
		return "", false
	}
}

// ValidInputFormats returns the accepted input format names.
func ValidInputFormats() []string {
	return []string{"auto", "json", "yaml"}
}

// DetectFormat guesses the encoding of data. Documents whose first
// non-space byte is '{' are JSON; everything else is treated as YAML.
func DetectFormat(data []byte) InputFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return InputJSON
	}
	return InputYAML
}

// Decode parses an input document in the given format.
func Decode(data []byte, format InputFormat) (Input, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Input{}, fmt.Errorf("input document is empty")
	}

	if format == InputAuto || format == "" {
		format = DetectFormat(data)
	}

	if format == InputYAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return Input{}, fmt.Errorf("converting YAML input: %w", err)
		}
		data = converted
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("decoding input: %w", err)
	}
	if err := CheckMagnitude("presentmentCurrencyRate", in.PresentmentCurrencyRate); err != nil {
		return Input{}, fmt.Errorf("decoding input: %w", err)
	}
	return in, nil
}

// DecodeReader reads the whole of r and decodes it.
func DecodeReader(r io.Reader, format InputFormat) (Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, fmt.Errorf("reading input: %w", err)
	}
	return Decode(data, format)
}
