package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/cartkit/bundle-expander/internal/cart"
)

// WriteResult writes the transform result to w in the given format.
func WriteResult(w io.Writer, result cart.Result, format Format) error {
	switch format {
	case FormatYAML:
		data, err := MarshalResultYAML(result)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %s not supported for result output", format)
	}
}

// MarshalResultYAML renders the result as YAML using the JSON field names
// of the host contract.
func MarshalResultYAML(result cart.Result) ([]byte, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return data, nil
}
