package cmdutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartkit/bundle-expander/internal/bundle"
	"github.com/cartkit/bundle-expander/internal/cart"
	oerrors "github.com/cartkit/bundle-expander/internal/errors"
	"github.com/cartkit/bundle-expander/internal/output"
	"github.com/cartkit/bundle-expander/internal/transform"
)

const sampleInput = `{
  "presentmentCurrencyRate": "1.0",
  "cart": {"lines": [
    {"id": "gid://shopify/CartLine/1", "quantity": 1,
     "merchandise": {"__typename": "ProductVariant", "id": "gid://shopify/ProductVariant/1",
       "product": {"id": "gid://shopify/Product/1",
         "bundledComponentData": {"value": "[{\"id\":\"gid://shopify/ProductVariant/2\",\"quantity\":1,\"price\":5}]"}}}}
  ]}
}`

func TestDestinationFlags_AddTo(t *testing.T) {
	var f DestinationFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	out := cmd.Flags().Lookup("out")
	require.NotNil(t, out)
	assert.Equal(t, "", out.DefValue)
}

func TestExpectFlags(t *testing.T) {
	var f ExpectFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	require.NotNil(t, cmd.Flags().Lookup("expect"))
	assert.Error(t, f.Validate())

	f.Expect = "expected.json"
	assert.NoError(t, f.Validate())
}

func TestResolveInputPath(t *testing.T) {
	assert.Equal(t, "-", ResolveInputPath(nil))
	assert.Equal(t, "-", ResolveInputPath([]string{""}))
	assert.Equal(t, "cart.json", ResolveInputPath([]string{"cart.json"}))
}

func TestParseFormats(t *testing.T) {
	f, err := ParseOutputFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, f)

	_, err = ParseOutputFormat("table")
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	in, err := ParseInputFormat("auto")
	require.NoError(t, err)
	assert.Equal(t, cart.InputAuto, in)

	_, err = ParseInputFormat("toml")
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestReadInput(t *testing.T) {
	t.Run("from stdin", func(t *testing.T) {
		input, err := ReadInput(strings.NewReader(sampleInput), StdinPath, cart.InputAuto)
		require.NoError(t, err)
		require.Len(t, input.Cart.Lines, 1)
		assert.Equal(t, "gid://shopify/CartLine/1", input.Cart.Lines[0].ID)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o644))

		input, err := ReadInput(nil, path, cart.InputJSON)
		require.NoError(t, err)
		assert.Len(t, input.Cart.Lines, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadInput(nil, filepath.Join(t.TempDir(), "nope.json"), cart.InputAuto)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})

	t.Run("undecodable document", func(t *testing.T) {
		_, err := ReadInput(strings.NewReader("{not json"), StdinPath, cart.InputAuto)
		assert.Equal(t, oerrors.ExitInputError, oerrors.ExitCodeFromError(err))
		assert.ErrorIs(t, err, oerrors.ErrInput)
		assert.Contains(t, err.Error(), "stdin")
	})

	t.Run("empty stdin", func(t *testing.T) {
		_, err := ReadInput(strings.NewReader(""), StdinPath, cart.InputAuto)
		assert.Equal(t, oerrors.ExitInputError, oerrors.ExitCodeFromError(err))
	})
}

func TestWriteResult(t *testing.T) {
	result := cart.NoChanges()

	t.Run("to writer", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResult(&buf, "", result, output.FormatJSON))
		assert.JSONEq(t, `{"operations":[]}`, buf.String())
	})

	t.Run("to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "result.yaml")
		var buf bytes.Buffer
		require.NoError(t, WriteResult(&buf, path, result, output.FormatYAML))
		assert.Empty(t, buf.String(), "nothing written to the writer")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "operations: []\n", string(data))
	})
}

func TestLogLineDecisions(t *testing.T) {
	report := transform.Report{Lines: []transform.LineReport{
		{LineID: "gid://shopify/CartLine/1", Reason: bundle.ReasonNoBundleData},
		{LineID: "gid://shopify/CartLine/2", Reason: bundle.ReasonMalformed, Error: "malformed bundle configuration: component 0: missing id"},
	}}

	var buf bytes.Buffer
	output.SetupLoggingTo(&buf, output.LogConfig{Timestamps: output.BoolPtr(false)})
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })

	LogLineDecisions(report, false)
	out := buf.String()
	assert.Contains(t, out, "CartLine/2")
	assert.Contains(t, out, "missing id")
	assert.NotContains(t, out, "CartLine/1", "non-verbose logs only malformed lines")
}
