package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain_Fixture(t *testing.T) {
	isolate(t)

	res := execute(nil, "explain", fixture("cart.json"))
	require.NoError(t, res.err)

	for _, want := range []string{
		"CartLine/1", "CartLine/2", "CartLine/3", "CartLine/4",
		"no bundle data", "expanded", "CustomProduct",
		"1 of 4 lines expanded",
	} {
		assert.Contains(t, res.stdout, want)
	}
}

func TestExplain_EmptyCart(t *testing.T) {
	isolate(t)

	res := execute(strings.NewReader(`{"presentmentCurrencyRate":"1","cart":{"lines":[]}}`), "explain")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "cart has no lines")
}
