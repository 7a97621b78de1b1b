package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/cartkit/bundle-expander/internal/errors"
)

func TestCheck_Matches(t *testing.T) {
	isolate(t)

	res := execute(nil, "check", fixture("cart.yaml"), "--expect", fixture("expected.json"))
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "result matches")
}

func TestCheck_Mismatch(t *testing.T) {
	isolate(t)

	res := execute(nil, "check", fixture("cart.json"), "--expect", fixture("expected-stale.yaml"))
	require.Error(t, res.err)
	assert.Equal(t, oerrors.ExitMismatch, oerrors.ExitCodeFromError(res.err))
	assert.ErrorIs(t, res.err, oerrors.ErrMismatch)

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, res.err, &exitErr)
	assert.True(t, exitErr.Printed)

	assert.Contains(t, res.stdout, "result differs")
	assert.Contains(t, res.stdout, "10.00")
	assert.Contains(t, res.stdout, "15.00")
}

func TestCheck_Errors(t *testing.T) {
	isolate(t)

	res := execute(nil, "check", fixture("cart.json"))
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--expect")

	res = execute(nil, "check", fixture("cart.json"), "--expect", fixture("missing.json"))
	require.Error(t, res.err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(res.err))

	res = execute(nil, "check", "--expect", fixture("expected.json"))
	assert.Error(t, res.err, "input argument is required")
}

func TestCheck_StdinForBothDocuments(t *testing.T) {
	isolate(t)

	res := execute(strings.NewReader(`{"presentmentCurrencyRate":"1","cart":{"lines":[]}}`),
		"check", "-", "--expect", "-")
	require.Error(t, res.err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(res.err))
	assert.Contains(t, res.err.Error(), "stdin")
	assert.Empty(t, res.stdout)
}
