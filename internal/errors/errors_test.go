//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrInput)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrInput, ErrMismatch)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "/path/to/config.yaml",
		Field:    "rounding",
		Context:  map[string]string{"Value": "truncate", "Allowed": "half-up, half-even"},
		Hint:     "Use half-up or half-even",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /path/to/config.yaml")
	assert.Contains(t, output, "Field: rounding")
	assert.Contains(t, output, "Value: truncate")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Use half-up or half-even")
	assert.Less(t, strings.Index(output, "Allowed:"), strings.Index(output, "Value:"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		"invalid value",
		"/path/to/config.yaml",
		"rounding",
		"Use half-up or half-even",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "invalid value", detail.Message)
	assert.Equal(t, "/path/to/config.yaml", detail.Location)
	assert.Equal(t, "rounding", detail.Field)
}

func TestNewInputError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewInputError("cannot decode cart", "cart.json", "Check the document syntax", cause)

	assert.True(t, errors.Is(err, ErrInput))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ExitInputError, ExitCodeFromError(err))

	noCause := NewInputError("empty", "-", "", nil)
	assert.True(t, errors.Is(noCause, ErrInput))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("file missing", "expected.json", "")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error returns success", err: nil, expected: ExitSuccess},
		{name: "validation error", err: ErrValidation, expected: ExitValidationError},
		{name: "input error", err: ErrInput, expected: ExitInputError},
		{name: "not found error", err: ErrNotFound, expected: ExitNotFound},
		{name: "mismatch error", err: ErrMismatch, expected: ExitMismatch},
		{
			name:     "wrapped validation error",
			err:      fmt.Errorf("failed to validate: %w", ErrValidation),
			expected: ExitValidationError,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("something went wrong"),
			expected: ExitGeneralError,
		},
		{
			name:     "exit error with custom code",
			err:      NewExitError(errors.New("custom error"), 42),
			expected: 42,
		},
		{
			name:     "exit error wins over sentinel",
			err:      NewExitError(ErrValidation, ExitGeneralError),
			expected: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	originalErr := errors.New("original error")
	exitErr := NewExitError(originalErr, ExitValidationError)

	assert.Equal(t, "original error", exitErr.Error())
	assert.Equal(t, ExitValidationError, exitErr.Code)
	assert.True(t, errors.Is(exitErr, originalErr))

	assert.Equal(t, "Result Mismatch", (&ExitError{Code: ExitMismatch}).Error())
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Input Error", ExitCodeName(ExitInputError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
