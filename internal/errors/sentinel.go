package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a configuration schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrInput indicates an input document that could not be read or decoded.
	ErrInput = errors.New("invalid input")

	// ErrNotFound indicates a file was not found.
	ErrNotFound = errors.New("not found")

	// ErrMismatch indicates a transform result that differs from the expected one.
	ErrMismatch = errors.New("result mismatch")
)
