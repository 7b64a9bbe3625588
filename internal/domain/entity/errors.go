package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInvalidFormat indicates that a message does not decompose into
	// exactly three non-empty, pipe-delimited segments.
	ErrInvalidFormat = errors.New("invalid entry format")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
// Every ValidationError is also an ErrInvalidFormat.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidFormat.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidFormat
}
