package entity

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "title", Message: "must not be empty"}

	want := "validation error on field 'title': must not be empty"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_IsInvalidFormat(t *testing.T) {
	var err error = &ValidationError{Field: "content", Message: "must not be empty"}

	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("expected ValidationError to match ErrInvalidFormat")
	}

	wrapped := fmt.Errorf("parse: %w", err)
	if !errors.Is(wrapped, ErrInvalidFormat) {
		t.Error("expected wrapped ValidationError to match ErrInvalidFormat")
	}

	var vErr *ValidationError
	if !errors.As(wrapped, &vErr) || vErr.Field != "content" {
		t.Errorf("errors.As did not recover field, got %+v", vErr)
	}
}
