package repository

import (
	"context"
	"fmt"

	"notion-inbox/internal/domain/entity"
)

// EntryRepository stores parsed entries in the remote structured-data service.
type EntryRepository interface {
	// Save issues exactly one create call for the entry. A nil error means the
	// remote record exists; any failure is returned as *PersistenceError.
	Save(ctx context.Context, entry *entity.Entry) error
}

// FailureKind is the closed set of persistence failure causes.
type FailureKind string

const (
	FailureAuth       FailureKind = "auth"
	FailureNetwork    FailureKind = "network"
	FailureValidation FailureKind = "validation"
	FailureUnknown    FailureKind = "unknown"
)

// PersistenceError reports a failed remote write.
// Kind is for logs and metrics only; users see the same reply for every kind.
type PersistenceError struct {
	Kind FailureKind
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist entry (%s): %v", e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
