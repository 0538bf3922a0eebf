// Package apperrors defines the error kinds shared across the draft core.
// The HTTP layer maps these onto status codes; nothing in the core retries
// or repairs on their behalf.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrStateInconsistent signals that a player's drafted flag and the pick
	// ledger disagree. It is never resolved by guessing; a prior transaction
	// failed to be atomic and the data needs manual attention.
	ErrStateInconsistent = errors.New("draft state inconsistent")

	// ErrImportInProgress is returned when a draft mutation arrives while a
	// bulk player import holds the state exclusively.
	ErrImportInProgress = errors.New("bulk import in progress")
)

// ValidationError reports a malformed or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for the given field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ImportError reports the first import row that failed validation. Row is the
// 1-based line number in the uploaded file, counting the header as line 1.
type ImportError struct {
	Row    int
	Reason string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import row %d: %s", e.Row, e.Reason)
}
