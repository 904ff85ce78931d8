package store

import (
	"errors"
	"fmt"

	"github.com/okbooks/posledger/internal/validation"
)

var (
	// ErrNotFound reports a lookup with no matching row. A normal outcome,
	// not a storage fault.
	ErrNotFound = errors.New("not_found")

	// ErrConflict reports a racing invoice-number collision rejected by the
	// unique index. The caller may retry the whole creation once; a fresh
	// call recomputes the next number since no partial state persists.
	ErrConflict = errors.New("invoice_number_conflict")

	// ErrPersistence reports a storage fault (unavailable, transaction
	// aborted, IO error). The failing transaction rolled back fully.
	ErrPersistence = errors.New("persistence_failure")

	// ErrValidation matches any *ValidationError via errors.Is.
	ErrValidation = errors.New("validation_failed")
)

// ValidationError rejects input before any write reaches the store.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return "validation_failed: " + e.Violations.String()
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func violation(field, reason string) error {
	return &ValidationError{Violations: validation.Violations{field: reason}}
}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrPersistence, err)
}
