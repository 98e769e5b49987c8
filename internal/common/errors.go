// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Authorization errors. ErrClaimConflict wraps ErrForbidden so transport
	// code can treat a lost claim race and a plain authorization failure the
	// same way, while services can still tell them apart.
	ErrForbidden     = errors.New("forbidden")
	ErrClaimConflict = fmt.Errorf("item has already been bought: %w", ErrForbidden)

	// Validation errors (blank name, malformed email).
	ErrInvalidData = errors.New("invalid data")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Fallback for failures outside the taxonomy above; the HTTP layer
	// reports it without leaking the underlying cause.
	ErrInternal = errors.New("internal error")
)

// PartialError reports a multi-entity operation that committed some of its
// writes before failing. Committed lists the writes that succeeded, in the
// order they were applied. Every target write is idempotent (set-add,
// field-set, delete), so a caller or reconciliation job can retry the
// operation without reapplying the completed steps.
type PartialError struct {
	Op        string
	Committed []string
	Err       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%s partially committed (done: %s): %v",
		e.Op, strings.Join(e.Committed, ", "), e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }
