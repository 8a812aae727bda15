/*
errors.go - Centralized error types for the vacation domain

ERROR TAXONOMY:
  1. Validation errors - malformed or logically inconsistent input; the
     caller's request is wrong. Surfaced as *ValidationError, mapped to
     400-equivalents by the API layer.
  2. Not-found - NOT an error. Single-record fetches return (nil, nil) and
     deletes return (false, nil) when the target is absent or not owned by
     the caller. The target doesn't exist in the caller's scope; nothing
     about the request was malformed.
  3. Backend errors - the active store adapter failed (I/O, remote store).
     Propagated upward wrapped but untouched; no retries in the core.

USAGE:
  if verr := vacation.AsValidation(err); verr != nil { ... 400 ... }
  if errors.Is(err, vacation.ErrInvalidPeriod) { ... }
*/
package vacation

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - use with errors.Is()
// =============================================================================

var (
	// ErrInvalidPeriod is returned when a window ends before it starts.
	ErrInvalidPeriod = errors.New("invalid period: end before start")

	// ErrNonPositiveRevenue is returned when a professional's monthly
	// revenue is zero or negative.
	ErrNonPositiveRevenue = errors.New("monthly revenue must be positive")

	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
)

// =============================================================================
// VALIDATION ERROR - carries which field was rejected and why
// =============================================================================

type ValidationError struct {
	Field  string
	Reason string
	inner  error
}

func NewValidationError(field, reason string, inner error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, inner: inner}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.inner }

// AsValidation returns the *ValidationError inside err, or nil.
func AsValidation(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return AsValidation(err) != nil ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrNonPositiveRevenue) ||
		errors.Is(err, ErrEmailTaken)
}
