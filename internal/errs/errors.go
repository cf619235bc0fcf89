package errs

import "fmt"

// ValidationError is raised locally before any store activity. It is always
// recoverable and maps to a 400 / inline form message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StoreError wraps any failure raised by the persistence collaborator,
// tagged with the operation that issued it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// NotFound reports whether the wrapped failure was a missing-or-unowned row.
func (e *StoreError) NotFound() bool {
	return e.Err == ErrNotFound
}

// AuthError means session retrieval failed. It is treated exactly like the
// absence of a session and is never retried.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth: " + e.Reason
}

func NewAuthError(reason string) *AuthError {
	return &AuthError{Reason: reason}
}

// ErrNotFound is the sentinel for a row that does not exist or is not owned
// by the caller; the store does not distinguish the two cases.
var ErrNotFound = fmt.Errorf("not found or not authorized")
