// Package apperrors classifies service errors for transport mapping.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Module packages wrap these so handlers can translate
// any service error into the right HTTP response with errors.Is.
var (
	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized indicates a missing or invalid principal.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates the principal lacks the required membership or role.
	ErrForbidden = errors.New("access denied")
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the request collides with existing state.
	ErrConflict = errors.New("conflict")
)

// Error couples a kind with a caller-facing message.
type Error struct {
	kind    error
	message string
}

// Error returns the caller-facing message.
func (e *Error) Error() string {
	return e.message
}

// Unwrap exposes the kind for errors.Is checks.
func (e *Error) Unwrap() error {
	return e.kind
}

// New creates an error of the given kind.
func New(kind error, message string) error {
	return &Error{kind: kind, message: message}
}

// Validation creates a validation error.
func Validation(format string, args ...interface{}) error {
	return New(ErrValidation, fmt.Sprintf(format, args...))
}

// Forbidden creates an access-denied error.
func Forbidden(format string, args ...interface{}) error {
	return New(ErrForbidden, fmt.Sprintf(format, args...))
}

// NotFound creates a not-found error.
func NotFound(format string, args ...interface{}) error {
	return New(ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflict creates a conflict error.
func Conflict(format string, args ...interface{}) error {
	return New(ErrConflict, fmt.Sprintf(format, args...))
}

// Unauthorized creates an unauthorized error.
func Unauthorized(format string, args ...interface{}) error {
	return New(ErrUnauthorized, fmt.Sprintf(format, args...))
}
