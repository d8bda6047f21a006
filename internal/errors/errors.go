package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for transport mapping.
type Kind string

const (
	// KindNotFound means a referenced entity is absent or outside the
	// caller's organization.
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict means a uniqueness or idempotency rule was violated.
	KindConflict Kind = "CONFLICT"

	// KindUnauthorized means the caller lacks the required role relationship.
	KindUnauthorized Kind = "UNAUTHORIZED"

	// KindValidation means the input shape was malformed.
	KindValidation Kind = "INVALID_INPUT"

	// KindStore means an unexpected failure at the persistence boundary.
	KindStore Kind = "INTERNAL_ERROR"
)

// Error is the application error carried from services to the transport.
// Message is stable and safe to display; Err holds the internal detail.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound returns a NotFound error with a display-safe message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict returns a Conflict error with a display-safe message.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unauthorized returns an Unauthorized error with a display-safe message.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Validation returns a Validation error with a display-safe message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Store wraps an unexpected persistence failure.
func Store(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindStore for
// errors that did not originate in this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// MessageOf returns the display-safe message for err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// DetailOf returns the internal detail string for err, if any.
func DetailOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Err != nil {
		return appErr.Err.Error()
	}
	return err.Error()
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
