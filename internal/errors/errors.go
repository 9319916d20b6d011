// Package errors provides the application error type used across services,
// repositories and handlers. Errors are built fluently and marked with a
// sentinel code, e.g.:
//
//	ierr.NewError("quantity is required").
//		WithHint("Quantity is required").
//		Mark(ierr.ErrValidation)
package errors

import (
	stderrors "errors"
	"fmt"
)

// InternalError is the concrete error type carried through the application.
// Message is the internal description, Hint is safe to show to a user, and
// ReportableDetails are structured fields included in API error responses.
type InternalError struct {
	code    error
	cause   error
	message string
	hint    string
	details map[string]any
}

func (e *InternalError) Error() string {
	if e.cause != nil {
		if e.message != "" {
			return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
		}
		return e.cause.Error()
	}
	return e.message
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *InternalError) Unwrap() error {
	return e.cause
}

// Is matches either the marked code or the wrapped cause.
func (e *InternalError) Is(target error) bool {
	if e.code != nil && stderrors.Is(e.code, target) {
		return true
	}
	return false
}

// Code returns the sentinel code this error was marked with.
func (e *InternalError) Code() error {
	return e.code
}

// Hint returns the user-safe hint, falling back to the message.
func (e *InternalError) Hint() string {
	if e.hint != "" {
		return e.hint
	}
	return e.message
}

// Details returns the reportable details map, possibly nil.
func (e *InternalError) Details() map[string]any {
	return e.details
}

// NewError starts a new error with the given internal message.
func NewError(message string) *InternalError {
	return &InternalError{message: message}
}

// NewErrorf starts a new error with a formatted internal message.
func NewErrorf(format string, args ...any) *InternalError {
	return &InternalError{message: fmt.Sprintf(format, args...)}
}

// WithError starts a new error wrapping an underlying cause.
func WithError(err error) *InternalError {
	if ie, ok := err.(*InternalError); ok {
		// Preserve the original mark and hint unless overridden.
		return &InternalError{
			code:    ie.code,
			cause:   ie,
			message: ie.message,
			hint:    ie.hint,
			details: ie.details,
		}
	}
	return &InternalError{cause: err}
}

// WithMessage sets the internal message.
func (e *InternalError) WithMessage(message string) *InternalError {
	e.message = message
	return e
}

// WithHint sets the user-facing hint.
func (e *InternalError) WithHint(hint string) *InternalError {
	e.hint = hint
	return e
}

// WithHintf sets a formatted user-facing hint.
func (e *InternalError) WithHintf(format string, args ...any) *InternalError {
	e.hint = fmt.Sprintf(format, args...)
	return e
}

// WithReportableDetails attaches structured fields to the error response.
func (e *InternalError) WithReportableDetails(details map[string]any) *InternalError {
	e.details = details
	return e
}

// Mark assigns the sentinel code and finalizes the error.
func (e *InternalError) Mark(code error) error {
	e.code = code
	return e
}

// IsNotFound reports whether err is marked ErrNotFound.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is marked ErrValidation.
func IsValidation(err error) bool {
	return stderrors.Is(err, ErrValidation)
}

// IsVersionConflict reports whether err is marked ErrVersionConflict.
func IsVersionConflict(err error) bool {
	return stderrors.Is(err, ErrVersionConflict)
}

// IsGuardCancelled reports whether err is marked ErrGuardCancelled.
func IsGuardCancelled(err error) bool {
	return stderrors.Is(err, ErrGuardCancelled)
}
