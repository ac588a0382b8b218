// Package errs defines the error taxonomy shared by services and handlers.
//
// Every failure a caller can act on belongs to one kind, identified by a sentinel
// (ErrValidation, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrInvalidState, ErrConflict).
// An *Error carries a client-facing message and unwraps to its sentinel, so callers
// classify with errors.Is. Anything else is treated as internal.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
)

// Error is a classified error with a message safe to return to clients.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Validation(msg string) *Error   { return newError(ErrValidation, msg) }
func Unauthorized(msg string) *Error { return newError(ErrUnauthorized, msg) }
func Forbidden(msg string) *Error    { return newError(ErrForbidden, msg) }
func NotFound(msg string) *Error     { return newError(ErrNotFound, msg) }
func InvalidState(msg string) *Error { return newError(ErrInvalidState, msg) }
func Conflict(msg string) *Error     { return newError(ErrConflict, msg) }

// WithCause attaches the underlying error for logging.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// HTTPStatus maps an error to the status code it is reported with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message a client may see. Unclassified errors are hidden.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}
