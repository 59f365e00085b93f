// Package apperr defines the error kinds shared by every feature and their
// mapping to HTTP status codes.
package apperr

import (
	"errors"
	"net/http"
)

// Error kinds. Feature errors wrap exactly one of these.
var (
	// ErrValidation indicates malformed input, such as out-of-range pagination.
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates a uniqueness violation.
	ErrConflict = errors.New("conflict")

	// ErrNotFound indicates a missing record, or one the caller does not own.
	ErrNotFound = errors.New("not found")

	// ErrAuthentication indicates missing, invalid or expired credentials.
	ErrAuthentication = errors.New("authentication failed")
)

// Error is a feature error with a message that is safe to show to clients.
type Error struct {
	kind error
	msg  string
}

// New returns an error of the given kind carrying a user-facing message.
func New(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind so that errors.Is(err, ErrNotFound) holds.
func (e *Error) Unwrap() error { return e.kind }

// Message returns the user-facing message of the first *Error in err's
// chain, or fallback when there is none.
func Message(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.msg
	}
	return fallback
}

// HTTPStatus maps an error to the status code the request layer responds with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
