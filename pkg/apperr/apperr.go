// Package apperr defines the application error taxonomy shared by services
// and the HTTP error middleware.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Type string

const (
	TypeValidation   Type = "validation_error"
	TypeUnauthorized Type = "unauthorized"
	TypeForbidden    Type = "forbidden"
	TypeNotFound     Type = "not_found"
	TypeConflict     Type = "conflict"
	TypeUpstream     Type = "upstream_error"
	TypeRateLimited  Type = "rate_limited"
	TypeInternal     Type = "internal_error"
)

// Error carries an HTTP status alongside a client-safe message. Cause is
// kept for logging and errors.Is/As chains but never rendered.
type Error struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Cause   error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches on Type so callers can compare against the zero-message
// sentinels below, e.g. errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Type == e.Type
}

var (
	ErrValidation   = &Error{Type: TypeValidation}
	ErrUnauthorized = &Error{Type: TypeUnauthorized}
	ErrForbidden    = &Error{Type: TypeForbidden}
	ErrNotFound     = &Error{Type: TypeNotFound}
	ErrConflict     = &Error{Type: TypeConflict}
	ErrUpstream     = &Error{Type: TypeUpstream}
)

func newError(t Type, code int, msg string, cause error) *Error {
	return &Error{Type: t, Message: msg, Code: code, Cause: cause}
}

func Validation(msg string) *Error { return newError(TypeValidation, http.StatusBadRequest, msg, nil) }

func Unauthorized(msg string) *Error {
	return newError(TypeUnauthorized, http.StatusUnauthorized, msg, nil)
}

func Forbidden(msg string) *Error { return newError(TypeForbidden, http.StatusForbidden, msg, nil) }

func NotFound(msg string) *Error { return newError(TypeNotFound, http.StatusNotFound, msg, nil) }

func Conflict(msg string) *Error { return newError(TypeConflict, http.StatusConflict, msg, nil) }

// Upstream wraps a failed call to an external collaborator such as the
// billing gateway.
func Upstream(msg string, cause error) *Error {
	return newError(TypeUpstream, http.StatusBadGateway, msg, cause)
}

func TooManyRequests(msg string) *Error {
	return newError(TypeRateLimited, http.StatusTooManyRequests, msg, nil)
}

func Internal(msg string, cause error) *Error {
	return newError(TypeInternal, http.StatusInternalServerError, msg, cause)
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// StatusCode returns the HTTP status for err, 500 when err carries none.
func StatusCode(err error) int {
	if e, ok := As(err); ok && e.Code != 0 {
		return e.Code
	}
	return http.StatusInternalServerError
}
