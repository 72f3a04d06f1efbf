// Package apperr defines the error kinds the API reports to clients and the
// mapping from kinds to HTTP statuses.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Unknown Kind = iota
	NotFound
	Forbidden
	Validation
	Conflict
	Store
)

// Error carries a kind alongside a client-facing message. The wrapped cause,
// when present, is kept for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, or Unknown for errors from outside this
// package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is matches errors by kind so callers can write errors.Is(err, apperr.New(...)).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// HTTPStatus maps an error to the status code the handlers respond with.
// Ownership failures answer 401, matching the API's historical behavior.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusUnauthorized
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case Store:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
