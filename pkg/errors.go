package pkg

import (
	"errors"
	"net/http"
)

// Error kinds. Every error produced by the use cases wraps exactly one of them,
// so callers can classify with errors.Is without knowing the concrete sentinel.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication error")
	ErrAuthz      = errors.New("authorization error")
	ErrInternal   = errors.New("internal error")
)

const internalErrorMessage = "internal server error"

// KindError is a human-readable error tagged with one of the kinds above.
type KindError struct {
	kind error
	msg  string
}

func (e *KindError) Error() string { return e.msg }

// Is reports whether target is the kind this error belongs to.
func (e *KindError) Is(target error) bool { return target == e.kind }

// Kind returns the kind sentinel.
func (e *KindError) Kind() error { return e.kind }

func Validation(msg string) error { return &KindError{kind: ErrValidation, msg: msg} }
func NotFound(msg string) error   { return &KindError{kind: ErrNotFound, msg: msg} }
func Conflict(msg string) error   { return &KindError{kind: ErrConflict, msg: msg} }
func Auth(msg string) error       { return &KindError{kind: ErrAuth, msg: msg} }
func Authz(msg string) error      { return &KindError{kind: ErrAuthz, msg: msg} }

// Internal tags a server-side fault. msg is kept for logs and never sent to
// the client.
func Internal(msg string) error { return &KindError{kind: ErrInternal, msg: msg} }

// AppError is the HTTP-facing representation of a failure.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body written for every error response.
type HTTPError struct {
	Error string `json:"error"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

// FromError classifies err by kind. Unclassified errors become a generic 500
// whose message never carries the underlying cause.
func FromError(err error) *AppError {
	var ke *KindError
	if !errors.As(err, &ke) {
		return NewDomainError("INTERNAL_ERROR", internalErrorMessage, err, http.StatusInternalServerError)
	}
	switch ke.kind {
	case ErrValidation:
		return NewDomainError("VALIDATION_ERROR", ke.msg, err, http.StatusBadRequest)
	case ErrNotFound:
		return NewDomainError("NOT_FOUND", ke.msg, err, http.StatusNotFound)
	case ErrConflict:
		return NewDomainError("CONFLICT", ke.msg, err, http.StatusBadRequest)
	case ErrAuth:
		return NewDomainError("UNAUTHORIZED", ke.msg, err, http.StatusUnauthorized)
	case ErrAuthz:
		return NewDomainError("FORBIDDEN", ke.msg, err, http.StatusForbidden)
	case ErrInternal:
		return NewDomainError("INTERNAL_ERROR", internalErrorMessage, err, http.StatusInternalServerError)
	default:
		return NewDomainError("INTERNAL_ERROR", internalErrorMessage, err, http.StatusInternalServerError)
	}
}
