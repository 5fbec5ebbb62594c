package model

import (
	"errors"
	"fmt"
)

// Application errors. Services return these (possibly wrapped); webutil maps
// them to HTTP status codes at the boundary.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternalServer     = errors.New("internal server error")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAssignmentNotFound = errors.New("assignment not found in any course")
	ErrInvalidQuiz        = errors.New("quiz has no questions")
	ErrTooManyAttempts    = errors.New("attempt limit reached")
	ErrStorage            = errors.New("storage failure")
)

// NewStorageError wraps a store adapter failure so that callers can match it
// with errors.Is(err, ErrStorage). The failure is never masked as a no-op:
// the attempted mutation is aborted and the error surfaces to the caller.
func NewStorageError(key string, cause error) error {
	return fmt.Errorf("%w: key %q: %s", ErrStorage, key, cause)
}

// AppError carries the machine-readable code and user-facing message for an
// API error response.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// APIErrorResponse is the JSON envelope for error responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
