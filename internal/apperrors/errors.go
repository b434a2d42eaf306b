package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource,
// e.g. locking a period that is already locked or posting into a locked period.
var ErrConflict = errors.New("conflict with current state")

// ErrBusinessRule indicates that a request was well-formed but broke an accounting rule.
var ErrBusinessRule = errors.New("business rule violation")

// ErrNotImplemented indicates an operation that is part of the contract but not supported.
var ErrNotImplemented = errors.New("not implemented")

// ErrInternal indicates an unexpected infrastructure failure.
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying error with an HTTP-ish status code and a message
// that is safe to show to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind returns the name of the taxonomy sentinel that err wraps, or "internal" when it wraps none.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicate):
		return "conflict"
	case errors.Is(err, ErrBusinessRule):
		return "business_rule_violation"
	case errors.Is(err, ErrNotImplemented):
		return "not_implemented"
	default:
		return "internal"
	}
}
