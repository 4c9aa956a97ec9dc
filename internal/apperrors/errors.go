package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an attempt was made to create a resource that already exists.
var ErrConflict = errors.New("resource already exists")

// ErrDuplicate is kept as an alias of ErrConflict for repository code.
var ErrDuplicate = ErrConflict

// ErrForbidden indicates the caller lacks the capability required by the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStorage indicates a transient persistence failure. The whole operation may be retried.
var ErrStorage = errors.New("storage failure")

// AppError carries an HTTP-ish status code and a message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// Is reports 5xx app errors as storage failures so callers can decide on retries
// without knowing which repository produced them.
func (e *AppError) Is(target error) bool {
	return target == ErrStorage && e.Code >= 500
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation error that is not tied to a field.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldValidationError creates a validation error for the named field.
func NewFieldValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError wraps ErrConflict with a message naming the clashing resource.
func NewConflictError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrConflict)
}
