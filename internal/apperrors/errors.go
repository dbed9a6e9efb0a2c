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

// ErrForbidden indicates that the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrProvider indicates a failure reported by the upstream banking provider.
var ErrProvider = errors.New("provider error")

// AppError carries a status code and a message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ProviderError wraps an upstream provider failure, keeping the provider's own
// message so handlers can attach it to the response body as details.
type ProviderError struct {
	Details string
	Err     error
}

// NewProviderError creates a ProviderError with the provider-supplied details.
func NewProviderError(details string, err error) *ProviderError {
	return &ProviderError{Details: details, Err: err}
}

func (e *ProviderError) Error() string {
	if e.Details != "" {
		return "provider error: " + e.Details
	}
	return "provider error"
}

func (e *ProviderError) Unwrap() error {
	return ErrProvider
}
