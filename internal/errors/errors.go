// Package errors provides the tagged error kinds used across the domain
// core. Every service operation fails with an *AppError so the HTTP facade
// can translate kinds to status codes without inspecting internals.
package errors

import "net/http"

// AppError represents a structured domain error with an error kind,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same kind/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Domain error kinds. Validation and constraint conflicts map to 400,
// missing principals to 401, absent rows to 404, store failures to 500.
var (
	ErrInvalid            = &AppError{Code: "INVALID", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusBadRequest}
	ErrInvalidCategory    = &AppError{Code: "INVALID_CATEGORY", Message: "Transaction category is not valid", StatusCode: http.StatusBadRequest}
	ErrUnauthenticated    = &AppError{Code: "UNAUTHENTICATED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrNotFound           = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrDuplicate          = &AppError{Code: "DUPLICATE", Message: "Resource already exists", StatusCode: http.StatusBadRequest}
	ErrOverlap            = &AppError{Code: "OVERLAP", Message: "Budget window overlaps an existing budget", StatusCode: http.StatusBadRequest}
	ErrHasDependencies    = &AppError{Code: "HAS_DEPENDENCIES", Message: "Category is referenced by transactions or budgets", StatusCode: http.StatusBadRequest}
	ErrInternal           = &AppError{Code: "INTERNAL", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
