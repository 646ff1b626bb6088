package errors

import (
	"fmt"
	"strings"
)

// Error codes
const (
	CodeAppError      = "APP_ERROR"
	CodeAPIError      = "API_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
	CodeCache         = "CACHE_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeRefreshClosed = "REFRESH_CLOSED"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(message, code string, statusCode int, context map[string]any) *AppError {
	return &AppError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

type APIError struct {
	*AppError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

// NotFoundError is raised when a handle resolves to neither an organization
// nor a user under any of its candidate variants.
type NotFoundError struct {
	*AppError
	Attempted []string
}

func NewNotFoundError(handle string, attempted []string, cause error) *NotFoundError {
	return &NotFoundError{
		AppError: &AppError{
			Message:    fmt.Sprintf("handle %q not found on the Hub (tried: %s)", handle, strings.Join(attempted, ", ")),
			Code:       CodeNotFound,
			StatusCode: 404,
			Context: map[string]any{
				"handle":    handle,
				"attempted": attempted,
			},
			Cause: cause,
		},
		Attempted: attempted,
	}
}

// RefreshClosedError is raised when an explicit refresh is requested after
// the global freeze instant.
type RefreshClosedError struct {
	*AppError
}

func NewRefreshClosedError(year int) *RefreshClosedError {
	return &RefreshClosedError{
		AppError: &AppError{
			Message:    fmt.Sprintf("refresh window is closed for year %d", year),
			Code:       CodeRefreshClosed,
			StatusCode: 403,
			Context: map[string]any{
				"year": year,
			},
		},
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}
