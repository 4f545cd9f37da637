// Package errors provides standardized domain errors with codes for the Giftwise API.
//
// Usage:
//
//	// In services - return typed errors
//	if profile == nil {
//	    return errors.NotFound("profile not found")
//	}
//
//	// In handlers - check with errors.Is
//	if errors.Is(err, errors.ErrNotFound) {
//	    response.NotFound(w, err.Error(), logger)
//	    return
//	}
//
//	// Or use the Code directly for switch statements
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    status := domainErr.HTTPStatus()
//	    ...
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
//
// The three UNAVAILABLE codes all map to 500 but stay distinct so logs
// can separate a catalog outage from a cache outage from a model-provider
// outage. MALFORMED_MODEL_OUTPUT is deliberately not INFERENCE_UNAVAILABLE:
// it signals contract drift with the provider, not a transport failure.
const (
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeNotFound             Code = "NOT_FOUND"
	CodeCatalogUnavailable   Code = "CATALOG_UNAVAILABLE"
	CodeCacheUnavailable     Code = "CACHE_UNAVAILABLE"
	CodeInferenceUnavailable Code = "INFERENCE_UNAVAILABLE"
	CodeMalformedModelOutput Code = "MALFORMED_MODEL_OUTPUT"
	CodeInternal             Code = "INTERNAL"
)

// HTTPStatus returns the appropriate HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional cause.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrInvalidInput         = &Error{Code: CodeInvalidInput, Message: "invalid input"}
	ErrNotFound             = &Error{Code: CodeNotFound, Message: "not found"}
	ErrCatalogUnavailable   = &Error{Code: CodeCatalogUnavailable, Message: "catalog unavailable"}
	ErrCacheUnavailable     = &Error{Code: CodeCacheUnavailable, Message: "cache unavailable"}
	ErrInferenceUnavailable = &Error{Code: CodeInferenceUnavailable, Message: "inference unavailable"}
	ErrMalformedModelOutput = &Error{Code: CodeMalformedModelOutput, Message: "malformed model output"}
	ErrInternal             = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// InvalidInput creates an invalid input error.
func InvalidInput(msg string) *Error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

// InvalidInputf creates an invalid input error with formatted message.
func InvalidInputf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// CatalogUnavailable creates a catalog unavailable error wrapping its cause.
func CatalogUnavailable(msg string, cause error) *Error {
	return &Error{Code: CodeCatalogUnavailable, Message: msg, cause: cause}
}

// CacheUnavailable creates a cache unavailable error wrapping its cause.
func CacheUnavailable(msg string, cause error) *Error {
	return &Error{Code: CodeCacheUnavailable, Message: msg, cause: cause}
}

// InferenceUnavailable creates an inference unavailable error wrapping its cause.
func InferenceUnavailable(msg string, cause error) *Error {
	return &Error{Code: CodeInferenceUnavailable, Message: msg, cause: cause}
}

// MalformedModelOutput creates a malformed model output error wrapping its cause.
func MalformedModelOutput(msg string, cause error) *Error {
	return &Error{Code: CodeMalformedModelOutput, Message: msg, cause: cause}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Internalf creates an internal error with formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}
