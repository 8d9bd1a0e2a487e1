// Package apperror defines the typed failures returned by services and
// repositories. Each carries the HTTP status the transport layer answers with
// and a message that is safe to show to the client.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types.
const (
	TypeValidation = "validation_error"
	TypeNotFound   = "not_found"
	TypeIntegrity  = "integrity_error"
	TypeBadRequest = "bad_request"
	TypeInternal   = "internal_error"
)

// AppError is the single error type crossing package boundaries.
type AppError struct {
	// Code is the HTTP status code.
	Code int `json:"-"`

	// Type classifies the failure, one of the Type constants.
	Type string `json:"type"`

	// Message is a human-readable description safe for the client.
	Message string `json:"message"`

	// Field names the offending input field for validation failures.
	Field string `json:"field,omitempty"`

	// Internal holds the underlying error for logging. Never exposed to clients.
	Internal error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewValidation creates a 422 error for a required field that was left empty.
func NewValidation(field, message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Type:    TypeValidation,
		Message: message,
		Field:   field,
	}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Type:    TypeNotFound,
		Message: message,
	}
}

// NewIntegrity creates a 409 error for a violated database constraint such as
// a duplicate tag name.
func NewIntegrity(message string, err error) *AppError {
	return &AppError{
		Code:     http.StatusConflict,
		Type:     TypeIntegrity,
		Message:  message,
		Internal: err,
	}
}

// NewBadRequest creates a 400 error for malformed requests.
func NewBadRequest(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Type:    TypeBadRequest,
		Message: message,
	}
}

// NewInternal creates a 500 error. The client only sees a generic message.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:     http.StatusInternalServerError,
		Type:     TypeInternal,
		Message:  "An unexpected error occurred. Please try again.",
		Internal: err,
	}
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func isType(err error, typ string) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == typ
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return isType(err, TypeValidation) }

// IsNotFound reports whether err is a missing-entity failure.
func IsNotFound(err error) bool { return isType(err, TypeNotFound) }

// IsIntegrity reports whether err is a constraint violation.
func IsIntegrity(err error) bool { return isType(err, TypeIntegrity) }

// SafeMessage returns the client-safe message for err. Errors that are not
// AppErrors get a generic message so database details never leak.
func SafeMessage(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return "an unexpected error occurred"
}

// SafeCode returns the HTTP status for err, 500 for anything unknown.
func SafeCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
