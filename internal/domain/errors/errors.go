// Package errors defines the errors the skill endpoint reports over HTTP, as opposed to inside a spoken response.
package errors

import (
	"net/http"

	"rubbishday/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Client-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Skill endpoint errors. Alexa treats any non-200 as a failed turn.
var (
	ErrInvalidEnvelope = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ENVELOPE",
		"request body is not a valid skill request envelope",
		"",
	)

	ErrRequestNotVerified = NewBaseError(
		http.StatusBadRequest,
		"REQUEST_NOT_VERIFIED",
		"request could not be verified as coming from Alexa",
		"",
	)

	ErrBodyUnreadable = NewBaseError(
		http.StatusBadRequest,
		"BODY_UNREADABLE",
		"request body could not be read",
		"",
	)
)
