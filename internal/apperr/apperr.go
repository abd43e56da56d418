// Package apperr provides a lightweight structured error type for
// category-based classification at the CLI and HTTP boundaries.
package apperr

import (
	"fmt"
)

// Category classifies an error for exit-code and HTTP-status mapping.
type Category string

const (
	// User-facing input and configuration errors
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"

	// Processing errors
	CategoryCache    Category = "cache"
	CategoryInternal Category = "internal"
)

// Severity indicates how critical an error is.
type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Error is a structured error with category, severity, and context.
type Error struct {
	Category Category      `json:"category"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for an Error.
type ContextFields map[string]any

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new Error.
func New(category Category, severity Severity, message string) *Error {
	return &Error{Category: category, Severity: severity, Message: message}
}

// Wrap creates a new Error that wraps an existing error.
func Wrap(err error, category Category, severity Severity, message string) *Error {
	return &Error{Category: category, Severity: severity, Message: message, Cause: err}
}

// Validation creates a validation error (bad caller input: unknown language,
// unknown profile, out-of-range intensity).
func Validation(format string, args ...any) *Error {
	return New(CategoryValidation, SeverityError, fmt.Sprintf(format, args...))
}

// Config creates a configuration error.
func Config(format string, args ...any) *Error {
	return New(CategoryConfig, SeverityError, fmt.Sprintf(format, args...))
}

// Internal creates an internal error.
func Internal(format string, args ...any) *Error {
	return New(CategoryInternal, SeverityFatal, fmt.Sprintf(format, args...))
}
