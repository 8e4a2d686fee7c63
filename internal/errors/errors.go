// Package errors provides structured error types for driftlint.
//
// Rule violations are never modeled as errors: they are the tool's primary
// output and travel as types.Issue values. The errors here cover the
// operational failures around an audit run: an unreadable root directory,
// invalid configuration, bad user input.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeInternal   ErrorType = "internal"
)

// AuditError is a structured error with a category and stable code.
type AuditError struct {
	Type    ErrorType
	Code    string
	Message string
	Path    string
	Cause   error
}

// Error implements the error interface.
func (e *AuditError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("[%s] %s", e.Code, msg)
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *AuditError) Unwrap() error {
	return e.Cause
}

// Is matches AuditErrors by type and code.
func (e *AuditError) Is(target error) bool {
	var t *AuditError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithPath attaches the offending path to the error.
func (e *AuditError) WithPath(path string) *AuditError {
	e.Path = path
	return e
}

// NewIOError creates an io-category error, used for fatal traversal failures.
func NewIOError(code, message string, cause error) *AuditError {
	return &AuditError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a config-category error.
func NewConfigError(code, message string, cause error) *AuditError {
	return &AuditError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation-category error for bad user input.
func NewValidationError(code, message string) *AuditError {
	return &AuditError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal-category error.
func NewInternalError(code, message string, cause error) *AuditError {
	return &AuditError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is an AuditError of the given type.
func IsType(err error, t ErrorType) bool {
	var ae *AuditError
	if errors.As(err, &ae) {
		return ae.Type == t
	}
	return false
}
