// Package errors provides structured error types for strprof.
//
// Every failure the core can produce carries a machine-readable [Code] so that
// callers (the CLI, tests, scripts wrapping the binary) can tell a bad
// distribution parameter apart from a malformed CSV file without parsing
// message text.
//
// # Error Codes
//
//   - INVALID_*: caller supplied out-of-domain input (parameters, formats, config)
//   - MALFORMED_DATA: input text could not be parsed into a profile or preamble
//   - FILE_NOT_FOUND: an input path does not exist
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParameter, "uniform bounds inverted: %d > %d", a, b)
//	if errors.Is(err, errors.ErrCodeInvalidParameter) {
//	    // report usage
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedData, csvErr, "line %d", line)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"

	// Data errors
	ErrCodeMalformedData Code = "MALFORMED_DATA"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsInvalidParameter reports whether err is an INVALID_PARAMETER error.
func IsInvalidParameter(err error) bool { return Is(err, ErrCodeInvalidParameter) }

// IsMalformedData reports whether err is a MALFORMED_DATA error.
func IsMalformedData(err error) bool { return Is(err, ErrCodeMalformedData) }

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
