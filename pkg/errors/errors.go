// Package errors provides structured error types for bracket.
//
// Every failure surfaced by the tournament core, the renderers and the CLI is
// an [*Error] carrying a machine-readable [Code]. Callers branch on the code
// with [Is] instead of matching message strings.
//
// # Error Codes
//
// Codes mirror the failure taxonomy of the bracket core:
//   - NEEDS_AT_LEAST_ONE_ENTRANT: a tournament was created with no entrants
//   - ROUND_NOT_FOUND: a node ID does not exist in the bracket graph
//   - ENTRANT_NOT_FOUND: an entrant ID is outside the entrant list
//   - MALFORMED_BRACKET: a round does not have exactly one A and one B child
//   - PRINT_FAILURE: a rendering collaborator could not format the bracket
//   - INTERNAL_ERROR: an invariant was violated while solving
//
// The INVALID_* and FILE_NOT_FOUND codes are used by definition loading and
// the CLI.
//
// # Usage
//
//	t, err := tournament.New(entrants, system)
//	if errors.Is(err, errors.ErrCodeNeedsEntrant) {
//	    // Ask for entrants
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodePrintFailure, origErr, "write tree")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Bracket construction and lookup errors
	ErrCodeNeedsEntrant     Code = "NEEDS_AT_LEAST_ONE_ENTRANT"
	ErrCodeRoundNotFound    Code = "ROUND_NOT_FOUND"
	ErrCodeEntrantNotFound  Code = "ENTRANT_NOT_FOUND"
	ErrCodeMalformedBracket Code = "MALFORMED_BRACKET"

	// Rendering errors
	ErrCodePrintFailure Code = "PRINT_FAILURE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidSystem Code = "INVALID_SYSTEM"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// The outermost *Error in the chain decides.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

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
		return e.Message
	}
	return err.Error()
}
