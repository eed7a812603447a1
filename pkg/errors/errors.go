// Package errors provides structured error types for circos.
//
// Every failure raised by the layout engine carries a machine-readable
// [Code] so that the CLI and the HTTP API can report configuration problems
// consistently:
//   - DUPLICATE_ID: a sector id was registered twice
//   - LAYOUT_OVERFLOW: the sum of inter-sector gaps fills the whole circle
//   - DEGENERATE_SECTOR: sub-position math against a sector of size 1
//   - UNKNOWN_SECTOR: a chord or track references a sector that does not exist
//   - INVALID_RANGE: malformed radial range, non-positive size or empty angular budget
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateID, "sector %q already registered", id)
//	if errors.Is(err, errors.ErrCodeDuplicateID) {
//	    // Handle collision
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFigure, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout engine errors
	ErrCodeDuplicateID      Code = "DUPLICATE_ID"
	ErrCodeLayoutOverflow   Code = "LAYOUT_OVERFLOW"
	ErrCodeDegenerateSector Code = "DEGENERATE_SECTOR"
	ErrCodeUnknownSector    Code = "UNKNOWN_SECTOR"
	ErrCodeInvalidRange     Code = "INVALID_RANGE"
	ErrCodeLayoutNotSolved  Code = "LAYOUT_NOT_SOLVED"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidFigure Code = "INVALID_FIGURE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// IsConfigError reports whether err stems from invalid user input rather than
// an internal failure. Callers surface these as fatal configuration errors.
func IsConfigError(err error) bool {
	switch GetCode(err) {
	case ErrCodeDuplicateID, ErrCodeLayoutOverflow, ErrCodeDegenerateSector,
		ErrCodeUnknownSector, ErrCodeInvalidRange, ErrCodeLayoutNotSolved,
		ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidColor,
		ErrCodeInvalidFigure, ErrCodeInvalidPath:
		return true
	}
	return false
}
