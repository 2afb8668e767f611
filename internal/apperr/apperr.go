// Package apperr provides coded errors for artifact and loading
// failures. Under correct build artifacts no operation in this program
// can fail; every code here names a build-artifact problem surfaced at
// run time.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies a failure class.
type Code string

const (
	// General errors
	ErrInternal Code = "INTERNAL_ERROR"

	// Shared artifact errors
	ErrArtifactMissing Code = "ARTIFACT_MISSING"
	ErrPluginOpen      Code = "PLUGIN_OPEN_FAILED"
	ErrPluginSymbol    Code = "PLUGIN_SYMBOL_MISSING"
	ErrPluginType      Code = "PLUGIN_SYMBOL_TYPE"
)

// Error represents an application error with a code and message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a code.
func Wrap(code Code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
