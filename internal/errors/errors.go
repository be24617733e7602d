// Package errors provides the structured error type used across panicribbon.
//
// Every error the ribbon can hit is non-fatal and contained where it happens;
// the code tells the caller which bucket it falls into so it can decide how
// to degrade.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	// ErrConfig covers a missing or malformed service configuration.
	ErrConfig = "CONFIG"
	// ErrProbe covers network errors, non-200 responses and timeouts.
	ErrProbe = "PROBE"
	// ErrRestart covers failures to launch a restart command.
	ErrRestart = "RESTART"
	// ErrRender covers optional display features the terminal can't provide.
	ErrRender = "RENDER"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrProbe code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrProbe,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Short returns a single-line form suitable for log lines.
func (e *Error) Short() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var prErr *Error
	if errors.As(err, &prErr) {
		return prErr.Code == code
	}
	return false
}

// Short returns the single-line form of err. Structured errors drop the
// suggestion; anything else falls back to err.Error().
func Short(err error) string {
	if err == nil {
		return ""
	}
	var prErr *Error
	if errors.As(err, &prErr) {
		return prErr.Short()
	}
	return err.Error()
}
