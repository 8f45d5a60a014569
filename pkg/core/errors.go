// Package core provides the shared types and error taxonomy for droidctl.
package core

import (
	"errors"
	"fmt"
)

// ErrorCategory groups errors by the collaborator that produced them.
type ErrorCategory string

// Error categories
const (
	ErrCategoryTransport ErrorCategory = "transport" // adb command failed
	ErrCategoryParse     ErrorCategory = "parse"     // device output unparseable
	ErrCategoryDevice    ErrorCategory = "device"    // device discovery/state
)

// CommandError represents a structured error with category and details
type CommandError struct {
	Category ErrorCategory
	Code     string // Machine-readable code: transport_failure, parse_failure, etc.
	Message  string // Human-readable message
	Cause    error  // Underlying error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// Is matches CommandErrors by code, so errors.Is works against the
// predefined sentinels even after WithCause/WithMessage copies.
func (e *CommandError) Is(target error) bool {
	var t *CommandError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause
func (e *CommandError) WithCause(cause error) *CommandError {
	return &CommandError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *CommandError) WithMessage(msg string) *CommandError {
	return &CommandError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Cause:    e.Cause,
	}
}

// Predefined errors. Negative query outcomes (no element matched, attribute
// flag indeterminate) are ordinary results, not errors, and have no entry
// here on purpose.
var (
	// Transport errors
	ErrTransport = &CommandError{
		Category: ErrCategoryTransport,
		Code:     "transport_failure",
		Message:  "device command failed",
	}

	// Parse errors
	ErrParse = &CommandError{
		Category: ErrCategoryParse,
		Code:     "parse_failure",
		Message:  "hierarchy dump is not well-formed XML",
	}
	ErrResolutionUnavailable = &CommandError{
		Category: ErrCategoryParse,
		Code:     "resolution_unavailable",
		Message:  "device size output contains no <width>x<height> pair",
	}

	// Device errors
	ErrDeviceNotFound = &CommandError{
		Category: ErrCategoryDevice,
		Code:     "device_not_found",
		Message:  "no connected device found",
	}
	ErrADBNotFound = &CommandError{
		Category: ErrCategoryDevice,
		Code:     "adb_not_found",
		Message:  "adb not found in PATH; ensure Android SDK is installed",
	}
)

// NewCommandError creates a new CommandError with the given parameters
func NewCommandError(category ErrorCategory, code, message string) *CommandError {
	return &CommandError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}
