package errors

import (
	"fmt"
)

// Exit codes for the skillcheck CLI.
const (
	// ExitSuccess indicates the command completed and validation passed.
	ExitSuccess = 0

	// ExitFailure indicates validation reported failures, or a command
	// failed while running.
	ExitFailure = 1

	// ExitUsage indicates the invocation itself was bad (missing root
	// directory, unknown flag value, invalid configuration).
	ExitUsage = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested skill package was not found.
	ErrNotFound = New("skill not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = New("invalid configuration")
)

// ExitError wraps an error with an exit code and optional suggestion for the CLI.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewExitErrorWithSuggestion creates an ExitError with a suggestion.
func NewExitErrorWithSuggestion(err error, code int, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       code,
		Suggestion: suggestion,
	}
}

// NewUsageError creates an ExitError with ExitUsage code and a suggestion.
func NewUsageError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUsage,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUsage code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUsage,
		Suggestion: "Run: skillcheck config",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
