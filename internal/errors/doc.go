// Package errors provides error handling conventions for the skillcheck CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and the exit code contract
// of the validate command. It also re-exports the cockroachdb/errors
// primitives (New, Wrap, Is, As and friends) so the rest of the codebase
// imports a single errors package.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle unknown skill
//	}
//
// # Exit Codes
//
// The package defines the exit codes the CLI reports:
//
//   - ExitSuccess (0): validation passed (warnings allowed unless --strict)
//   - ExitFailure (1): validation reported failures, or a command failed
//   - ExitUsage (2): the invocation was bad (missing root, invalid flags)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main unwraps it via [As] to pick the process exit code:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
