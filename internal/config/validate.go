package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidFormat indicates an unrecognized output format.
	ErrInvalidFormat = errors.New("format must be \"text\" or \"json\"")

	// ErrInvalidLimit indicates a line budget that is zero or negative.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrInvalidJobs indicates a negative worker count.
	ErrInvalidJobs = errors.New("jobs must be zero or positive")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Format != "text" && cfg.Format != "json" {
		errs = append(errs, &FieldError{
			Field: "format",
			Value: cfg.Format,
			Err:   ErrInvalidFormat,
		})
	}

	if cfg.Limits.SkillLines <= 0 {
		errs = append(errs, &FieldError{
			Field: "limits.skill_lines",
			Value: cfg.Limits.SkillLines,
			Err:   ErrInvalidLimit,
		})
	}
	if cfg.Limits.ReferenceLines <= 0 {
		errs = append(errs, &FieldError{
			Field: "limits.reference_lines",
			Value: cfg.Limits.ReferenceLines,
			Err:   ErrInvalidLimit,
		})
	}

	if cfg.Jobs < 0 {
		errs = append(errs, &FieldError{
			Field: "jobs",
			Value: cfg.Jobs,
			Err:   ErrInvalidJobs,
		})
	}

	if err := validatePath(cfg.Root); err != nil {
		errs = append(errs, &FieldError{
			Field: "root",
			Value: cfg.Root,
			Err:   err,
		})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return ErrInvalidPath
	}

	// Null bytes are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	if filepath.Clean(path) == "" {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents a validation error for a specific config field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
