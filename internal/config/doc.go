// Package config provides configuration management for the skillcheck CLI.
//
// This package handles loading and validating the tool's own configuration
// file. Command-line flags always take precedence over configured values,
// which in turn override the built-in defaults.
//
// # Configuration File
//
// Configuration is searched in the current directory and then in
// ~/.config/skillcheck/config.yaml. The file uses YAML format:
//
//	root: ./skills
//	format: text
//	strict: false
//	exclude:
//	  - draft-*
//	jobs: 0
//	limits:
//	  skill_lines: 500
//	  reference_lines: 200
//
// Every key can also be set through the environment with a SKILLCHECK_
// prefix, for example SKILLCHECK_STRICT=true or
// SKILLCHECK_LIMITS_SKILL_LINES=400.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load] to read the effective
// configuration:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// # Validation
//
// Use [Validate] to check a configuration for bad values:
//
//	errs := config.Validate(cfg)
//	for _, e := range errs {
//	    fmt.Println(e)
//	}
package config
