// Package paths provides path resolution utilities for the skillcheck CLI.
//
// It locates skillcheck's own configuration directory and normalizes the
// skills root passed on the command line or read from configuration.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base
// Directory Specification compliance. On Linux, configuration lives under
// ~/.config/skillcheck; macOS and Windows follow their native conventions.
//
// # Skills Root
//
// The skills root is the directory holding one subdirectory per skill
// package. [ResolveRoot] applies the default ("./skills") and expands a
// leading "~/" so commands can accept roots uniformly:
//
//	root := paths.ResolveRoot(flagValue)
package paths
