package parser

import "fmt"

// ParseError is a frontmatter or read failure tied to the document it came
// from. Callers unwrap it to reach the structural sentinels in
// pkg/frontmatter.
type ParseError struct {
	// Path locates the document that failed, empty for in-memory input.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing skill: %v", e.Err)
	}
	return fmt.Sprintf("parsing skill %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
