// Package frontmatter provides utilities for parsing and formatting
// YAML frontmatter in markdown files.
package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingFrontmatter is returned by MustParse when the document does not
// open with a "---" delimiter line.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// ErrUnterminatedFrontmatter is returned by MustParse when the opening
// delimiter is present but no closing "---" line follows.
var ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter")

// Parse extracts YAML frontmatter and body content from a reader.
// If no frontmatter is present, returns empty struct and full content as body.
// This is useful for files where frontmatter is optional.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but fails when frontmatter is absent or not closed.
// This is useful for files where frontmatter is required (skill documents).
// YAML syntax problems inside the block are returned verbatim so callers can
// distinguish them from the sentinel conditions.
func MustParse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	fm, body, opened, closed := Split(content)
	if !opened {
		if required {
			return nil, ErrMissingFrontmatter
		}
		return content, nil
	}
	if !closed {
		if required {
			return nil, ErrUnterminatedFrontmatter
		}
		return content, nil
	}

	if err := yaml.Unmarshal(fm, matter); err != nil {
		return nil, err
	}

	return body, nil
}

// Split separates content into the frontmatter block and the body without
// parsing the YAML. The opening delimiter must be the first line of the
// document; the block ends at the next line containing exactly "---". Both
// LF and CRLF endings are accepted. opened reports whether the document
// starts with a delimiter, closed whether a terminating delimiter was found.
func Split(content []byte) (matter, body []byte, opened, closed bool) {
	first, rest, more := bytes.Cut(content, []byte("\n"))
	if !isDelimiter(first) {
		return nil, content, false, false
	}
	if !more {
		return nil, nil, true, false
	}

	offset := 0
	remaining := rest
	for {
		line, tail, more := bytes.Cut(remaining, []byte("\n"))
		if isDelimiter(line) {
			return rest[:offset], tail, true, true
		}
		if !more {
			return nil, nil, true, false
		}
		offset += len(line) + 1
		remaining = tail
	}
}

// isDelimiter reports whether line is exactly "---", tolerating a trailing
// carriage return from CRLF input.
func isDelimiter(line []byte) bool {
	return bytes.Equal(bytes.TrimSuffix(line, []byte("\r")), []byte("---"))
}

// ParseHeader parses only the frontmatter from the reader.
// It stops reading after the closing delimiter "---".
// The body is not consumed or returned.
// Returns nil if no frontmatter is found (silent success, matter remains empty).
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	// Check first line
	if !scanner.Scan() {
		return scanner.Err()
	}
	line := strings.TrimSpace(scanner.Text())
	if line != "---" {
		// No frontmatter start delimiter
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			// Found closing delimiter
			return yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	return scanner.Err()
}

// Format formats content with YAML frontmatter.
// The matter struct is serialized to YAML and wrapped in "---" delimiters,
// followed by the body content.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
