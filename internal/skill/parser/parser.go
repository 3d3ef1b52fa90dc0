// Package parser extracts the YAML frontmatter and markdown body from
// SKILL.md documents.
package parser

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/rengarcia/web-quality-skills/internal/skill"
	"github.com/rengarcia/web-quality-skills/pkg/frontmatter"
)

// Parser handles SKILL.md document parsing.
type Parser struct{}

// New creates a new Parser instance.
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a SKILL.md document from the given path.
func (p *Parser) ParseFile(path string) (*skill.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	return p.Parse(f, path)
}

// Parse reads and parses a SKILL.md document from the given reader.
// The path parameter is used for error context only.
func (p *Parser) Parse(r io.Reader, path string) (*skill.Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses SKILL.md content from bytes. The frontmatter block is
// required: a missing or unterminated block, or YAML that fails to decode,
// yields a ParseError wrapping the underlying cause.
func (p *Parser) ParseBytes(data []byte, path string) (*skill.Manifest, error) {
	var manifest skill.Manifest
	body, err := frontmatter.MustParse(bytes.NewReader(data), &manifest)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	manifest.Instructions = strings.TrimSpace(string(body))
	return &manifest, nil
}

// ParseHeader parses only the frontmatter metadata, stopping at the closing
// delimiter. This is cheaper for listing skills without reading full content.
func (p *Parser) ParseHeader(path string) (*skill.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	var manifest skill.Manifest
	if err := frontmatter.ParseHeader(f, &manifest); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &manifest, nil
}
