// Package frontmatter provides generic parsing of YAML frontmatter from
// Markdown files used by the skillcheck CLI.
//
// Frontmatter is delimited by lines containing only "---" at the start and end.
// The content between delimiters is parsed as YAML and unmarshaled into the
// type parameter T. The remaining content after the closing delimiter is
// returned as the body.
//
// # Basic Usage
//
//	type SkillMeta struct {
//		Name        string `yaml:"name"`
//		Description string `yaml:"description"`
//		License     string `yaml:"license"`
//	}
//
//	var meta SkillMeta
//	body, err := frontmatter.MustParse(r, &meta)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Skill: %s\nInstructions:\n%s", meta.Name, body)
//
// # Error Handling
//
// The package defines sentinel errors for the structural failure conditions:
//
//   - [ErrMissingFrontmatter]: document doesn't start with a "---" delimiter
//   - [ErrUnterminatedFrontmatter]: opening delimiter with no closing "---"
//
// These can be checked using [errors.Is]:
//
//	body, err := frontmatter.MustParse(r, &meta)
//	if errors.Is(err, frontmatter.ErrMissingFrontmatter) {
//		// handle missing frontmatter
//	}
//
// YAML syntax errors inside a well-delimited block are returned as-is from
// the underlying decoder, so malformed mappings remain distinguishable from
// the sentinel conditions above.
//
// # Supported Formats
//
// The parser supports YAML frontmatter with the standard "---" delimiters.
// Both Unix (LF) and Windows (CRLF) line endings are handled correctly.
package frontmatter
