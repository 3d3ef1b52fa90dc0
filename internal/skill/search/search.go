// Package search builds a flat catalog of skill packages and answers
// name and description queries against it.
package search

import (
	"slices"
	"strings"

	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/skill"
	"github.com/rengarcia/web-quality-skills/internal/skill/parser"
)

// Entry is one row of the skill catalog: the package plus the header
// fields commands display.
type Entry struct {
	// Name is the package directory name.
	Name string
	// Description comes from the document frontmatter, empty when the
	// document is missing or its header could not be read.
	Description string
	// License comes from the document frontmatter.
	License string
	// Version is metadata.version from the document frontmatter.
	Version string
	// Dir is the absolute package directory.
	Dir string
	// HasDoc reports whether the package has a SKILL.md document.
	HasDoc bool
	// Files counts the package's auxiliary files.
	Files int
}

// Collect flattens packages into catalog entries, reading each document
// header leniently. Packages without a document, or with an unparseable
// header, still get an entry so listings show the whole tree.
func Collect(pkgs []skill.Package) []Entry {
	p := parser.New()
	entries := make([]Entry, 0, len(pkgs))
	for _, pkg := range pkgs {
		e := Entry{
			Name:   pkg.Name,
			Dir:    pkg.Dir,
			HasDoc: pkg.HasDoc(),
			Files:  len(pkg.AuxiliaryFiles),
		}
		if pkg.HasDoc() {
			if manifest, err := p.ParseHeader(pkg.DocPath); err == nil {
				e.Description = manifest.Description
				e.License = manifest.License
				e.Version = manifest.Version()
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// Options configures search filtering.
type Options struct {
	// License filters by license value, case-insensitively. Empty matches
	// all licenses.
	License string
}

// Search finds catalog entries matching the query.
// Matching is case-insensitive against Name and Description.
// An empty query returns all entries (subject to filters).
// Results are ordered by match quality (exact name > prefix > contains >
// description-only), ties by name.
func Search(entries []Entry, query string, opts Options) []Entry {
	query = strings.ToLower(query)

	var results []Entry
	for _, e := range entries {
		if !matchesFilters(e, opts) {
			continue
		}
		if query == "" || matchesQuery(e, query) {
			results = append(results, e)
		}
	}

	slices.SortStableFunc(results, func(a, b Entry) int {
		if d := scoreMatch(b, query) - scoreMatch(a, query); d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})

	return results
}

// Find returns the entry whose name matches exactly. When nothing matches
// it returns an error that carries near-miss suggestions.
func Find(entries []Entry, name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}

	var near []string
	for _, e := range Search(entries, name, Options{}) {
		near = append(near, e.Name)
		if len(near) == 3 {
			break
		}
	}
	if len(near) > 0 {
		return Entry{}, errors.Newf("skill %q not found, did you mean: %s", name, strings.Join(near, ", "))
	}
	return Entry{}, errors.Newf("skill %q not found", name)
}

func matchesFilters(e Entry, opts Options) bool {
	if opts.License != "" && !strings.EqualFold(e.License, opts.License) {
		return false
	}
	return true
}

// matchesQuery checks case-insensitive substring matches against Name and
// Description.
func matchesQuery(e Entry, query string) bool {
	name := strings.ToLower(e.Name)
	desc := strings.ToLower(e.Description)
	return strings.Contains(name, query) || strings.Contains(desc, query)
}

// scoreMatch returns a score indicating match quality.
// Higher scores indicate better matches.
//
// Scoring:
//   - 100: Exact name match
//   - 75: Name starts with query (prefix match)
//   - 50: Name contains query
//   - 25: Description contains query (but name doesn't)
//   - 0: No match or empty query
func scoreMatch(e Entry, query string) int {
	if query == "" {
		return 0
	}

	name := strings.ToLower(e.Name)
	desc := strings.ToLower(e.Description)

	if name == query {
		return 100
	}
	if strings.HasPrefix(name, query) {
		return 75
	}
	if strings.Contains(name, query) {
		return 50
	}
	if strings.Contains(desc, query) {
		return 25
	}

	return 0
}
