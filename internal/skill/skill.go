// Package skill defines the core types for skill packages: directories of
// instructional Markdown content, each anchored by a SKILL.md document and
// optionally carrying helper scripts and reference material.
package skill

import (
	"sort"
	"strings"
)

// DocFileName is the primary document every skill package must contain.
// The name is matched case-sensitively.
const DocFileName = "SKILL.md"

// Manifest holds the YAML frontmatter of a SKILL.md document.
// Unknown keys are tolerated and ignored.
type Manifest struct {
	// Name is the skill's unique identifier (required).
	// Must match the package directory name exactly.
	Name string `yaml:"name" json:"name"`

	// Description explains what the skill does and when an agent should
	// activate it (required). Expected to carry at least one trigger phrase.
	Description string `yaml:"description" json:"description"`

	// License is the SPDX license identifier (required).
	License string `yaml:"license,omitempty" json:"license,omitempty"`

	// Metadata contains optional key-value pairs like author, version,
	// repository.
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`

	// Instructions contains the skill's markdown body content.
	// This field is not part of the YAML frontmatter.
	Instructions string `yaml:"-" json:"-"`
}

// Author returns the metadata.author value, or "" when unset.
func (m *Manifest) Author() string {
	return m.Metadata["author"]
}

// Version returns the metadata.version value, or "" when unset.
func (m *Manifest) Version() string {
	return m.Metadata["version"]
}

// Package is one skill directory discovered under the skills root.
// It is immutable once returned by the scanner.
type Package struct {
	// Name is the directory base name, which doubles as the skill's identity
	// in reports.
	Name string `json:"name"`

	// Dir is the path to the skill directory.
	Dir string `json:"dir"`

	// DocPath is the path to the SKILL.md document, empty when the directory
	// has none.
	DocPath string `json:"doc_path,omitempty"`

	// AuxiliaryFiles lists the files found directly under scripts/ and
	// references/, as slash-separated paths relative to Dir, sorted ascending.
	AuxiliaryFiles []string `json:"auxiliary_files,omitempty"`

	// ReadFailures records paths the scanner could not read while
	// discovering the package. A failed read never aborts discovery.
	ReadFailures []ReadFailure `json:"-"`
}

// ReadFailure is a file-system path that could not be read, scoped to a
// package. Path is slash-separated and relative to the package directory;
// "." denotes the directory itself.
type ReadFailure struct {
	Path string
	Err  error
}

// HasDoc reports whether the package contains its primary document.
func (p *Package) HasDoc() bool {
	return p.DocPath != ""
}

// HasAuxiliary reports whether rel (slash-separated, relative to Dir) is one
// of the package's auxiliary files.
func (p *Package) HasAuxiliary(rel string) bool {
	i := sort.SearchStrings(p.AuxiliaryFiles, rel)
	return i < len(p.AuxiliaryFiles) && p.AuxiliaryFiles[i] == rel
}

// Scripts returns the auxiliary files under scripts/.
func (p *Package) Scripts() []string {
	return p.auxWithPrefix("scripts/")
}

// References returns the auxiliary files under references/.
func (p *Package) References() []string {
	return p.auxWithPrefix("references/")
}

func (p *Package) auxWithPrefix(prefix string) []string {
	var files []string
	for _, f := range p.AuxiliaryFiles {
		if strings.HasPrefix(f, prefix) {
			files = append(files, f)
		}
	}
	return files
}
