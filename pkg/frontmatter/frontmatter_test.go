package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

// SkillMeta mirrors the frontmatter structure used by skill documents.
type SkillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	License     string `yaml:"license"`
	Metadata    struct {
		Author  string `yaml:"author"`
		Version string `yaml:"version"`
	} `yaml:"metadata"`
}

func TestMustParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta *SkillMeta
		wantBody string
		wantErr  error
	}{
		{
			name: "valid skill frontmatter",
			input: `---
name: skill-name
description: A brief description
license: MIT
---

# Skill instructions here
`,
			wantMeta: &SkillMeta{
				Name:        "skill-name",
				Description: "A brief description",
				License:     "MIT",
			},
			wantBody: "\n# Skill instructions here\n",
		},
		{
			name: "nested metadata mapping",
			input: `---
name: nested-skill
description: Uses nested metadata
license: MIT
metadata:
  author: someone
  version: 1.2.0
---
Body.
`,
			wantMeta: func() *SkillMeta {
				m := &SkillMeta{
					Name:        "nested-skill",
					Description: "Uses nested metadata",
					License:     "MIT",
				}
				m.Metadata.Author = "someone"
				m.Metadata.Version = "1.2.0"
				return m
			}(),
			wantBody: "Body.\n",
		},
		{
			name: "empty frontmatter block",
			input: `---
---

Body content here.
`,
			wantMeta: &SkillMeta{},
			wantBody: "\nBody content here.\n",
		},
		{
			name: "frontmatter only no trailing newline",
			input: `---
name: minimal
---`,
			wantMeta: &SkillMeta{Name: "minimal"},
			wantBody: "",
		},
		{
			name:    "no frontmatter",
			input:   "# Just a markdown file\n\nNo frontmatter here.",
			wantErr: ErrMissingFrontmatter,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrMissingFrontmatter,
		},
		{
			name: "partial delimiter",
			input: `--
name: not-frontmatter
--
`,
			wantErr: ErrMissingFrontmatter,
		},
		{
			name:    "delimiter not on first line",
			input:   "\n---\nname: late\n---\n",
			wantErr: ErrMissingFrontmatter,
		},
		{
			name:    "opening without closing",
			input:   "---\nname: unclosed\n",
			wantErr: ErrUnterminatedFrontmatter,
		},
		{
			name:    "bare opening delimiter at EOF",
			input:   "---",
			wantErr: ErrUnterminatedFrontmatter,
		},
		{
			name:    "longer dashes do not close the block",
			input:   "---\nname: x\n----\nbody\n",
			wantErr: ErrUnterminatedFrontmatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta SkillMeta
			body, err := MustParse(strings.NewReader(tt.input), &meta)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if meta != *tt.wantMeta {
				t.Errorf("meta: got %+v, want %+v", meta, *tt.wantMeta)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body: got %q, want %q", string(body), tt.wantBody)
			}
		})
	}
}

func TestMustParse_MalformedYAML(t *testing.T) {
	input := "---\nname: [broken\n  this is not yaml\n---\n\nBody.\n"
	var meta SkillMeta
	_, err := MustParse(strings.NewReader(input), &meta)
	if err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
	if errors.Is(err, ErrMissingFrontmatter) || errors.Is(err, ErrUnterminatedFrontmatter) {
		t.Errorf("YAML error should not match structural sentinels, got %v", err)
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("expected decoder error mentioning yaml, got %q", err.Error())
	}
}

func TestMustParse_CRLF(t *testing.T) {
	input := "---\r\nname: windows-skill\r\ndescription: Uses CRLF\r\n---\r\n\r\nBody with CRLF.\r\n"
	var meta SkillMeta
	body, err := MustParse(strings.NewReader(input), &meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Name != "windows-skill" {
		t.Errorf("name: got %q, want %q", meta.Name, "windows-skill")
	}
	if meta.Description != "Uses CRLF" {
		t.Errorf("description: got %q, want %q", meta.Description, "Uses CRLF")
	}
	wantBody := "\r\nBody with CRLF.\r\n"
	if string(body) != wantBody {
		t.Errorf("body: got %q, want %q", string(body), wantBody)
	}
}

func TestParse_OptionalFrontmatter(t *testing.T) {
	t.Run("absent frontmatter returns full content", func(t *testing.T) {
		input := "# Heading\n\nPlain document.\n"
		var meta SkillMeta
		body, err := Parse(strings.NewReader(input), &meta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != input {
			t.Errorf("body: got %q, want %q", string(body), input)
		}
		if meta.Name != "" {
			t.Errorf("meta should stay zero, got name %q", meta.Name)
		}
	})

	t.Run("unterminated block returns full content", func(t *testing.T) {
		input := "---\nname: unclosed\nbody text\n"
		var meta SkillMeta
		body, err := Parse(strings.NewReader(input), &meta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != input {
			t.Errorf("body: got %q, want %q", string(body), input)
		}
	})

	t.Run("present frontmatter is parsed", func(t *testing.T) {
		input := "---\nname: here\n---\nBody.\n"
		var meta SkillMeta
		body, err := Parse(strings.NewReader(input), &meta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta.Name != "here" {
			t.Errorf("name: got %q, want %q", meta.Name, "here")
		}
		if string(body) != "Body.\n" {
			t.Errorf("body: got %q, want %q", string(body), "Body.\n")
		}
	})
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMatter string
		wantBody   string
		wantOpened bool
		wantClosed bool
	}{
		{
			name:       "delimited document",
			input:      "---\nname: x\n---\nBody.\n",
			wantMatter: "name: x\n",
			wantBody:   "Body.\n",
			wantOpened: true,
			wantClosed: true,
		},
		{
			name:       "no frontmatter",
			input:      "Body only.\n",
			wantBody:   "Body only.\n",
			wantOpened: false,
			wantClosed: false,
		},
		{
			name:       "unterminated",
			input:      "---\nname: x\n",
			wantOpened: true,
			wantClosed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matter, body, opened, closed := Split([]byte(tt.input))
			if opened != tt.wantOpened || closed != tt.wantClosed {
				t.Errorf("Split() opened=%v closed=%v, want opened=%v closed=%v",
					opened, closed, tt.wantOpened, tt.wantClosed)
			}
			if tt.wantOpened && !tt.wantClosed {
				return
			}
			if string(matter) != tt.wantMatter {
				t.Errorf("matter: got %q, want %q", string(matter), tt.wantMatter)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body: got %q, want %q", string(body), tt.wantBody)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	t.Run("reads only the header", func(t *testing.T) {
		input := `---
name: header-skill
description: Header only
---

Large body that should not matter.
`
		var meta SkillMeta
		if err := ParseHeader(strings.NewReader(input), &meta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta.Name != "header-skill" {
			t.Errorf("name: got %q, want %q", meta.Name, "header-skill")
		}
		if meta.Description != "Header only" {
			t.Errorf("description: got %q, want %q", meta.Description, "Header only")
		}
	})

	t.Run("no frontmatter is silent", func(t *testing.T) {
		var meta SkillMeta
		if err := ParseHeader(strings.NewReader("# Title\n\nContent.\n"), &meta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta.Name != "" {
			t.Errorf("meta should stay zero, got name %q", meta.Name)
		}
	})
}

func TestFormat(t *testing.T) {
	meta := SkillMeta{
		Name:        "round-trip",
		Description: "Formatted then parsed",
		License:     "MIT",
	}

	out, err := Format(meta, "Body line.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(string(out), "---\n") {
		t.Errorf("output should start with delimiter, got %q", string(out))
	}
	if !strings.HasSuffix(string(out), "Body line.\n") {
		t.Errorf("body should end with a newline, got %q", string(out))
	}

	var got SkillMeta
	body, err := MustParse(strings.NewReader(string(out)), &got)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if got.Name != meta.Name || got.Description != meta.Description || got.License != meta.License {
		t.Errorf("round trip meta: got %+v, want %+v", got, meta)
	}
	if !strings.Contains(string(body), "Body line.") {
		t.Errorf("round trip body: got %q", string(body))
	}
}
