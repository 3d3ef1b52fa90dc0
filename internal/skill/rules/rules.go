package rules

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/markdown"
	"github.com/rengarcia/web-quality-skills/internal/skill"
	"github.com/rengarcia/web-quality-skills/internal/skill/parser"
	"github.com/rengarcia/web-quality-skills/internal/validator"
	"github.com/rengarcia/web-quality-skills/pkg/frontmatter"
)

// defaultRules returns the full rule set. Registration order mirrors the
// report order, though the final report is sorted independently.
func defaultRules() []Rule {
	return []Rule{
		frontmatterRule{},
		requiredFieldsRule{},
		nameMismatchRule{},
		nameFormatRule{},
		triggerPhraseRule{},
		docLengthRule{},
		refLengthRule{},
		brokenReferenceRule{},
		versionRule{},
		versionFormatRule{},
		shebangRule{},
	}
}

// frontmatterRule maps a frontmatter parse failure to its issue code.
type frontmatterRule struct{}

func (frontmatterRule) Name() string { return "frontmatter" }

func (frontmatterRule) Check(ctx *Context) []validator.Issue {
	if ctx.Doc == nil || ctx.ParseErr == nil {
		return nil
	}
	switch {
	case errors.Is(ctx.ParseErr, frontmatter.ErrMissingFrontmatter):
		return []validator.Issue{ctx.issue(validator.CodeMissingFrontmatter, validator.SeverityError,
			"document does not open with a --- frontmatter block", skill.DocFileName)}
	case errors.Is(ctx.ParseErr, frontmatter.ErrUnterminatedFrontmatter):
		return []validator.Issue{ctx.issue(validator.CodeUnterminatedFrontmatter, validator.SeverityError,
			"frontmatter block is opened but never closed", skill.DocFileName)}
	default:
		cause := ctx.ParseErr
		var perr *parser.ParseError
		if errors.As(ctx.ParseErr, &perr) {
			cause = perr.Err
		}
		return []validator.Issue{ctx.issue(validator.CodeMalformedFrontmatter, validator.SeverityError,
			fmt.Sprintf("frontmatter is not a valid YAML mapping: %v", cause), skill.DocFileName)}
	}
}

// requiredFieldsRule checks that name, description, and license are present.
type requiredFieldsRule struct{}

func (requiredFieldsRule) Name() string { return "required-fields" }

func (requiredFieldsRule) Check(ctx *Context) []validator.Issue {
	if ctx.Manifest == nil {
		return nil
	}
	fields := []struct {
		name  string
		value string
	}{
		{"name", ctx.Manifest.Name},
		{"description", ctx.Manifest.Description},
		{"license", ctx.Manifest.License},
	}
	var issues []validator.Issue
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			issues = append(issues, ctx.issue(validator.CodeMissingRequiredField, validator.SeverityError,
				fmt.Sprintf("required field %q is missing", f.name), skill.DocFileName))
		}
	}
	return issues
}

// nameMismatchRule checks that the frontmatter name equals the directory
// name, case-sensitively.
type nameMismatchRule struct{}

func (nameMismatchRule) Name() string { return "name-mismatch" }

func (nameMismatchRule) Check(ctx *Context) []validator.Issue {
	if ctx.Manifest == nil || ctx.Manifest.Name == "" {
		return nil
	}
	if ctx.Manifest.Name == ctx.Pkg.Name {
		return nil
	}
	return []validator.Issue{ctx.issue(validator.CodeNameMismatch, validator.SeverityError,
		fmt.Sprintf("frontmatter name %q does not match directory %q", ctx.Manifest.Name, ctx.Pkg.Name),
		skill.DocFileName)}
}

const maxNameLength = 64

// nameRegex validates skill names: lowercase alphanumeric, single hyphens
// between segments, no start/end hyphen, no consecutive hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// nameFormatRule checks the name against the kebab-case naming convention.
type nameFormatRule struct{}

func (nameFormatRule) Name() string { return "name-format" }

func (nameFormatRule) Check(ctx *Context) []validator.Issue {
	if ctx.Manifest == nil || ctx.Manifest.Name == "" {
		return nil
	}
	name := ctx.Manifest.Name

	var issues []validator.Issue
	if len(name) > maxNameLength {
		issues = append(issues, ctx.issue(validator.CodeInvalidName, validator.SeverityWarning,
			fmt.Sprintf("name exceeds maximum length of %d characters", maxNameLength), skill.DocFileName))
	}
	if !nameRegex.MatchString(name) {
		msg := "name must be lowercase alphanumeric with single hyphens between segments"
		switch {
		case strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-"):
			msg = "name cannot start or end with a hyphen"
		case strings.Contains(name, "--"):
			msg = "name cannot contain consecutive hyphens"
		case strings.ToLower(name) != name:
			msg = "name must be lowercase"
		}
		issues = append(issues, ctx.issue(validator.CodeInvalidName, validator.SeverityWarning,
			msg, skill.DocFileName))
	}
	return issues
}

// triggerPhraseRule checks that the description carries something an agent
// could match on: a quoted phrase or a comma-separated phrase list.
type triggerPhraseRule struct{}

func (triggerPhraseRule) Name() string { return "trigger-phrase" }

func (triggerPhraseRule) Check(ctx *Context) []validator.Issue {
	if ctx.Manifest == nil {
		return nil
	}
	desc := ctx.Manifest.Description
	if strings.TrimSpace(desc) == "" {
		// required-fields reports the absence
		return nil
	}
	if hasTriggerPhrase(desc) {
		return nil
	}
	return []validator.Issue{ctx.issue(validator.CodeNoTriggerPhrase, validator.SeverityWarning,
		"description contains no quoted trigger phrase or comma-separated phrase list",
		skill.DocFileName)}
}

func hasTriggerPhrase(desc string) bool {
	if hasQuotedPhrase(desc) {
		return true
	}
	entries := 0
	for _, part := range strings.Split(desc, ",") {
		if strings.TrimSpace(part) != "" {
			entries++
		}
	}
	return entries >= 2
}

func hasQuotedPhrase(s string) bool {
	if quotedSpan(s, '"', '"') || quotedSpan(s, '“', '”') {
		return true
	}
	return singleQuotedPhrase(s)
}

// quotedSpan reports whether s contains a non-empty span between open and
// close quote runes.
func quotedSpan(s string, open, close rune) bool {
	start := strings.IndexRune(s, open)
	if start < 0 {
		return false
	}
	rest := s[start+utf8.RuneLen(open):]
	return strings.IndexRune(rest, close) > 0
}

// singleQuotedPhrase finds 'phrase' spans. Quotes only open and close at
// word boundaries, so apostrophes inside words never start a phrase.
func singleQuotedPhrase(s string) bool {
	runes := []rune(s)
	open := -1
	for i, r := range runes {
		if r != '\'' {
			continue
		}
		prevIsWord := i > 0 && isWordRune(runes[i-1])
		nextIsWord := i < len(runes)-1 && isWordRune(runes[i+1])
		if open < 0 {
			if !prevIsWord && nextIsWord {
				open = i
			}
			continue
		}
		if !nextIsWord && i > open+1 {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// docLengthRule checks the primary document against the non-blank line limit.
type docLengthRule struct{}

func (docLengthRule) Name() string { return "document-length" }

func (docLengthRule) Check(ctx *Context) []validator.Issue {
	if ctx.Doc == nil {
		return nil
	}
	lines := markdown.CountNonBlank(ctx.Doc)
	if lines <= ctx.Limits.SkillLines {
		return nil
	}
	return []validator.Issue{ctx.issue(validator.CodeDocumentTooLong, validator.SeverityWarning,
		fmt.Sprintf("document has %d non-blank lines (limit %d)", lines, ctx.Limits.SkillLines),
		skill.DocFileName)}
}

// refLengthRule checks every file under references/ against the non-blank
// line limit. It runs even when the primary document is missing.
type refLengthRule struct{}

func (refLengthRule) Name() string { return "reference-length" }

func (refLengthRule) Check(ctx *Context) []validator.Issue {
	var issues []validator.Issue
	for _, rel := range ctx.Pkg.References() {
		data, err := ctx.ReadAux(rel)
		if err != nil {
			issues = append(issues, ctx.issue(validator.CodeUnreadableFile, validator.SeverityError,
				fmt.Sprintf("cannot read %s: %v", rel, err), rel))
			continue
		}
		lines := markdown.CountNonBlank(data)
		if lines > ctx.Limits.ReferenceLines {
			issues = append(issues, ctx.issue(validator.CodeReferenceTooLong, validator.SeverityWarning,
				fmt.Sprintf("reference has %d non-blank lines (limit %d)", lines, ctx.Limits.ReferenceLines),
				rel))
		}
	}
	return issues
}

// refMentionPattern matches bare references/ paths in running text, used for
// explicit mentions under a References heading that are not markdown links.
var refMentionPattern = regexp.MustCompile("\\breferences/[^\\s)\\]\"'`]+")

// brokenReferenceRule resolves reference candidates against the package's
// auxiliary files. Candidates are links into references/ anywhere in the
// document, plus every local link and bare references/ mention under a
// "References" heading.
type brokenReferenceRule struct{}

func (brokenReferenceRule) Name() string { return "broken-reference" }

func (brokenReferenceRule) Check(ctx *Context) []validator.Issue {
	if ctx.Markdown == nil {
		return nil
	}

	type candidate struct {
		target string
		line   int
	}
	var cands []candidate
	seen := make(map[candidate]bool)
	add := func(target string, line int) {
		c := candidate{target: target, line: line}
		if seen[c] {
			return
		}
		seen[c] = true
		cands = append(cands, c)
	}

	start, end, hasSection := ctx.Markdown.Section("References")

	for _, link := range ctx.Markdown.Links() {
		target, ok := localTarget(link.Target)
		if !ok {
			continue
		}
		inSection := hasSection && link.Line >= start && link.Line <= end
		if inSection || strings.HasPrefix(target, "references/") {
			add(target, link.Line)
		}
	}

	if hasSection {
		for i, text := range ctx.Markdown.SliceLines(start, end) {
			for _, m := range refMentionPattern.FindAllString(text, -1) {
				target, ok := localTarget(strings.TrimRight(m, ".,;:"))
				if !ok {
					continue
				}
				add(target, start+i)
			}
		}
	}

	var issues []validator.Issue
	for _, c := range cands {
		if ctx.Pkg.HasAuxiliary(c.target) {
			continue
		}
		issues = append(issues, ctx.issue(validator.CodeBrokenReference, validator.SeverityError,
			fmt.Sprintf("link target %q does not resolve to a package file", c.target),
			fmt.Sprintf("%s:%d", skill.DocFileName, c.line)))
	}
	return issues
}

// localTarget normalizes a link destination to a package-relative path.
// External URLs, absolute paths, pure fragments, and paths escaping the
// package directory are not checkable and report false.
func localTarget(raw string) (string, bool) {
	t := raw
	if i := strings.IndexAny(t, "#?"); i >= 0 {
		t = t[:i]
	}
	if t == "" {
		return "", false
	}
	if strings.Contains(t, "://") || strings.HasPrefix(t, "mailto:") {
		return "", false
	}
	if strings.HasPrefix(t, "/") {
		return "", false
	}
	t = path.Clean(t)
	if t == "." || t == ".." || strings.HasPrefix(t, "../") {
		return "", false
	}
	return t, true
}

// versionRule checks that metadata.version is set.
type versionRule struct{}

func (versionRule) Name() string { return "version" }

func (versionRule) Check(ctx *Context) []validator.Issue {
	if ctx.Manifest == nil || ctx.Manifest.Version() != "" {
		return nil
	}
	return []validator.Issue{ctx.issue(validator.CodeMissingVersion, validator.SeverityWarning,
		"metadata.version is not set", skill.DocFileName)}
}

// versionRegex accepts semantic-version-like strings: 1, 1.2, 1.2.3, an
// optional leading v, and optional pre-release/build suffixes.
var versionRegex = regexp.MustCompile(`^v?\d+(\.\d+){0,2}(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)

// versionFormatRule checks that a present metadata.version looks like a
// semantic version.
type versionFormatRule struct{}

func (versionFormatRule) Name() string { return "version-format" }

func (versionFormatRule) Check(ctx *Context) []validator.Issue {
	if ctx.Manifest == nil {
		return nil
	}
	version := ctx.Manifest.Version()
	if version == "" || versionRegex.MatchString(version) {
		return nil
	}
	return []validator.Issue{ctx.issue(validator.CodeInvalidVersion, validator.SeverityWarning,
		fmt.Sprintf("metadata.version %q is not a semantic version", version), skill.DocFileName)}
}

// scriptExtensions lists the extensions treated as interpreted scripts.
var scriptExtensions = map[string]bool{
	".sh":   true,
	".bash": true,
	".zsh":  true,
	".py":   true,
	".rb":   true,
	".pl":   true,
}

// shebangRule checks that interpreted scripts open with a #! line.
type shebangRule struct{}

func (shebangRule) Name() string { return "shebang" }

func (shebangRule) Check(ctx *Context) []validator.Issue {
	var issues []validator.Issue
	for _, rel := range ctx.Pkg.Scripts() {
		if !scriptExtensions[strings.ToLower(path.Ext(rel))] {
			continue
		}
		data, err := ctx.ReadAux(rel)
		if err != nil {
			issues = append(issues, ctx.issue(validator.CodeUnreadableFile, validator.SeverityError,
				fmt.Sprintf("cannot read %s: %v", rel, err), rel))
			continue
		}
		if bytes.HasPrefix(data, []byte("#!")) {
			continue
		}
		issues = append(issues, ctx.issue(validator.CodeScriptMissingShebang, validator.SeverityWarning,
			"script does not start with an interpreter directive", rel))
	}
	return issues
}
