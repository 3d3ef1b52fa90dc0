// Package rules applies the validation rule set to skill packages and
// produces the issues that make up a validation report.
package rules

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rengarcia/web-quality-skills/internal/config"
	"github.com/rengarcia/web-quality-skills/internal/logging"
	"github.com/rengarcia/web-quality-skills/internal/markdown"
	"github.com/rengarcia/web-quality-skills/internal/skill"
	"github.com/rengarcia/web-quality-skills/internal/skill/parser"
	"github.com/rengarcia/web-quality-skills/internal/validator"
	"github.com/rengarcia/web-quality-skills/pkg/fileutil"
	"github.com/rengarcia/web-quality-skills/pkg/frontmatter"
)

// Context carries everything the rules need to inspect one package.
// Rules never mutate it.
type Context struct {
	// Pkg is the package under validation.
	Pkg *skill.Package

	// Doc holds the raw SKILL.md bytes, nil when the document is missing or
	// unreadable.
	Doc []byte

	// DocErr is the read failure for the primary document, if any.
	DocErr error

	// Manifest is the parsed frontmatter, nil when parsing failed.
	Manifest *skill.Manifest

	// ParseErr is the frontmatter failure, nil when Manifest is set.
	ParseErr error

	// Markdown is the parsed document. The frontmatter region is blanked
	// before parsing so node line numbers match the file while the header
	// text produces no markdown nodes.
	Markdown *markdown.Document

	// Limits configures the length rules.
	Limits config.Limits
}

// ReadAux reads one of the package's auxiliary files. rel is slash-separated
// and relative to the package directory.
func (c *Context) ReadAux(rel string) ([]byte, error) {
	return fileutil.ReadFileWithLimit(filepath.Join(c.Pkg.Dir, filepath.FromSlash(rel)))
}

// issue builds an Issue scoped to the context's package.
func (c *Context) issue(code validator.Code, sev validator.Severity, message, location string) validator.Issue {
	return validator.Issue{
		Skill:    c.Pkg.Name,
		Severity: sev,
		Code:     code,
		Message:  message,
		Location: location,
	}
}

// Rule is one validation rule. Rules run independently: no rule's outcome
// gates another, and every applicable rule reports.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check inspects the package and returns any violations found.
	Check(ctx *Context) []validator.Issue
}

// Engine runs the rule set over packages.
type Engine struct {
	// Limits configures the document length rules. Zero values fall back
	// to the defaults.
	Limits config.Limits

	// Workers caps the validation worker pool. Zero means GOMAXPROCS.
	Workers int

	rules  []Rule
	parser *parser.Parser
	logger *slog.Logger
}

// NewEngine creates an Engine with the default rule set and a stderr warn
// logger.
func NewEngine() *Engine {
	return NewEngineWithLogger(logging.Default())
}

// NewEngineWithLogger creates an Engine with the default rule set.
func NewEngineWithLogger(logger *slog.Logger) *Engine {
	return &Engine{
		Limits: config.Limits{
			SkillLines:     config.DefaultSkillLines,
			ReferenceLines: config.DefaultReferenceLines,
		},
		rules:  defaultRules(),
		parser: parser.New(),
		logger: logger,
	}
}

// Rules returns the engine's rule set in registration order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// ValidateAll validates every package and aggregates the issues into a
// sorted report. Packages are validated concurrently; results are keyed by
// package index so the report never depends on completion order.
func (e *Engine) ValidateAll(pkgs []skill.Package) *validator.Report {
	report := &validator.Report{}
	if len(pkgs) == 0 {
		return report
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if len(pkgs) < workers {
		workers = len(pkgs)
	}

	results := make([][]validator.Issue, len(pkgs))
	work := make(chan int, len(pkgs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = e.Validate(&pkgs[idx])
			}
		}()
	}

	for i := range pkgs {
		work <- i
	}
	close(work)
	wg.Wait()

	for _, issues := range results {
		report.Add(issues...)
	}
	report.Sort()
	return report
}

// Validate runs the rule set over one package. A package whose directory
// could not be scanned, or which has no SKILL.md, yields its single gating
// issue and is excluded from rule checks.
func (e *Engine) Validate(pkg *skill.Package) []validator.Issue {
	var issues []validator.Issue

	dirUnreadable := false
	for _, rf := range pkg.ReadFailures {
		location := rf.Path
		if rf.Path == "." {
			dirUnreadable = true
			location = ""
		}
		issues = append(issues, validator.Issue{
			Skill:    pkg.Name,
			Severity: validator.SeverityError,
			Code:     validator.CodeUnreadableFile,
			Message:  fmt.Sprintf("cannot read %s: %v", describePath(rf.Path), rf.Err),
			Location: location,
		})
	}
	if dirUnreadable {
		return issues
	}

	if !pkg.HasDoc() {
		return append(issues, validator.Issue{
			Skill:    pkg.Name,
			Severity: validator.SeverityError,
			Code:     validator.CodeMissingSkillDoc,
			Message:  "package has no SKILL.md document",
		})
	}

	ctx := e.load(pkg)
	if ctx.DocErr != nil {
		issues = append(issues, validator.Issue{
			Skill:    pkg.Name,
			Severity: validator.SeverityError,
			Code:     validator.CodeUnreadableFile,
			Message:  fmt.Sprintf("cannot read %s: %v", skill.DocFileName, ctx.DocErr),
			Location: skill.DocFileName,
		})
	}

	for _, rule := range e.rules {
		found := rule.Check(ctx)
		if len(found) > 0 {
			e.logger.Debug("rule reported issues",
				"rule", rule.Name(),
				"skill", pkg.Name,
				"count", len(found))
		}
		issues = append(issues, found...)
	}
	return issues
}

// load reads and parses the package's primary document. Failures are
// recorded on the context rather than returned: the rules decide what, if
// anything, they can still check.
func (e *Engine) load(pkg *skill.Package) *Context {
	ctx := &Context{Pkg: pkg, Limits: e.limits()}

	doc, err := fileutil.ReadFileWithLimit(pkg.DocPath)
	if err != nil {
		ctx.DocErr = err
		return ctx
	}
	ctx.Doc = doc

	manifest, err := e.parser.ParseBytes(doc, pkg.DocPath)
	if err != nil {
		ctx.ParseErr = err
	} else {
		ctx.Manifest = manifest
	}

	ctx.Markdown = markdown.Parse(blankHeader(doc))
	return ctx
}

func (e *Engine) limits() config.Limits {
	l := e.Limits
	if l.SkillLines <= 0 {
		l.SkillLines = config.DefaultSkillLines
	}
	if l.ReferenceLines <= 0 {
		l.ReferenceLines = config.DefaultReferenceLines
	}
	return l
}

// blankHeader replaces the frontmatter region with spaces, preserving line
// structure so markdown node positions match the original file.
func blankHeader(doc []byte) []byte {
	_, body, opened, closed := frontmatter.Split(doc)
	if !opened || !closed {
		return doc
	}
	headerLen := len(doc) - len(body)
	out := make([]byte, len(doc))
	copy(out, doc)
	for i := 0; i < headerLen; i++ {
		if out[i] != '\n' && out[i] != '\r' {
			out[i] = ' '
		}
	}
	return out
}

func describePath(rel string) string {
	if rel == "." {
		return "skill directory"
	}
	return rel
}
