// Package validator defines the validation report model: issues keyed by
// rule code, severity levels, and the aggregate report with its summary.
package validator

import (
	"fmt"
	"sort"
	"strings"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a recommended but non-blocking issue.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Code names the rule an issue violated.
type Code string

const (
	CodeMissingSkillDoc         Code = "MissingSkillDoc"
	CodeUnreadableFile          Code = "UnreadableFile"
	CodeMissingFrontmatter      Code = "MissingFrontmatter"
	CodeUnterminatedFrontmatter Code = "UnterminatedFrontmatter"
	CodeMalformedFrontmatter    Code = "MalformedFrontmatter"
	CodeMissingRequiredField    Code = "MissingRequiredField"
	CodeNameMismatch            Code = "NameMismatch"
	CodeInvalidName             Code = "InvalidName"
	CodeNoTriggerPhrase         Code = "NoTriggerPhrase"
	CodeDocumentTooLong         Code = "DocumentTooLong"
	CodeReferenceTooLong        Code = "ReferenceTooLong"
	CodeBrokenReference         Code = "BrokenReference"
	CodeMissingVersion          Code = "MissingVersion"
	CodeInvalidVersion          Code = "InvalidVersion"
	CodeScriptMissingShebang    Code = "ScriptMissingShebang"
)

// codeOrder fixes the emission order of codes within one package, giving
// reports a stable shape no matter which rule produced an issue first.
var codeOrder = map[Code]int{
	CodeMissingSkillDoc:         0,
	CodeUnreadableFile:          1,
	CodeMissingFrontmatter:      2,
	CodeUnterminatedFrontmatter: 3,
	CodeMalformedFrontmatter:    4,
	CodeMissingRequiredField:    5,
	CodeNameMismatch:            6,
	CodeInvalidName:             7,
	CodeNoTriggerPhrase:         8,
	CodeDocumentTooLong:         9,
	CodeReferenceTooLong:        10,
	CodeBrokenReference:         11,
	CodeMissingVersion:          12,
	CodeInvalidVersion:          13,
	CodeScriptMissingShebang:    14,
}

func (c Code) rank() int {
	if r, ok := codeOrder[c]; ok {
		return r
	}
	return len(codeOrder)
}

// Issue represents a single validation problem. Issues are immutable once
// created.
type Issue struct {
	// Skill is the name of the package the issue belongs to.
	Skill string
	// Severity indicates the impact of the issue.
	Severity Severity
	// Code names the violated rule.
	Code Code
	// Message is a human-readable description of the problem.
	Message string
	// Location is the file path the issue points at, optionally suffixed
	// with ":<line>". Empty when the issue has no meaningful location.
	Location string
}

// String renders the issue as one report line:
//
//	ERROR: [skill-name] CodeName: message (location)
func (i Issue) String() string {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(i.Severity.String()))
	sb.WriteString(": [")
	sb.WriteString(i.Skill)
	sb.WriteString("] ")
	sb.WriteString(string(i.Code))
	sb.WriteString(": ")
	sb.WriteString(i.Message)
	if i.Location != "" {
		fmt.Fprintf(&sb, " (%s)", i.Location)
	}
	return sb.String()
}

// Report aggregates validation issues for one run. It holds no state beyond
// the issues themselves.
type Report struct {
	Issues []Issue
}

// Add appends issues to the report.
func (r *Report) Add(issues ...Issue) {
	r.Issues = append(r.Issues, issues...)
}

// Sort orders issues by skill name ascending, then rule order, then location,
// then message. Sorting the final report makes the output independent of
// rule scheduling and file-system iteration order.
func (r *Report) Sort() {
	sort.SliceStable(r.Issues, func(a, b int) bool {
		ia, ib := r.Issues[a], r.Issues[b]
		if ia.Skill != ib.Skill {
			return ia.Skill < ib.Skill
		}
		if ia.Code.rank() != ib.Code.rank() {
			return ia.Code.rank() < ib.Code.rank()
		}
		if ia.Location != ib.Location {
			return ia.Location < ib.Location
		}
		return ia.Message < ib.Message
	})
}

// HasErrors returns true if any issue has SeverityError.
func (r *Report) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Report) HasWarnings() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Passed reports whether the run succeeded: no errors, and under strict mode
// no warnings either. Warnings alone never fail a non-strict run.
func (r *Report) Passed(strict bool) bool {
	if r.HasErrors() {
		return false
	}
	if strict && r.HasWarnings() {
		return false
	}
	return true
}

// Summary holds the aggregate counts for a report.
type Summary struct {
	Errors             int
	Warnings           int
	PackagesWithErrors int
}

// Summarize computes the summary counts for the report.
func (r *Report) Summarize() Summary {
	var s Summary
	failed := make(map[string]bool)
	for _, i := range r.Issues {
		switch i.Severity {
		case SeverityError:
			s.Errors++
			failed[i.Skill] = true
		case SeverityWarning:
			s.Warnings++
		}
	}
	s.PackagesWithErrors = len(failed)
	return s
}
