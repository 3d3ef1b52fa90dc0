package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", errors.Newf("unknown format %q (expected text or json)", s)
	}
}

// Reporter formats and writes validation reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation report to the output. The report is sorted
// first so output is deterministic for a given issue set.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}
	report.Sort()

	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	default:
		return r.reportText(report)
	}
}

// jsonIssue and jsonSummary fix the wire shape of the JSON report. Location
// is a pointer so an absent location serializes as null rather than "".
type jsonIssue struct {
	Skill    string  `json:"skill"`
	Severity string  `json:"severity"`
	Code     string  `json:"code"`
	Message  string  `json:"message"`
	Location *string `json:"location"`
}

type jsonSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

type jsonReport struct {
	Issues  []jsonIssue `json:"issues"`
	Summary jsonSummary `json:"summary"`
}

// MarshalReport renders the report in the JSON wire shape without writing it
// anywhere. Callers that persist reports to disk use this.
func MarshalReport(report *Report) ([]byte, error) {
	return json.MarshalIndent(toWire(report), "", "  ")
}

func toWire(report *Report) jsonReport {
	wire := jsonReport{Issues: make([]jsonIssue, 0, len(report.Issues))}
	for _, i := range report.Issues {
		ji := jsonIssue{
			Skill:    i.Skill,
			Severity: i.Severity.String(),
			Code:     string(i.Code),
			Message:  i.Message,
		}
		if i.Location != "" {
			loc := i.Location
			ji.Location = &loc
		}
		wire.Issues = append(wire.Issues, ji)
	}
	s := report.Summarize()
	wire.Summary = jsonSummary{Errors: s.Errors, Warnings: s.Warnings}
	return wire
}

// reportJSON writes the report as a single JSON object.
func (r *Reporter) reportJSON(report *Report) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(toWire(report)), "encoding JSON report")
}

// reportText writes one line per issue followed by a summary line.
func (r *Reporter) reportText(report *Report) error {
	for _, issue := range report.Issues {
		fmt.Fprintln(r.out, r.formatIssue(issue))
	}

	s := report.Summarize()
	if len(report.Issues) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Summary: %s, %s, %d package(s) with errors\n",
		pluralize(s.Errors, "error"),
		pluralize(s.Warnings, "warning"),
		s.PackagesWithErrors)
	return nil
}

// formatIssue colors the severity token and dims the location, leaving the
// rest of the line untouched.
func (r *Reporter) formatIssue(i Issue) string {
	severity := strings.ToUpper(i.Severity.String())
	switch i.Severity {
	case SeverityError:
		severity = color.RedString(severity)
	case SeverityWarning:
		severity = color.YellowString(severity)
	}

	var sb strings.Builder
	sb.WriteString(severity)
	sb.WriteString(": [")
	sb.WriteString(i.Skill)
	sb.WriteString("] ")
	sb.WriteString(string(i.Code))
	sb.WriteString(": ")
	sb.WriteString(i.Message)
	if i.Location != "" {
		sb.WriteString(" ")
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", i.Location))
	}
	return sb.String()
}

func pluralize(n int, noun string) string {
	return fmt.Sprintf("%d %s(s)", n, noun)
}
