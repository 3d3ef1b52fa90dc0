// Package validator provides the report model shared by the rule engine and
// the command layer.
//
// It defines the types for representing validation issues and the aggregate
// report with its summary counts and pass/fail determination.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes between blocking errors and non-blocking warnings.
//   - [Code]: Names the rule an issue violated; codes have a fixed report order.
//   - [Issue]: One detected violation, scoped to a skill package.
//   - [Report]: The ordered issue sequence for a whole run.
//   - [Reporter]: Renders a report as text or JSON.
//
// # Basic Usage
//
//	report := &validator.Report{}
//	report.Add(validator.Issue{
//		Skill:    "web-perf",
//		Severity: validator.SeverityError,
//		Code:     validator.CodeNameMismatch,
//		Message:  `frontmatter name "perf" does not match directory "web-perf"`,
//	})
//
//	if !report.Passed(false) {
//		// handle validation failure
//	}
package validator
