// Package report aggregates issues into the final audit report and renders
// it for humans (text) and machines (JSON, SARIF).
//
// The reporter is pure: it consumes the issue list produced by the checks
// and computes counts, grouping, and the process outcome without touching
// the filesystem or any shared state.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/driftlint/driftlint/internal/types"
)

// Report is the aggregate outcome of one audit run.
type Report struct {
	// Root is the directory that was audited
	Root string `json:"root"`
	// FilesScanned is the inventory size
	FilesScanned int `json:"files_scanned"`
	// Issues holds every finding in discovery order
	Issues []types.Issue `json:"issues"`
}

// New builds a report over the issues from one run.
func New(root string, filesScanned int, issues []types.Issue) *Report {
	return &Report{
		Root:         root,
		FilesScanned: filesScanned,
		Issues:       issues,
	}
}

// CountBySeverity returns the number of issues at the given severity.
func (r *Report) CountBySeverity(sev types.Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			n++
		}
	}
	return n
}

// Failed reports whether the run should fail: true iff at least one
// error-severity issue exists. Warnings never fail a run.
func (r *Report) Failed() bool {
	return r.CountBySeverity(types.SeverityError) > 0
}

// ExitCode maps the report outcome onto the process exit status.
func (r *Report) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// severityOrder is the fixed display order.
var severityOrder = []types.Severity{
	types.SeverityError,
	types.SeverityWarning,
	types.SeverityInfo,
}

// bySeverity groups issues per severity, preserving discovery order within
// each group.
func (r *Report) bySeverity() map[types.Severity][]types.Issue {
	grouped := make(map[types.Severity][]types.Issue)
	for _, issue := range r.Issues {
		grouped[issue.Severity] = append(grouped[issue.Severity], issue)
	}
	return grouped
}

// RenderText writes the human-readable report.
func (r *Report) RenderText(w io.Writer) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("driftlint audit report\n")
	b.WriteString("root: " + r.Root + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")

	grouped := r.bySeverity()
	for _, sev := range severityOrder {
		issues := grouped[sev]
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%d)\n", strings.ToUpper(string(sev)), len(issues))
		for _, issue := range issues {
			fmt.Fprintf(&b, "  [%s] %s\n", issue.Kind, issue.Message)
			fmt.Fprintf(&b, "      file: %s\n", issue.File)
			if issue.Suggestion != "" {
				fmt.Fprintf(&b, "      suggestion: %s\n", issue.Suggestion)
			}
		}
	}

	b.WriteString("\n" + strings.Repeat("-", 60) + "\n")
	fmt.Fprintf(&b, "files scanned: %d\n", r.FilesScanned)
	fmt.Fprintf(&b, "total issues:  %d\n", len(r.Issues))
	fmt.Fprintf(&b, "  errors:   %d\n", r.CountBySeverity(types.SeverityError))
	fmt.Fprintf(&b, "  warnings: %d\n", r.CountBySeverity(types.SeverityWarning))
	fmt.Fprintf(&b, "  infos:    %d\n", r.CountBySeverity(types.SeverityInfo))
	if r.Failed() {
		b.WriteString("result: FAIL\n")
	} else {
		b.WriteString("result: PASS\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes the report as indented JSON with a summary block.
func (r *Report) RenderJSON(w io.Writer) error {
	payload := struct {
		*Report
		Summary map[string]int `json:"summary"`
		Failed  bool           `json:"failed"`
	}{
		Report: r,
		Summary: map[string]int{
			"errors":   r.CountBySeverity(types.SeverityError),
			"warnings": r.CountBySeverity(types.SeverityWarning),
			"infos":    r.CountBySeverity(types.SeverityInfo),
		},
		Failed: r.Failed(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
