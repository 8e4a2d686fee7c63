// Package rules implements the driftlint rule engine: the pattern tables for
// chaotic filenames, the naming-convention classifier, and the four checks
// that run over a scanned inventory.
//
// Every check is a pure function over the immutable inventory: it reads the
// scan output and returns issues, it never mutates shared state. Issue order
// within a check follows inventory scan order, so repeated runs over an
// unchanged tree produce identical reports.
package rules

import (
	"fmt"
	"regexp"

	dlerrors "github.com/driftlint/driftlint/internal/errors"
	"github.com/driftlint/driftlint/internal/types"
)

// NamePattern is one row of the forbidden table: a compiled pattern plus the
// human-readable rationale embedded in issue messages.
type NamePattern struct {
	Pattern   *regexp.Regexp
	Rationale string
}

// RuleSet holds the compiled, ordered pattern tables. It is built once at
// startup and immutable for the lifetime of a run.
type RuleSet struct {
	forbidden []NamePattern
	allowed   []*regexp.Regexp
}

// forbiddenTable lists the chaos signals, ordered: version suffixes first,
// then lifecycle-state words, then generic chaos words, then the bare "test"
// substring that catches stray ad-hoc test files.
var forbiddenTable = []struct {
	pattern   string
	rationale string
}{
	{`(?i)v\d+`, "version suffix (v2, v3, ...)"},
	{`(?i)updated`, "\"updated\" suffix"},
	{`(?i)enhanced`, "\"enhanced\" suffix"},
	{`(?i)improved`, "\"improved\" suffix"},
	{`(?i)fixed`, "\"fixed\" suffix"},
	{`(?i)corrected`, "\"corrected\" suffix"},
	{`(?i)modified`, "\"modified\" suffix"},
	{`(?i)new`, "\"new\" prefix/suffix"},
	{`(?i)copy`, "\"copy\" marker"},
	{`(?i)backup`, "\"backup\" marker"},
	{`(?i)old`, "\"old\" marker"},
	{`(?i)temp`, "\"temp\" marker"},
	{`(?i)draft`, "\"draft\" marker"},
	{`(?i)working`, "\"working\" marker"},
	{`(?i)final`, "\"final\" marker"},
	{`(?i)latest`, "\"latest\" marker"},
	{`(?i)current`, "\"current\" marker"},
	{`(?i)test`, "stray \"test\" file outside a test directory"},
}

// allowedTable lists the overrides that exempt a file from the forbidden
// table entirely: real test/spec files, files living in a test directory,
// and explicit backup extensions.
var allowedTable = []string{
	`\.test\.`,
	`\.spec\.`,
	`(^|/)(test|tests|__tests__)(/|$)`,
	`\.(backup|bak)$`,
}

// NewRuleSet compiles the built-in tables. The built-ins always come first;
// user-supplied entries are appended via AddForbidden / AddAllowed.
func NewRuleSet() *RuleSet {
	rs := &RuleSet{
		forbidden: make([]NamePattern, 0, len(forbiddenTable)),
		allowed:   make([]*regexp.Regexp, 0, len(allowedTable)),
	}
	for _, row := range forbiddenTable {
		rs.forbidden = append(rs.forbidden, NamePattern{
			Pattern:   regexp.MustCompile(row.pattern),
			Rationale: row.rationale,
		})
	}
	for _, pattern := range allowedTable {
		rs.allowed = append(rs.allowed, regexp.MustCompile(pattern))
	}
	return rs
}

// AddForbidden appends a user-supplied forbidden pattern.
func (rs *RuleSet) AddForbidden(pattern, rationale string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return dlerrors.NewConfigError("rules_forbidden_pattern",
			"invalid forbidden pattern "+pattern, err)
	}
	if rationale == "" {
		rationale = "custom forbidden pattern"
	}
	rs.forbidden = append(rs.forbidden, NamePattern{Pattern: re, Rationale: rationale})
	return nil
}

// AddAllowed appends a user-supplied allowed override pattern.
func (rs *RuleSet) AddAllowed(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return dlerrors.NewConfigError("rules_allowed_pattern",
			"invalid allowed pattern "+pattern, err)
	}
	rs.allowed = append(rs.allowed, re)
	return nil
}

// Forbidden returns the compiled forbidden table in order.
func (rs *RuleSet) Forbidden() []NamePattern {
	return rs.forbidden
}

// Allowed returns the compiled allowed table in order.
func (rs *RuleSet) Allowed() []*regexp.Regexp {
	return rs.allowed
}

// IsAllowed reports whether any allowed pattern matches the record's full
// path or filename. Allowed files are exempt from the forbidden table no
// matter how many forbidden patterns they match.
func (rs *RuleSet) IsAllowed(rec types.FileRecord) bool {
	for _, re := range rs.allowed {
		if re.MatchString(rec.Path) || re.MatchString(rec.Filename) {
			return true
		}
	}
	return false
}

// CheckForbiddenNames tests every inventory record against the forbidden
// table. Every matching pattern produces its own issue: a name like
// "appFinalV2copy.js" is reported once per matched token, so nothing
// problematic hides behind a first-match-wins policy.
func CheckForbiddenNames(inv *types.Inventory, rs *RuleSet) []types.Issue {
	var issues []types.Issue

	for _, rec := range inv.Records() {
		if rs.IsAllowed(rec) {
			continue
		}
		for _, np := range rs.forbidden {
			if np.Pattern.MatchString(rec.Filename) || np.Pattern.MatchString(rec.Stem) {
				issues = append(issues, types.NewIssue(
					types.KindForbiddenFilename,
					rec.Path,
					fmt.Sprintf("filename %q matches forbidden pattern: %s", rec.Filename, np.Rationale),
					"edit the original file in place instead of creating a renamed variant",
				))
			}
		}
	}

	return issues
}
