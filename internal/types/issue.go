package types

// Severity classifies how serious an issue is. Only error-severity issues
// fail the audit; warnings and infos are informational.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank orders severities for report grouping (error first).
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// IssueKind identifies which rule check produced an issue.
type IssueKind string

const (
	KindForbiddenFilename  IssueKind = "forbidden_filename"
	KindCaseInconsistency  IssueKind = "case_inconsistency"
	KindDuplicateFile      IssueKind = "duplicate_file"
	KindImportCaseMismatch IssueKind = "import_case_mismatch"
)

// Severity returns the fixed severity for this kind of issue.
func (k IssueKind) Severity() Severity {
	if k == KindCaseInconsistency {
		return SeverityWarning
	}
	return SeverityError
}

// Issue is a single structured finding. Issues are append-only, ordered by
// discovery, and independent of each other.
type Issue struct {
	// Kind identifies the rule check that produced the issue
	Kind IssueKind `json:"kind"`
	// Severity is fixed per kind
	Severity Severity `json:"severity"`
	// File is the path the issue is attributed to
	File string `json:"file"`
	// Message describes the violation
	Message string `json:"message"`
	// Suggestion proposes a remedy (may be empty)
	Suggestion string `json:"suggestion,omitempty"`
}

// NewIssue builds an issue with the severity implied by its kind.
func NewIssue(kind IssueKind, file, message, suggestion string) Issue {
	return Issue{
		Kind:       kind,
		Severity:   kind.Severity(),
		File:       file,
		Message:    message,
		Suggestion: suggestion,
	}
}
