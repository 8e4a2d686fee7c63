package report

import (
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/driftlint/driftlint/internal/types"
)

const toolURI = "https://github.com/driftlint/driftlint"

// ruleDescriptions provide the SARIF rule metadata, one rule per issue kind.
var ruleDescriptions = map[types.IssueKind]string{
	types.KindForbiddenFilename:  "Filename matches a forbidden chaos pattern",
	types.KindCaseInconsistency:  "Filename does not follow the expected naming convention",
	types.KindDuplicateFile:      "File duplicates another file ignoring case and extension",
	types.KindImportCaseMismatch: "Import specifier case differs from the file on disk",
}

// RenderSARIF writes the report as SARIF 2.1.0.
func (r *Report) RenderSARIF(w io.Writer) error {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}

	run := sarif.NewRunWithInformationURI("driftlint", toolURI)
	for _, issue := range r.Issues {
		rule := run.AddRule(string(issue.Kind)).
			WithDescription(ruleDescriptions[issue.Kind]).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: sarifLevel(issue.Severity),
			})

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(issue.File)),
		)

		message := issue.Message
		if issue.Suggestion != "" {
			message += " (" + issue.Suggestion + ")"
		}

		run.AddResult(sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(message)).
			WithLevel(sarifLevel(issue.Severity)).
			WithLocations([]*sarif.Location{location}))
	}
	doc.AddRun(run)

	return doc.PrettyWrite(w)
}

func sarifLevel(sev types.Severity) string {
	switch sev {
	case types.SeverityError:
		return "error"
	case types.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}
