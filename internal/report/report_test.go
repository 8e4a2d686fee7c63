package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlint/driftlint/internal/types"
)

func sampleIssues() []types.Issue {
	return []types.Issue{
		types.NewIssue(types.KindCaseInconsistency, "src/Widget.js",
			`filename "Widget.js" does not follow camelCase`, `rename to "widget.js"`),
		types.NewIssue(types.KindForbiddenFilename, "src/appV2.js",
			`filename "appV2.js" matches forbidden pattern: version suffix (v2, v3, ...)`,
			"edit the original file in place instead of creating a renamed variant"),
		types.NewIssue(types.KindDuplicateFile, "src/App.jsx",
			`"src/App.jsx" duplicates "src/app.js" (same name ignoring case and extension)`,
			`merge the change into "src/app.js" and delete this file`),
	}
}

func TestReportCountsAndOutcome(t *testing.T) {
	r := New("src", 10, sampleIssues())

	assert.Equal(t, 2, r.CountBySeverity(types.SeverityError))
	assert.Equal(t, 1, r.CountBySeverity(types.SeverityWarning))
	assert.Equal(t, 0, r.CountBySeverity(types.SeverityInfo))
	assert.True(t, r.Failed())
	assert.Equal(t, 1, r.ExitCode())
}

func TestWarningsAloneNeverFail(t *testing.T) {
	r := New("src", 3, []types.Issue{
		types.NewIssue(types.KindCaseInconsistency, "src/A.js", "m", "s"),
		types.NewIssue(types.KindCaseInconsistency, "src/B.js", "m", "s"),
	})

	assert.False(t, r.Failed())
	assert.Equal(t, 0, r.ExitCode())
}

func TestEmptyReportPasses(t *testing.T) {
	r := New("src", 0, nil)
	assert.False(t, r.Failed())
	assert.Equal(t, 0, r.ExitCode())
}

func TestRenderTextGroupsBySeverity(t *testing.T) {
	r := New("src", 10, sampleIssues())

	var buf bytes.Buffer
	require.NoError(t, r.RenderText(&buf))
	out := buf.String()

	// Errors render before warnings regardless of discovery order.
	errIdx := strings.Index(out, "ERROR (2)")
	warnIdx := strings.Index(out, "WARNING (1)")
	require.GreaterOrEqual(t, errIdx, 0)
	require.GreaterOrEqual(t, warnIdx, 0)
	assert.Less(t, errIdx, warnIdx)

	assert.Contains(t, out, "files scanned: 10")
	assert.Contains(t, out, "total issues:  3")
	assert.Contains(t, out, "result: FAIL")
	assert.Contains(t, out, "suggestion:")
}

func TestRenderTextPass(t *testing.T) {
	r := New("src", 4, nil)

	var buf bytes.Buffer
	require.NoError(t, r.RenderText(&buf))

	assert.Contains(t, buf.String(), "result: PASS")
	assert.NotContains(t, buf.String(), "ERROR (")
}

func TestRenderJSON(t *testing.T) {
	r := New("src", 10, sampleIssues())

	var buf bytes.Buffer
	require.NoError(t, r.RenderJSON(&buf))

	var payload struct {
		Root         string        `json:"root"`
		FilesScanned int           `json:"files_scanned"`
		Issues       []types.Issue `json:"issues"`
		Summary      map[string]int `json:"summary"`
		Failed       bool          `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))

	assert.Equal(t, "src", payload.Root)
	assert.Equal(t, 10, payload.FilesScanned)
	assert.Len(t, payload.Issues, 3)
	assert.Equal(t, 2, payload.Summary["errors"])
	assert.Equal(t, 1, payload.Summary["warnings"])
	assert.True(t, payload.Failed)

	// Issues keep discovery order in machine output.
	assert.Equal(t, types.KindCaseInconsistency, payload.Issues[0].Kind)
}

func TestRenderSARIF(t *testing.T) {
	r := New("src", 10, sampleIssues())

	var buf bytes.Buffer
	require.NoError(t, r.RenderSARIF(&buf))

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "driftlint", doc.Runs[0].Tool.Driver.Name)
	require.Len(t, doc.Runs[0].Results, 3)

	assert.Equal(t, "case_inconsistency", doc.Runs[0].Results[0].RuleID)
	assert.Equal(t, "warning", doc.Runs[0].Results[0].Level)
	assert.Equal(t, "forbidden_filename", doc.Runs[0].Results[1].RuleID)
	assert.Equal(t, "error", doc.Runs[0].Results[1].Level)
}
