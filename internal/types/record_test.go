package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFileRecord(t *testing.T) {
	tests := []struct {
		name string
		path string
		want FileRecord
	}{
		{
			name: "simple source file",
			path: "src/utils/myHelper.js",
			want: FileRecord{
				Path:      "src/utils/myHelper.js",
				Filename:  "myHelper.js",
				Stem:      "myHelper",
				Extension: ".js",
				Directory: "src/utils",
			},
		},
		{
			name: "extension is lowercased",
			path: "src/App.JSX",
			want: FileRecord{
				Path:      "src/App.JSX",
				Filename:  "App.JSX",
				Stem:      "App",
				Extension: ".jsx",
				Directory: "src",
			},
		},
		{
			name: "no extension",
			path: "docs/LICENSE",
			want: FileRecord{
				Path:      "docs/LICENSE",
				Filename:  "LICENSE",
				Stem:      "LICENSE",
				Extension: "",
				Directory: "docs",
			},
		},
		{
			name: "dotfile has no extension",
			path: ".gitignore",
			want: FileRecord{
				Path:      ".gitignore",
				Filename:  ".gitignore",
				Stem:      ".gitignore",
				Extension: "",
				Directory: ".",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFileRecord(tt.path))
		})
	}
}

func TestInventoryOrderAndDedupe(t *testing.T) {
	inv := NewInventory()
	inv.Add(NewFileRecord("a/first.js"))
	inv.Add(NewFileRecord("b/second.js"))
	inv.Add(NewFileRecord("a/first.js")) // duplicate path is ignored

	assert.Equal(t, 2, inv.Len())

	records := inv.Records()
	assert.Equal(t, "a/first.js", records[0].Path)
	assert.Equal(t, "b/second.js", records[1].Path)

	rec, ok := inv.Get("b/second.js")
	assert.True(t, ok)
	assert.Equal(t, "second", rec.Stem)

	_, ok = inv.Get("missing.js")
	assert.False(t, ok)
}

func TestIssueSeverityByKind(t *testing.T) {
	assert.Equal(t, SeverityError, KindForbiddenFilename.Severity())
	assert.Equal(t, SeverityError, KindDuplicateFile.Severity())
	assert.Equal(t, SeverityError, KindImportCaseMismatch.Severity())
	assert.Equal(t, SeverityWarning, KindCaseInconsistency.Severity())

	issue := NewIssue(KindDuplicateFile, "a/b.js", "msg", "fix")
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, "a/b.js", issue.File)
}

func TestSeverityRank(t *testing.T) {
	assert.Less(t, SeverityError.Rank(), SeverityWarning.Rank())
	assert.Less(t, SeverityWarning.Rank(), SeverityInfo.Rank())
}
