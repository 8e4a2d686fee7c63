package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/driftlint/driftlint/internal/types"
)

// CheckImportCase verifies that relative import specifiers match the exact
// case of the files they resolve to. Only case drift is reported: an import
// with no case-insensitive match on disk is a plain broken import and is
// silently ignored, since broken-import detection is not this tool's job.
//
// Resolution is a lexical heuristic, not a module resolver: the specifier is
// joined onto the importing file's directory and probed verbatim, with each
// recognized source extension appended, and as a directory index file.
func CheckImportCase(edges []types.ImportEdge, sourceExtensions []string) []types.Issue {
	var issues []types.Issue

	for _, edge := range edges {
		resolved := filepath.Join(filepath.Dir(edge.FromPath), edge.Specifier)

		if importTargetExists(resolved, sourceExtensions) {
			continue
		}

		actual, ok := findCaseInsensitiveMatch(resolved, sourceExtensions)
		if !ok {
			continue
		}

		issues = append(issues, types.NewIssue(
			types.KindImportCaseMismatch,
			edge.FromPath,
			fmt.Sprintf("import %q does not match the case of the file on disk", edge.Specifier),
			fmt.Sprintf("use the on-disk spelling %q", actual),
		))
	}

	return issues
}

// importTargetExists probes the resolved path the way a JS-style resolver
// would: verbatim, then with each source extension, then as an index file.
func importTargetExists(resolved string, exts []string) bool {
	for _, candidate := range probeCandidates(filepath.Base(resolved), exts) {
		if pathExists(filepath.Join(filepath.Dir(resolved), candidate)) {
			return true
		}
	}
	for _, ext := range exts {
		if pathExists(filepath.Join(resolved, "index"+ext)) {
			return true
		}
	}
	return false
}

// findCaseInsensitiveMatch lists the resolved target's parent directory and
// looks for an entry equal to a probe candidate ignoring case but not
// exactly. Returns the on-disk name when found.
func findCaseInsensitiveMatch(resolved string, exts []string) (string, bool) {
	parent := filepath.Dir(resolved)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", false
	}

	candidates := probeCandidates(filepath.Base(resolved), exts)
	for _, entry := range entries {
		name := entry.Name()
		for _, candidate := range candidates {
			if strings.EqualFold(name, candidate) && name != candidate {
				return name, true
			}
		}
	}
	return "", false
}

// probeCandidates returns the target filename plus its extension-appended
// variants, skipping the append when the name already carries an extension.
func probeCandidates(base string, exts []string) []string {
	candidates := []string{base}
	if filepath.Ext(base) == "" {
		for _, ext := range exts {
			candidates = append(candidates, base+ext)
		}
	}
	return candidates
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
