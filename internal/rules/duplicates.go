package rules

import (
	"fmt"
	"strings"

	"github.com/driftlint/driftlint/internal/types"
)

// DuplicateScope controls the collision key for duplicate detection.
type DuplicateScope string

const (
	// ScopeTree collides equal stems anywhere in the tree. This is the
	// default: the "enhanced copy" pattern usually lands the variant in a
	// different directory than the original.
	ScopeTree DuplicateScope = "tree"
	// ScopeDirectory collides equal stems only within one directory,
	// tolerating legitimate same-name files across independent packages
	// (index.js in two modules).
	ScopeDirectory DuplicateScope = "directory"
)

// CheckDuplicates flags files sharing a lowercase stem. Records are visited
// in scan order; the first file seen for a stem is canonical and silent,
// every later one is reported as a duplicate of it. Extension and, under
// ScopeTree, directory are deliberately ignored.
func CheckDuplicates(inv *types.Inventory, scope DuplicateScope) []types.Issue {
	var issues []types.Issue
	firstSeen := make(map[string]types.FileRecord)

	for _, rec := range inv.Records() {
		key := strings.ToLower(rec.Stem)
		if scope == ScopeDirectory {
			key = strings.ToLower(rec.Directory) + "/" + key
		}

		canonical, exists := firstSeen[key]
		if !exists {
			firstSeen[key] = rec
			continue
		}

		issues = append(issues, types.NewIssue(
			types.KindDuplicateFile,
			rec.Path,
			fmt.Sprintf("%q duplicates %q (same name ignoring case and extension)", rec.Path, canonical.Path),
			fmt.Sprintf("merge the change into %q and delete this file", canonical.Path),
		))
	}

	return issues
}
