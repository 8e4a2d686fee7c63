package rules

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/driftlint/driftlint/internal/types"
)

// Convention is one of the five recognized naming schemes.
type Convention string

const (
	ConventionPascal     Convention = "PascalCase"
	ConventionCamel      Convention = "camelCase"
	ConventionKebab      Convention = "kebab-case"
	ConventionSnake      Convention = "snake_case"
	ConventionUpperSnake Convention = "UPPER_SNAKE"
)

// conventionPatterns are exact-match patterns over a filename stem.
var conventionPatterns = map[Convention]*regexp.Regexp{
	ConventionPascal:     regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`),
	ConventionCamel:      regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`),
	ConventionKebab:      regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`),
	ConventionSnake:      regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`),
	ConventionUpperSnake: regexp.MustCompile(`^[A-Z0-9]+(_[A-Z0-9]+)*$`),
}

// Matches reports whether the stem satisfies the convention.
func (c Convention) Matches(stem string) bool {
	re, ok := conventionPatterns[c]
	return ok && re.MatchString(stem)
}

// ClassifyStem returns every convention the stem satisfies, in a stable
// order. A stem like "button" matches camelCase, kebab-case and snake_case
// simultaneously; classification is informational, enforcement goes through
// ExpectedConvention.
func ClassifyStem(stem string) []Convention {
	all := []Convention{
		ConventionPascal,
		ConventionCamel,
		ConventionKebab,
		ConventionSnake,
		ConventionUpperSnake,
	}
	var matched []Convention
	for _, c := range all {
		if c.Matches(stem) {
			matched = append(matched, c)
		}
	}
	return matched
}

// docRootStems are documentation files exempt from case checking.
var docRootStems = map[string]struct{}{
	"README":       {},
	"CHANGELOG":    {},
	"LICENSE":      {},
	"CONTRIBUTING": {},
}

// toolingExtensions denote script/config/doc artifacts that carry their own
// naming conventions and are exempt from case checking.
var toolingExtensions = map[string]struct{}{
	".sh":   {},
	".bash": {},
	".yml":  {},
	".yaml": {},
	".json": {},
	".toml": {},
	".lock": {},
	".md":   {},
	".txt":  {},
}

// ExpectedConvention infers which convention a file should follow, evaluated
// in fixed priority order with the first matching rule winning. The second
// return value is false when the file carries no expectation at all.
func ExpectedConvention(rec types.FileRecord) (Convention, bool) {
	upperStem := strings.ToUpper(rec.Stem)
	if _, ok := docRootStems[upperStem]; ok {
		return "", false
	}
	if strings.Contains(upperStem, "GUIDE") || strings.Contains(upperStem, "NOTES") {
		return "", false
	}

	if strings.Contains(strings.ToLower(rec.Stem), "audit") {
		return "", false
	}
	if _, ok := toolingExtensions[rec.Extension]; ok {
		return "", false
	}

	dir := strings.ToLower(rec.Directory)
	if strings.Contains(dir, "components") {
		return ConventionPascal, true
	}
	if strings.Contains(dir, "utils") || strings.Contains(dir, "helpers") {
		return ConventionCamel, true
	}

	if strings.Contains(strings.ToLower(rec.Stem), "config") {
		return ConventionCamel, true
	}

	return ConventionCamel, true
}

var (
	tokenSeparators = regexp.MustCompile(`[-_.\s]+`)
	caseTokens      = regexp.MustCompile(`[A-Z]+[a-z0-9]*|[a-z0-9]+`)
	titleCaser      = cases.Title(language.English)
)

// splitStem breaks a stem into word tokens across separator and camel-hump
// boundaries.
func splitStem(stem string) []string {
	var tokens []string
	for _, chunk := range tokenSeparators.Split(stem, -1) {
		tokens = append(tokens, caseTokens.FindAllString(chunk, -1)...)
	}
	return tokens
}

// Respell rewrites a stem in the target convention, for suggestion text.
func Respell(stem string, target Convention) string {
	tokens := splitStem(stem)
	if len(tokens) == 0 {
		return stem
	}

	switch target {
	case ConventionPascal:
		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(titleCaser.String(strings.ToLower(tok)))
		}
		return b.String()
	case ConventionCamel:
		var b strings.Builder
		b.WriteString(strings.ToLower(tokens[0]))
		for _, tok := range tokens[1:] {
			b.WriteString(titleCaser.String(strings.ToLower(tok)))
		}
		return b.String()
	case ConventionKebab:
		return strings.ToLower(strings.Join(tokens, "-"))
	case ConventionSnake:
		return strings.ToLower(strings.Join(tokens, "_"))
	case ConventionUpperSnake:
		return strings.ToUpper(strings.Join(tokens, "_"))
	default:
		return stem
	}
}

// CheckCaseConsistency warns about files whose stem does not match the
// convention inferred for their location. The default expectation is
// camelCase, which means a PascalCase file outside a components directory
// always warns; that strictness is intentional for now.
func CheckCaseConsistency(inv *types.Inventory) []types.Issue {
	var issues []types.Issue

	for _, rec := range inv.Records() {
		expected, ok := ExpectedConvention(rec)
		if !ok {
			continue
		}
		if expected.Matches(rec.Stem) {
			continue
		}
		issues = append(issues, types.NewIssue(
			types.KindCaseInconsistency,
			rec.Path,
			fmt.Sprintf("filename %q does not follow %s", rec.Filename, expected),
			fmt.Sprintf("rename to %q", Respell(rec.Stem, expected)+rec.Extension),
		))
	}

	return issues
}
