// Package audit wires the scanner, the rule checks, and the reporter into
// the end-to-end pipeline behind the audit and watch commands.
//
// One Run is one pass: scan once, then apply the four checks over the
// completed inventory in fixed order, then hand the accumulated issues to
// the reporter. Nothing persists between runs.
package audit

import (
	"context"

	"github.com/driftlint/driftlint/internal/config"
	"github.com/driftlint/driftlint/internal/logging"
	"github.com/driftlint/driftlint/internal/report"
	"github.com/driftlint/driftlint/internal/rules"
	"github.com/driftlint/driftlint/internal/scanner"
	"github.com/driftlint/driftlint/internal/types"
)

// Pipeline holds the immutable pieces of one configured audit: the scanner
// and the compiled rule set. It is safe to Run repeatedly (watch mode does).
type Pipeline struct {
	scanner        *scanner.TreeScanner
	ruleSet        *rules.RuleSet
	duplicateScope rules.DuplicateScope
	logger         logging.Logger
}

// NewPipeline builds a pipeline from the effective configuration.
func NewPipeline(cfg *config.Config, logger logging.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	ruleSet := rules.NewRuleSet()
	for _, entry := range cfg.Rules.ExtraForbidden {
		if err := ruleSet.AddForbidden(entry.Pattern, entry.Rationale); err != nil {
			return nil, err
		}
	}
	for _, pattern := range cfg.Rules.ExtraAllowed {
		if err := ruleSet.AddAllowed(pattern); err != nil {
			return nil, err
		}
	}

	treeScanner := scanner.NewTreeScanner(
		scanner.WithExtraSkipDirs(cfg.Scan.SkipDirs),
		scanner.WithSourceExtensions(cfg.Scan.SourceExtensions),
		scanner.WithLogger(logger.WithComponent("scanner")),
	)

	return &Pipeline{
		scanner:        treeScanner,
		ruleSet:        ruleSet,
		duplicateScope: rules.DuplicateScope(cfg.Rules.DuplicateScope),
		logger:         logger.WithComponent("audit"),
	}, nil
}

// Scanner exposes the configured scanner (the watch command shares its skip
// list so it does not watch directories the audit would never scan).
func (p *Pipeline) Scanner() *scanner.TreeScanner {
	return p.scanner
}

// RuleSet exposes the compiled rule tables.
func (p *Pipeline) RuleSet() *rules.RuleSet {
	return p.ruleSet
}

// Run executes one full audit of root. The scan phase is the only fallible
// part; rule violations are data in the report, never errors.
func (p *Pipeline) Run(ctx context.Context, root string) (*report.Report, error) {
	p.logger.Info(ctx, "scanning tree", "root", root)
	inventory, edges, err := p.scanner.Scan(ctx, root)
	if err != nil {
		return nil, err
	}

	var issues []types.Issue

	p.logger.Info(ctx, "running forbidden filename check")
	issues = append(issues, rules.CheckForbiddenNames(inventory, p.ruleSet)...)

	p.logger.Info(ctx, "running case consistency check")
	issues = append(issues, rules.CheckCaseConsistency(inventory)...)

	p.logger.Info(ctx, "running duplicate file check")
	issues = append(issues, rules.CheckDuplicates(inventory, p.duplicateScope)...)

	p.logger.Info(ctx, "running import case check")
	issues = append(issues, rules.CheckImportCase(edges, p.scanner.SourceExtensions())...)

	p.logger.Info(ctx, "audit complete",
		"files", inventory.Len(),
		"issues", len(issues),
	)
	return report.New(root, inventory.Len(), issues), nil
}
