package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/driftlint/driftlint/internal/audit"
	"github.com/driftlint/driftlint/internal/config"
	"github.com/driftlint/driftlint/internal/logging"
)

var rulesFormat string

// rulesCmd represents the rules command.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active forbidden and allowed pattern tables",
	Long: `Print the compiled rule tables, in order: the built-in patterns first,
then any extra entries from configuration. Useful for checking what a given
.driftlint.yml actually adds.`,
	RunE: runRulesCommand,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().StringVarP(&rulesFormat, "format", "f", "text", "output format (text, yaml)")
}

// ruleTables is the externalized view of the compiled rule set.
type ruleTables struct {
	Forbidden []config.PatternEntry `yaml:"forbidden"`
	Allowed   []string              `yaml:"allowed"`
}

func runRulesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pipeline, err := audit.NewPipeline(cfg, logging.NopLogger{})
	if err != nil {
		return err
	}
	rs := pipeline.RuleSet()

	tables := ruleTables{}
	for _, np := range rs.Forbidden() {
		tables.Forbidden = append(tables.Forbidden, config.PatternEntry{
			Pattern:   np.Pattern.String(),
			Rationale: np.Rationale,
		})
	}
	for _, re := range rs.Allowed() {
		tables.Allowed = append(tables.Allowed, re.String())
	}

	if rulesFormat == "yaml" {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(tables)
	}

	fmt.Printf("forbidden patterns (%d):\n", len(tables.Forbidden))
	for _, entry := range tables.Forbidden {
		fmt.Printf("  %-40s %s\n", entry.Pattern, entry.Rationale)
	}
	fmt.Printf("\nallowed overrides (%d):\n", len(tables.Allowed))
	for _, pattern := range tables.Allowed {
		fmt.Printf("  %s\n", pattern)
	}
	return nil
}
