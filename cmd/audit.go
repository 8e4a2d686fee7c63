package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftlint/driftlint/internal/audit"
	"github.com/driftlint/driftlint/internal/config"
	"github.com/driftlint/driftlint/internal/logging"
	"github.com/driftlint/driftlint/internal/report"
)

var (
	auditFormat     string
	auditOutputFile string
	auditQuiet      bool
	auditVerbose    bool
)

// auditCmd represents the audit command.
var auditCmd = &cobra.Command{
	Use:   "audit [dir]",
	Short: "Audit a source tree for file naming chaos",
	Long: `Audit a directory tree for duplicate/renamed file variants, naming
convention drift, case-insensitive duplicate stems, and import statements
whose case does not match the file on disk.

The exit code is 0 when no error-severity issue exists (warnings alone never
fail the run) and non-zero otherwise.

Examples:
  driftlint audit                           # audit the current directory
  driftlint audit ./src                     # audit a specific tree
  driftlint audit --format json             # machine-readable output
  driftlint audit --format sarif -o out.sarif`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuditCommand,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "", "output format (text, json, sarif)")
	auditCmd.Flags().StringVarP(&auditOutputFile, "output-file", "o", "", "write the report to a file instead of stdout")
	auditCmd.Flags().BoolVarP(&auditQuiet, "quiet", "q", false, "suppress progress logging")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "enable debug logging")
}

func runAuditCommand(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if auditFormat != "" {
		cfg.Output.Format = auditFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if auditOutputFile != "" {
		cfg.Output.File = auditOutputFile
	}

	logger := buildLogger(cfg, auditQuiet, auditVerbose)

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	pipeline, err := audit.NewPipeline(cfg, logger)
	if err != nil {
		return err
	}

	rep, err := pipeline.Run(ctx, root)
	if err != nil {
		return err
	}

	out, closeOut, err := reportWriter(cfg.Output.File)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := renderReport(rep, cfg.Output.Format, out); err != nil {
		return err
	}

	if rep.Failed() {
		// Non-zero exit without usage noise; the report is the message.
		return &exitError{code: rep.ExitCode()}
	}
	return nil
}

// exitError carries a non-zero exit code out of a command whose report was
// already printed.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("audit failed with error-severity issues (exit %d)", e.code)
}

// ExitCode returns the process exit status for this error.
func (e *exitError) ExitCode() int {
	return e.code
}

func renderReport(rep *report.Report, format string, out io.Writer) error {
	switch format {
	case "json":
		return rep.RenderJSON(out)
	case "sarif":
		return rep.RenderSARIF(out)
	default:
		return rep.RenderText(out)
	}
}

func reportWriter(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func buildLogger(cfg *config.Config, quiet, verbose bool) logging.Logger {
	if quiet {
		return logging.NopLogger{}
	}
	level := logging.ParseLevel(cfg.Log.Level)
	if verbose {
		level = logging.LevelDebug
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
	})
}
