package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/driftlint/driftlint/internal/audit"
	"github.com/driftlint/driftlint/internal/config"
	"github.com/driftlint/driftlint/internal/watcher"
)

var (
	watchDebounce time.Duration
	watchFormat   string
	watchVerbose  bool
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-run the audit whenever the tree changes",
	Long: `Watch a directory tree and re-run the full audit after each change.

There are no incremental semantics: every debounced burst of filesystem
events triggers one complete audit, and each report is printed in full.
Rule violations never stop the watch; it runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatchCommand,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "delay before re-running after a change")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "", "output format (text, json, sarif)")
	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "enable debug logging")
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if watchFormat != "" {
		cfg.Output.Format = watchFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := buildLogger(cfg, false, watchVerbose)

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	pipeline, err := audit.NewPipeline(cfg, logger)
	if err != nil {
		return err
	}

	runOnce := func(ctx context.Context) {
		rep, err := pipeline.Run(ctx, root)
		if err != nil {
			logger.Error(ctx, err, "audit run failed")
			return
		}
		if err := renderReport(rep, cfg.Output.Format, os.Stdout); err != nil {
			logger.Error(ctx, err, "failed to render report")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fw, err := watcher.New(watchDebounce, pipeline.Scanner().ShouldSkipDir, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.AddRecursive(root); err != nil {
		return err
	}

	// Initial run before waiting for changes.
	runOnce(ctx)

	logger.Info(ctx, "watching for changes", "root", root, "debounce", watchDebounce.String())
	return fw.Watch(ctx, runOnce)
}
