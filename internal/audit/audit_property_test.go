//go:build property
// +build property

package audit

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/driftlint/driftlint/internal/config"
	"github.com/driftlint/driftlint/internal/logging"
	"github.com/driftlint/driftlint/internal/types"
)

// TestAuditProperties tests invariant properties of the audit pipeline.
func TestAuditProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	newPipeline := func() *Pipeline {
		cfg := &config.Config{}
		cfg.Rules.DuplicateScope = config.DuplicateScopeTree
		cfg.Output.Format = "text"
		p, err := NewPipeline(cfg, logging.NopLogger{})
		if err != nil {
			t.Fatal(err)
		}
		return p
	}

	stemGen := gen.RegexMatch(`[a-zA-Z][a-zA-Z0-9]{0,12}`)

	// Property 1: auditing an unchanged tree twice yields identical reports.
	properties.Property("audit idempotency", prop.ForAll(
		func(stemA, stemB string) bool {
			tempDir := t.TempDir()
			for _, stem := range []string{stemA, stemB} {
				path := filepath.Join(tempDir, "src", stem+".js")
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					return true // skip on setup error
				}
				if err := os.WriteFile(path, []byte("export default {}\n"), 0o644); err != nil {
					return true
				}
			}

			pipeline := newPipeline()
			first, err1 := pipeline.Run(context.Background(), tempDir)
			second, err2 := pipeline.Run(context.Background(), tempDir)
			if err1 != nil || err2 != nil {
				return false
			}

			return first.FilesScanned == second.FilesScanned &&
				reflect.DeepEqual(first.Issues, second.Issues) &&
				first.ExitCode() == second.ExitCode()
		},
		stemGen, stemGen,
	))

	// Property 2: the exit code is 0 iff zero error-severity issues exist.
	properties.Property("exit code law", prop.ForAll(
		func(stem string) bool {
			tempDir := t.TempDir()
			path := filepath.Join(tempDir, "src", stem+".js")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return true
			}
			if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
				return true
			}

			rep, err := newPipeline().Run(context.Background(), tempDir)
			if err != nil {
				return false
			}

			errorCount := 0
			for _, issue := range rep.Issues {
				if issue.Severity == types.SeverityError {
					errorCount++
				}
			}
			return (rep.ExitCode() == 0) == (errorCount == 0)
		},
		stemGen,
	))

	// Property 3: test/spec files never raise forbidden-filename issues,
	// even when the stem matches forbidden patterns.
	properties.Property("allowed overrides win", prop.ForAll(
		func(stem string) bool {
			tempDir := t.TempDir()
			path := filepath.Join(tempDir, "src", stem+"Updated.test.js")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return true
			}
			if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
				return true
			}

			rep, err := newPipeline().Run(context.Background(), tempDir)
			if err != nil {
				return false
			}

			for _, issue := range rep.Issues {
				if issue.Kind == types.KindForbiddenFilename {
					return false
				}
			}
			return true
		},
		stemGen,
	))

	properties.TestingRun(t)
}
