// Package scanner provides the single-pass tree traversal that feeds the
// rule engine.
//
// The scanner walks a directory tree once, depth-first, building an
// inventory of FileRecords for every plain file it sees. Directories on the
// skip list (dependency caches, VCS metadata, build output) are pruned
// whole. Recognized source files are additionally read as text and their
// relative import specifiers extracted with a single lexical pattern; files
// that cannot be read still contribute a record, just no import edges.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	dlerrors "github.com/driftlint/driftlint/internal/errors"
	"github.com/driftlint/driftlint/internal/logging"
	"github.com/driftlint/driftlint/internal/types"
)

// defaultSkipDirs are directory names pruned from the walk entirely:
// dependency caches, VCS metadata, editor config, build/coverage output,
// and log/temp directories.
var defaultSkipDirs = []string{
	"node_modules",
	".git",
	".svn",
	".hg",
	".idea",
	".vscode",
	"dist",
	"build",
	"out",
	"coverage",
	".next",
	".nuxt",
	".cache",
	"tmp",
	"temp",
	"logs",
	"vendor",
	"__pycache__",
}

// defaultSourceExtensions mark files that get lexical import extraction.
var defaultSourceExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"}

// importPattern matches one statement shape: `import <bindings> from '<spec>'`
// where bindings are a brace list, a star alias, or a bare identifier, and
// the quote may be single or double. This is a deliberate lexical heuristic,
// not a parser.
var importPattern = regexp.MustCompile(
	`import\s+(?:\{[^}]*\}|\*\s+as\s+[A-Za-z_$][A-Za-z0-9_$]*|[A-Za-z_$][A-Za-z0-9_$]*)\s+from\s+['"]([^'"]+)['"]`,
)

// TreeScanner walks a directory tree and produces the audit inventory.
type TreeScanner struct {
	skipDirs   map[string]struct{}
	sourceExts map[string]struct{}
	logger     logging.Logger
}

// Option customizes a TreeScanner.
type Option func(*TreeScanner)

// WithExtraSkipDirs appends directory names to the built-in skip set.
func WithExtraSkipDirs(names []string) Option {
	return func(s *TreeScanner) {
		for _, name := range names {
			s.skipDirs[name] = struct{}{}
		}
	}
}

// WithSourceExtensions replaces the default source extension set.
func WithSourceExtensions(exts []string) Option {
	return func(s *TreeScanner) {
		if len(exts) == 0 {
			return
		}
		s.sourceExts = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			s.sourceExts[normalizeExt(ext)] = struct{}{}
		}
	}
}

// WithLogger sets the scanner's logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *TreeScanner) {
		s.logger = logger
	}
}

// NewTreeScanner creates a scanner with the built-in skip and source sets.
func NewTreeScanner(opts ...Option) *TreeScanner {
	s := &TreeScanner{
		skipDirs:   make(map[string]struct{}, len(defaultSkipDirs)),
		sourceExts: make(map[string]struct{}, len(defaultSourceExtensions)),
		logger:     logging.NopLogger{},
	}
	for _, name := range defaultSkipDirs {
		s.skipDirs[name] = struct{}{}
	}
	for _, ext := range defaultSourceExtensions {
		s.sourceExts[ext] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SourceExtensions returns the active source extension set in stable order.
func (s *TreeScanner) SourceExtensions() []string {
	exts := make([]string, 0, len(s.sourceExts))
	for _, ext := range defaultSourceExtensions {
		if _, ok := s.sourceExts[ext]; ok {
			exts = append(exts, ext)
		}
	}
	for ext := range s.sourceExts {
		if !contains(exts, ext) {
			exts = append(exts, ext)
		}
	}
	return exts
}

// ShouldSkipDir reports whether a directory name is on the skip list.
func (s *TreeScanner) ShouldSkipDir(name string) bool {
	_, ok := s.skipDirs[name]
	return ok
}

// Scan traverses root and returns the inventory plus all extracted import
// edges. A missing or unreadable root, or any walk error below it, is fatal
// and aborts the whole scan.
func (s *TreeScanner) Scan(ctx context.Context, root string) (*types.Inventory, []types.ImportEdge, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, dlerrors.NewIOError("scan_root", "cannot access audit root", err).WithPath(root)
	}
	if !info.IsDir() {
		return nil, nil, dlerrors.NewIOError("scan_root", "audit root is not a directory", nil).WithPath(root)
	}

	inventory := types.NewInventory()
	var edges []types.ImportEdge

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && s.ShouldSkipDir(d.Name()) {
				s.logger.Debug(ctx, "skipping directory", "path", path)
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rec := types.NewFileRecord(path)
		inventory.Add(rec)

		if _, ok := s.sourceExts[rec.Extension]; ok {
			edges = append(edges, s.extractImports(ctx, rec)...)
		}
		return nil
	})
	if err != nil {
		return nil, nil, dlerrors.NewIOError("scan_walk", "directory traversal failed", err).WithPath(root)
	}

	s.logger.Info(ctx, "scan complete",
		"files", inventory.Len(),
		"imports", len(edges),
	)
	return inventory, edges, nil
}

// extractImports reads a source file and pulls out its relative import
// specifiers. Read failures are swallowed: the file stays in the inventory
// for the naming checks, it just contributes no edges.
func (s *TreeScanner) extractImports(ctx context.Context, rec types.FileRecord) []types.ImportEdge {
	content, err := os.ReadFile(rec.Path)
	if err != nil {
		s.logger.Debug(ctx, "unreadable source file, skipping import extraction",
			"path", rec.Path, "reason", err.Error())
		return nil
	}

	var edges []types.ImportEdge
	for _, match := range importPattern.FindAllStringSubmatch(string(content), -1) {
		specifier := match[1]
		if !strings.HasPrefix(specifier, ".") {
			// Bare package imports are out of scope for resolution.
			continue
		}
		edges = append(edges, types.ImportEdge{FromPath: rec.Path, Specifier: specifier})
	}
	return edges
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
