// Package watcher re-runs the full audit when the watched tree changes.
//
// There are no incremental semantics: any event inside the tree, after a
// short debounce to group editor write bursts, triggers one complete re-run.
// Directories on the scanner's skip list are never registered, so churn in
// node_modules or .git does not wake the audit.
package watcher

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	dlerrors "github.com/driftlint/driftlint/internal/errors"
	"github.com/driftlint/driftlint/internal/logging"
)

// DefaultDebounce groups rapid successive events into one re-run.
const DefaultDebounce = 300 * time.Millisecond

// Handler is invoked once per debounced change burst.
type Handler func(ctx context.Context)

// FileWatcher watches a directory tree and triggers audit re-runs.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	skipDir  func(name string) bool
	logger   logging.Logger

	mu     sync.Mutex
	closed bool
}

// New creates a watcher. skipDir filters directory base names out of
// registration (pass the scanner's skip predicate).
func New(debounce time.Duration, skipDir func(string) bool, logger logging.Logger) (*FileWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if skipDir == nil {
		skipDir = func(string) bool { return false }
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, dlerrors.NewIOError("watch_init", "failed to initialize file watcher", err)
	}

	return &FileWatcher{
		watcher:  w,
		debounce: debounce,
		skipDir:  skipDir,
		logger:   logger.WithComponent("watcher"),
	}, nil
}

// AddRecursive registers root and every non-skipped directory beneath it.
func (fw *FileWatcher) AddRecursive(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && fw.skipDir(d.Name()) {
			return fs.SkipDir
		}
		return fw.watcher.Add(path)
	})
	if err != nil {
		return dlerrors.NewIOError("watch_register", "failed to register watch tree", err).WithPath(root)
	}
	return nil
}

// Watch blocks, invoking handler after each debounced burst of events, until
// ctx is cancelled or the underlying watcher fails.
func (fw *FileWatcher) Watch(ctx context.Context, handler Handler) error {
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(fw.debounce, func() {
			select {
			case fire <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			fw.logger.Debug(ctx, "fs event", "op", event.Op.String(), "path", event.Name)

			// New directories need registration so later changes
			// inside them are seen.
			if event.Op.Has(fsnotify.Create) {
				if !fw.skipDir(filepath.Base(event.Name)) {
					_ = fw.watcher.Add(event.Name)
				}
			}
			schedule()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			return dlerrors.NewIOError("watch_events", "file watcher failed", err)

		case <-fire:
			handler(ctx)
		}
	}
}

// Close shuts the watcher down.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.closed {
		return nil
	}
	fw.closed = true
	return fw.watcher.Close()
}
