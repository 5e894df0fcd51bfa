// Package watch re-runs a callback when a stencil directory changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces bursts of file system events into one re-run.
const debounceInterval = 300 * time.Millisecond

// Watcher watches a stencil root recursively and triggers re-validation.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// New creates a watcher over the given root directory.
func New(root string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{root: root, watcher: fsw, logger: logger}
	if err := w.watchTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// watchTree registers the directory and all subdirectories.
func (w *Watcher) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Debug("cannot watch directory", "path", path, "error", err)
			}
		}
		return nil
	})
}

// Run blocks, invoking fn after each debounced batch of changes, until the
// context is cancelled or an interrupt arrives. Newly created directories
// are added to the watch set as they appear.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			w.logger.Debug("watch interrupted")
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.watchTree(event.Name)
				}
			}
			w.logger.Debug("file system event", "op", event.Op.String(), "name", event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceInterval, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Debug("watch error", "error", err)
		case <-fire:
			fn()
		}
	}
}

// Close releases the underlying file system watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
