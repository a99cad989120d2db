package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/taigrr/rasterlab/pkg/logging"
)

// WatchDelay is how long Watch waits after the last change before re-running,
// so an editor's burst of writes triggers one render.
var WatchDelay = 100 * time.Millisecond

// Watch calls fn once, then again whenever one of paths is written or
// recreated, until ctx is cancelled. The parent directories are watched so
// files replaced by rename are still seen. Errors from fn are logged and do
// not stop the loop.
func Watch(ctx context.Context, paths []string, logger *log.Logger, fn func(context.Context) error) error {
	logger = logging.OrDiscard(logger)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	run := func() {
		if err := fn(ctx); err != nil {
			logger.Error("render failed", "err", err)
		}
	}
	run()
	logger.Info("watching for changes", "files", len(targets))

	var pending <-chan time.Time
	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(e.Name)] {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debug("file changed", "path", e.Name, "op", e.Op)
				pending = time.After(WatchDelay)
			}
		case <-pending:
			pending = nil
			run()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}
