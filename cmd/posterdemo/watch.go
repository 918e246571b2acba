package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the watcher waits after the last change before it
// renders, so an editor's save burst triggers one render.
const settle = 150 * time.Millisecond

// watch renders once and then again whenever a file the poster depends on
// is written or created, until ctx is done. Render failures are logged and
// do not stop the watcher.
func watch(ctx context.Context, opts options, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer func() { _ = w.Close() }()

	// Directories are watched rather than files because editors often
	// replace a file on save.
	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	follow := func() {
		settings, err := renderOnce(opts, logger)
		if err != nil {
			logger.Error("render failed", "err", err)
		}
		paths := []string{opts.config}
		if settings != nil {
			paths = settings.WatchPaths()
		}
		for _, p := range paths {
			abs, err := filepath.Abs(p)
			if err != nil {
				continue
			}
			watched[abs] = true
			dir := filepath.Dir(abs)
			if dirs[dir] {
				continue
			}
			if err := w.Add(dir); err != nil {
				logger.Warn("cannot watch directory", "dir", dir, "err", err)
				continue
			}
			dirs[dir] = true
			logger.Debug("watching", "dir", dir)
		}
	}
	follow()

	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if abs, err := filepath.Abs(ev.Name); err != nil || !watched[abs] {
				continue
			}
			logger.Debug("change", "file", ev.Name, "op", ev.Op)
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-timer.C:
			follow()
		}
	}
}
