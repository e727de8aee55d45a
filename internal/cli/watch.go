package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchFile runs fn once, then again every time the file changes, until the
// context is canceled. fsnotify is used when available with a polling
// fallback for filesystems that don't support it.
func watchFile(ctx context.Context, path string, pollInterval time.Duration, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}

	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return pollLoop(ctx, path, pollInterval, fn)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// a file watch would be lost with them.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return pollLoop(ctx, path, pollInterval, fn)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := fn(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}

// pollLoop re-runs fn when the file's modification time changes.
func pollLoop(ctx context.Context, path string, interval time.Duration, fn func() error) error {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			if err := fn(); err != nil {
				return err
			}
		}
	}
}
