package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// watchFile calls onChange after source has been written, created or renamed.
// Directory is watched instead of the file, because editors often replace
// files instead of writing into them.
func watchFile(ctx context.Context, source string, debounce time.Duration, onChange func()) error {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("watchFile failed: %w", err)
	}
	absSource = filepath.Clean(absSource)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watchFile failed: %w", err)
	}
	defer watcher.Close()
	if err = watcher.Add(filepath.Dir(absSource)); err != nil {
		return fmt.Errorf("watchFile failed: %w", err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false
	resetDebounce := func() {
		if pending && !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(debounce)
		pending = true
	}
	slog.Info("watching for changes", "source", source)
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absSource {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("change detected", "event", event.Op.String())
			resetDebounce()
		case <-timer.C:
			pending = false
			slog.Info("source changed, regenerating", "source", source)
			onChange()
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher failed: %w", watchErr)
		}
	}
}
