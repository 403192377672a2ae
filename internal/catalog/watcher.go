package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher refreshes a provider when the catalog store file changes on disk,
// so rule edits made by external tooling show up without restarting the
// service. Events are debounced because SQLite writes arrive in bursts.
type Watcher struct {
	provider *Provider
	path     string
	debounce time.Duration
	logger   *slog.Logger
	stopChan chan struct{}
}

// NewWatcher creates a watcher for the given store file. A non-positive
// debounce falls back to one second.
func NewWatcher(provider *Provider, path string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		provider: provider,
		path:     path,
		debounce: debounce,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start watches until the context is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := watcher.Add(w.path); err != nil {
		return fmt.Errorf("failed to watch catalog store: %w", err)
	}

	w.logger.Info("watching catalog store", "path", w.path)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopChan:
			return nil
		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.provider.Refresh(ctx); err != nil {
				w.logger.Error("catalog refresh after store change failed", "error", err)
			}
		case watchErr := <-watcher.Errors:
			w.logger.Error("catalog store watch error", "error", watchErr)
		}
	}
}

// Stop terminates the watch loop.
func (w *Watcher) Stop() {
	close(w.stopChan)
}
