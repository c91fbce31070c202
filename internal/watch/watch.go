// Package watch reloads configuration into a running lint.Engine when the
// config file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/RamilHin/my-linter/pkg/lint"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Loader builds a fresh Store from the config file.
type Loader func() (*lint.Store, error)

// ReloadFunc is called after every reload attempt. Exactly one of store and
// err is non-nil.
type ReloadFunc func(store *lint.Store, err error)

// Watcher watches one config file.
type Watcher struct {
	path     string
	engine   *lint.Engine
	load     Loader
	logger   *slog.Logger
	debounce time.Duration
	onReload ReloadFunc

	mu sync.Mutex // serializes reloads
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the watcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithOnReload registers a callback run after each reload attempt.
func WithOnReload(fn ReloadFunc) Option {
	return func(w *Watcher) { w.onReload = fn }
}

// New creates a watcher that reloads path into engine using load.
func New(path string, engine *lint.Engine, load Loader, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		engine:   engine,
		load:     load,
		logger:   slog.New(slog.DiscardHandler),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done. The directory holding the config is
// watched rather than the file, so editors that save by rename are seen.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.logger.Info("watching config", "path", w.path)

	// Debounce timer
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				w.logger.Debug("config changed, reloading", "file", event.Name, "op", event.Op.String())
				w.Reload()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// Reload loads the config and swaps it into the engine. On failure the
// engine keeps serving the previous snapshot.
func (w *Watcher) Reload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	store, err := w.load()
	if err != nil {
		w.logger.Error("config reload failed, keeping previous configuration",
			"path", w.path, "version", w.engine.Version(), "error", err)
	} else {
		w.engine.Reload(store)
	}
	if w.onReload != nil {
		w.onReload(store, err)
	}
}
