// Package watch re-runs an action whenever a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is used when New is given a non-positive delay.
const DefaultDebounce = 100 * time.Millisecond

// Watcher monitors a single file via fsnotify and calls its action once on
// start and again after every burst of writes.
type Watcher struct {
	path     string
	debounce time.Duration
	action   func(context.Context)
	log      zerolog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Watcher for path. The action is never called concurrently
// with itself.
func New(path string, debounce time.Duration, log zerolog.Logger, action func(context.Context)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		log:      log,
	}
	var running sync.Mutex
	w.action = func(ctx context.Context) {
		running.Lock()
		defer running.Unlock()
		if ctx.Err() != nil {
			return
		}
		action(ctx)
	}
	return w
}

// Run blocks until ctx is cancelled or the watcher fails.
// The parent directory is watched so that editors replacing the file by
// rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	defer w.stopTimer()

	w.log.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("watching roster file")
	w.action(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Debug().Str("op", event.Op.String()).Msg("roster file changed")
			w.schedule(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.action(ctx)
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}
