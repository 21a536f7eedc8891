// Package watch signals when profile files in a directory change.
package watch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ruminaider/filament-export/internal/profiles"
)

// DefaultDebounce collapses bursts of events (editors often write a file in
// several steps) into one signal.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches one directory, non-recursively.
type Watcher struct {
	fw       *fsnotify.Watcher
	dir      string
	debounce time.Duration
	logger   *slog.Logger
	changes  chan struct{}
	done     chan struct{}

	mu        sync.Mutex
	timer     *time.Timer
	closeOnce sync.Once
}

// New starts watching dir, creating it if needed.
func New(dir string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating profiles directory: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fw:       fw,
		dir:      filepath.Clean(dir),
		debounce: debounce,
		logger:   logger,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	logger.Debug("watching profiles directory", "dir", dir)
	return w, nil
}

// Changes receives one value after each burst of profile file changes.
// Signals are coalesced: a slow reader sees at most one pending value.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher. Calls after the first return nil.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("profile file changed", "file", filepath.Base(event.Name), "op", event.Op.String())
			w.schedule()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("profiles watcher error", "err", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if filepath.Dir(event.Name) != w.dir {
		return false
	}
	return profiles.IsProfileFile(filepath.Base(event.Name))
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.signal)
}

func (w *Watcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
