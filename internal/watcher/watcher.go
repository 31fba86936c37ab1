// Package watcher reloads board columns when their files change on disk.
//
// It can be used standalone via `cardboard watch`.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/aidanlsb/cardboard/internal/board"
)

// DefaultDebounce is how long a file must stay quiet before it is reloaded.
const DefaultDebounce = 100 * time.Millisecond

// Event reports the outcome of one reload.
type Event struct {
	Path   string
	Column *board.Column
	Err    error
}

// Watcher monitors the files of a board and reloads them when they change.
type Watcher struct {
	board  *board.Board
	logger *zap.Logger

	debounceDelay time.Duration

	fsWatcher *fsnotify.Watcher
	tracked   map[string]bool
	pending   map[string]time.Time
	mu        sync.Mutex

	onReload func(Event)
}

// Config holds configuration options for the Watcher.
type Config struct {
	Board         *board.Board
	Logger        *zap.Logger
	DebounceDelay time.Duration // Default: DefaultDebounce
	OnReload      func(Event)   // Optional callback
}

// New creates a Watcher for every file currently on the board.
func New(cfg Config) (*Watcher, error) {
	if cfg.Board == nil {
		return nil, fmt.Errorf("board is required")
	}

	debounce := cfg.DebounceDelay
	if debounce == 0 {
		debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tracked := make(map[string]bool)
	for _, path := range cfg.Board.Paths() {
		tracked[path] = true
	}

	return &Watcher{
		board:         cfg.Board,
		logger:        logger,
		debounceDelay: debounce,
		tracked:       tracked,
		pending:       make(map[string]time.Time),
		onReload:      cfg.OnReload,
	}, nil
}

// Start begins watching. It blocks until the context is cancelled and does
// not return before its helper goroutine has exited.
func (w *Watcher) Start(ctx context.Context) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.fsWatcher.Close()

	// Editors often replace files by renaming over them, which drops a watch
	// on the file itself, so the parent directories are watched instead.
	dirs := make(map[string]bool)
	for path := range w.tracked {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.logger.Debug("watching directory", zap.String("dir", dir))
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.processDebounced(ctx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if !w.tracked[path] {
		return
	}

	w.logger.Debug("file event", zap.String("op", event.Op.String()), zap.String("path", path))

	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		w.scheduleReload(path)
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		// A rename-into-place follows with a Create; only report the file
		// missing if it stays gone.
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			w.report(Event{Path: path, Err: fmt.Errorf("%s: %w", path, os.ErrNotExist)})
		}
	}
}

// scheduleReload adds a file to the pending queue with debouncing.
func (w *Watcher) scheduleReload(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[path] = time.Now()
}

// processDebounced reloads pending files once they have been quiet for the
// debounce delay.
func (w *Watcher) processDebounced(ctx context.Context) {
	ticker := time.NewTicker(max(w.debounceDelay/2, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processPending(ctx)
		}
	}
}

func (w *Watcher) processPending(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	ready := make([]string, 0)
	for path, scheduledAt := range w.pending {
		if now.Sub(scheduledAt) >= w.debounceDelay {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range ready {
		col, err := w.board.Reload(ctx, path)
		if err != nil {
			w.logger.Warn("reload failed", zap.String("file", path), zap.Error(err))
		} else {
			w.logger.Info("reloaded", zap.String("file", path), zap.Int("contacts", col.Document.Len()))
		}
		w.report(Event{Path: path, Column: col, Err: err})
	}
}

func (w *Watcher) report(e Event) {
	if w.onReload != nil {
		w.onReload(e)
	}
}
