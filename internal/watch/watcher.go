// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/northbound/filereader/internal/filereader"
	"github.com/northbound/filereader/internal/logger"
	"github.com/northbound/filereader/internal/reader"
)

// Result is the outcome of one re-read of a watched file
type Result[T any] struct {
	ID    string // correlates log lines of a single read
	Path  string
	Value T
	Err   error
}

// Watcher re-reads files through a chain whenever they are written or recreated.
// Every re-read is an independent chain call.
type Watcher[T any] struct {
	chain     *filereader.Chain[T]
	targets   map[string]bool
	dirs      []string
	debouncer *Debouncer
	onResult  func(Result[T])

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	stopped bool
}

// New creates a watcher for paths. onResult is called from timer goroutines,
// once per debounced change.
func New[T any](chain *filereader.Chain[T], paths []string, debounce time.Duration, onResult func(Result[T])) (*Watcher[T], error) {
	if len(paths) == 0 {
		return nil, errors.New("no paths to watch")
	}

	w := &Watcher[T]{
		chain:    chain,
		targets:  make(map[string]bool, len(paths)),
		onResult: onResult,
	}

	seenDirs := make(map[string]bool)
	for _, p := range paths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", p, err)
		}
		w.targets[absPath] = true

		dir := filepath.Dir(absPath)
		if !seenDirs[dir] {
			seenDirs[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}

	w.debouncer = NewDebouncer(debounce, w.read)
	return w, nil
}

// Start watches until ctx is done or the watcher is stopped
func (w *Watcher[T]) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// directories are watched so that files replaced by rename-on-save keep being seen
	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logger.Debugf("Watching directory: %s", dir)
	}

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		fsw.Close()
		return nil
	}
	w.fsw = fsw
	w.mu.Unlock()
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("Watcher error: %v", err)
		}
	}
}

// Stop stops watching and cancels pending re-reads. It is safe to call more than once.
func (w *Watcher[T]) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true
	w.debouncer.Stop()

	if w.fsw != nil {
		if err := w.fsw.Close(); err != nil {
			logger.Warnf("Error closing watcher: %v", err)
		}
	}
}

func (w *Watcher[T]) handle(event fsnotify.Event) {
	if !w.targets[event.Name] || reader.IsTemporaryFile(event.Name) {
		return
	}

	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		w.debouncer.Trigger(event.Name)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		logger.Warnf("Watched file went away: %s", event.Name)
	}
}

func (w *Watcher[T]) read(path string) {
	id := uuid.New().String()
	logger.Debugf("[%s] re-reading %s", id, path)

	value, err := w.chain.Read(path)
	if w.onResult != nil {
		w.onResult(Result[T]{ID: id, Path: path, Value: value, Err: err})
	}
}
