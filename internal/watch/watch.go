// Package watch re-reads a manifest file whenever it changes on disk.
//
// A Watcher is an explicit subscription: it starts when created and stops
// when closed, and the owner is responsible for closing it when it loads a
// different file or exits.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dbmrq/depdoc/internal/logging"
	"github.com/dbmrq/depdoc/internal/manifest"
)

// DefaultDebounce is the quiet period after the last event before the file is re-read.
const DefaultDebounce = 200 * time.Millisecond

// Change carries the new contents of the watched file, or the error from reading it.
type Change struct {
	Path    string
	Content string
	Err     error
}

// Watcher delivers a Change each time the watched file is written, created or
// replaced. Bursts of events within the debounce window produce one Change.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	changes  chan Change
	cancel   context.CancelFunc
	done     chan struct{}
	closeMu  sync.Mutex
	closed   bool
}

// New starts watching path. The parent directory is watched so that editors
// that save by renaming a temporary file are still seen.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fsw,
		changes:  make(chan Change, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go w.run(ctx)

	logging.Debug("watching manifest", "path", abs)
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes returns the channel Changes are delivered on. It is closed after Close.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops the watcher and waits for its goroutine to exit. It is safe to
// call more than once.
func (w *Watcher) Close() error {
	w.closeMu.Lock()
	if w.closed {
		w.closeMu.Unlock()
		return nil
	}
	w.closed = true
	w.closeMu.Unlock()

	w.cancel()
	err := w.fs.Close()
	<-w.done
	logging.Debug("stopped watching manifest", "path", w.path)
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.changes)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logging.Debug("manifest event", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logging.Warn("manifest watcher error", "path", w.path, "error", err)

		case <-timer.C:
			content, err := manifest.ReadFile(w.path)
			w.deliver(ctx, Change{Path: w.path, Content: content, Err: err})
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// deliver sends c, replacing any Change the consumer has not taken yet.
// Only the latest contents matter.
func (w *Watcher) deliver(ctx context.Context, c Change) {
	for {
		select {
		case w.changes <- c:
			return
		case <-ctx.Done():
			return
		default:
		}
		select {
		case <-w.changes:
		default:
		}
	}
}
