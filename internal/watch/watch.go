// Package watch reports external modifications to the open file so
// the editor can warn that the buffer is stale.
package watch

import (
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// expectWindow is how long after Expect self-triggered events are
// suppressed.
const expectWindow = time.Second

// Watcher watches one file and signals when something other than the
// editor writes it. Notifications are level-triggered: the channel
// holds at most one pending signal.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	events chan struct{}
	done   chan struct{}

	// expectedUntil is the UnixNano deadline below which events are
	// attributed to our own save.
	expectedUntil atomic.Int64
}

// New starts watching path. The parent directory is watched rather
// than the file itself so rename-style saves keep reporting.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		path:   abs,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers a signal per external modification burst.
func (w *Watcher) Changes() <-chan struct{} {
	return w.events
}

// Expect marks the next events as self-triggered. Call immediately
// before saving.
func (w *Watcher) Expect() {
	w.expectedUntil.Store(time.Now().Add(expectWindow).UnixNano())
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return time.Now().UnixNano() > w.expectedUntil.Load()
}
