package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives the reloaded configuration, or the load error.
type Handler func(cfg Config, err error)

// Watcher reloads a configuration file when it changes on disk.
// Editors that write via rename are handled by watching the parent
// directory. Rapid write bursts are debounced.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler

	fw   *fsnotify.Watcher
	done chan struct{}

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
}

// DefaultDebounce is the reload debounce window.
const DefaultDebounce = 100 * time.Millisecond

// Watch starts watching path and delivers reloads to handler on a
// background goroutine. Callers stop it with Close.
func Watch(path string, handler Handler) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		handler:  handler,
		fw:       fw,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.handler(Default(), err)
		case <-w.done:
			return
		}
	}
}

// schedule arms the debounce timer, restarting it on each new event.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	w.handler(Load(w.path))
}

// Close stops the watcher and drops any pending reload.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
	close(w.done)
	return w.fw.Close()
}
