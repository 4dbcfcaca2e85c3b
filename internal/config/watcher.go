package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ReloadHandler is called with the freshly loaded configuration after the
// watched file changes. Load errors are reported to the error handler
// instead; the previous configuration stays in effect.
type ReloadHandler func(cfg Config)

// ErrorHandler receives watch or reload errors.
type ErrorHandler func(err error)

// Watcher reloads the configuration when its file changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	onReload ReloadHandler
	onError  ErrorHandler

	closeOnce sync.Once
	done      chan struct{}
}

// NewWatcher watches the config file at path. The handler runs on the
// watcher's goroutine; keep it short or hand off.
func NewWatcher(path string, onReload ReloadHandler, onError ErrorHandler) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating watcher: %w", err)
	}

	// Watch the directory, not the file: editors often replace the file by
	// rename, which drops a direct file watch.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watching %s: %w", absPath, err)
	}

	w := &Watcher{
		path:     absPath,
		watcher:  fsw,
		onReload: onReload,
		onError:  onError,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
	})
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
