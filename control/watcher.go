// control/watcher.go
// Author: momentics <momentics@gmail.com>
//
// OS-notification file watcher that feeds config revisions into a
// ConfigStore, turning the reload hooks into an actual hot-reload path.

package control

import (
	"fmt"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watcher follows one JSON config file and pushes every successfully
// parsed revision into a ConfigStore. A revision that fails to parse is
// dropped; the store keeps the last good document.
type Watcher struct {
	path    string
	store   *ConfigStore
	fw      *fsnotify.Watcher
	errCh   chan error
	done    chan struct{}
	stopped atomic.Bool
}

// NewWatcher loads path once into store and begins following it.
func NewWatcher(path string, store *ConfigStore) (*Watcher, error) {
	if err := LoadFileInto(store, path); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("control: start watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("control: watch %s: %w", path, err)
	}
	w := &Watcher{
		path:  path,
		store: store,
		fw:    fw,
		errCh: make(chan error, 1),
		done:  make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// Atomic saves replace the inode; re-arm the watch.
				_ = w.fw.Add(w.path)
			} else if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			doc, err := LoadFile(w.path)
			if err != nil {
				w.reportErr(err)
				continue
			}
			w.store.SetConfig(doc)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.reportErr(err)
		}
	}
}

// Errors exposes watch and parse failures. The channel holds one entry;
// further failures are dropped until it is read.
func (w *Watcher) Errors() <-chan error { return w.errCh }

// Stop ends the watch and waits for the loop to exit. Idempotent.
func (w *Watcher) Stop() {
	if w.stopped.CompareAndSwap(false, true) {
		w.fw.Close()
		<-w.done
	}
}

func (w *Watcher) reportErr(err error) {
	select {
	case w.errCh <- err:
	default:
	}
}
