package app

import (
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// watcher follows the currently loaded recording file and reports writes
// so the app can reload it. One file is watched at a time.
type watcher struct {
	fs      *fsnotify.Watcher
	changed chan string

	mu   sync.Mutex
	path string
}

func newWatcher() (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &watcher{
		fs:      fs,
		changed: make(chan string, 1),
	}
	go w.run()
	return w, nil
}

func (w *watcher) run() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Drop the event if a previous one is still pending.
			select {
			case w.changed <- ev.Name:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}

// Watch switches to following path, dropping the previous file.
func (w *watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.path != "" {
		_ = w.fs.Remove(w.path)
		w.path = ""
	}
	if path == "" {
		return nil
	}
	if err := w.fs.Add(path); err != nil {
		return err
	}
	w.path = path
	return nil
}

// Changed yields the path of the watched file after it was rewritten.
func (w *watcher) Changed() <-chan string {
	return w.changed
}

func (w *watcher) Close() {
	_ = w.fs.Close()
}
