package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settingsDebounce is how long a file must stay quiet before it is reloaded.
const settingsDebounce = 100 * time.Millisecond

// Watcher reports changes to a single settings file. Each event carries the
// freshly decoded settings; decode failures are sent on Errors.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan Settings
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchSettings starts watching path. The parent directory is watched so
// editors that replace the file on save are still observed.
func WatchSettings(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := FormatOf(abs); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Events:  make(chan Settings, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once the loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// Reload only after the file has been quiet for settingsDebounce, so a
	// truncate followed by a write is read once, complete.
	timer := time.NewTimer(settingsDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(settingsDebounce)
		case <-timer.C:
			s, err := LoadSettingsFile(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			select {
			case w.Events <- s:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendErr delivers err unless a previous error is still pending.
func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
