package tui

import (
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"
)

// fileChangedMsg is sent when the edited file changes on disk.
type fileChangedMsg struct {
	path string
}

// FileWatcher reports external changes to the file being annotated. The
// parent directory is watched because editors often save by renaming a
// temporary file over the original.
type FileWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	debounceDur time.Duration
}

// NewFileWatcher creates a watcher for path.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &FileWatcher{
		watcher:     watcher,
		path:        abs,
		debounceDur: 100 * time.Millisecond,
	}, nil
}

// Watch returns a command that blocks until the file is written, created,
// renamed or removed. It returns nil once the watcher is closed.
func (w *FileWatcher) Watch() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.relevant(event) {
					continue
				}

				// Let a burst of writes settle, then drop what queued up.
				time.Sleep(w.debounceDur)
				for drained := false; !drained; {
					select {
					case <-w.watcher.Events:
					default:
						drained = true
					}
				}

				return fileChangedMsg{path: w.path}

			case _, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

func (w *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}
