// Package watch turns filesystem writes into line-break triggers for the
// insertion engine.
package watch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/yhmin/linestamp/internal/util"
)

// FileEvent is a write observed on a tracked file.
type FileEvent struct {
	Path string
	Op   string
}

// FileWatcher watches paths recursively and forwards events for files whose
// extension is tracked.
type FileWatcher struct {
	watcher    *fsnotify.Watcher
	extensions map[string]struct{}
	events     chan FileEvent
}

// NewFileWatcher starts watching the given paths. Directories are added
// recursively; plain files are watched directly.
func NewFileWatcher(paths []string, extensions []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}

	fw := &FileWatcher{
		watcher:    watcher,
		extensions: exts,
		events:     make(chan FileEvent, 100),
	}

	for _, path := range paths {
		if err := fw.addPath(path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go fw.processEvents()
	return fw, nil
}

func (fw *FileWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fw.watcher.Add(path)
	}
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return fw.watcher.Add(p)
		}
		return nil
	})
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if _, tracked := fw.extensions[strings.ToLower(filepath.Ext(event.Name))]; !tracked {
				continue
			}
			fw.events <- FileEvent{Path: event.Name, Op: event.Op.String()}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("file watch error: " + err.Error())
		}
	}
}

// Events returns the filtered event channel.
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
