// Package watcher detects changes made to the open file by other programs.
//
// A FileWatcher watches the file's directory with fsnotify, so that editors
// which save by rename are seen too. It starts no goroutines of its own:
// the caller polls Changed once per render pass, which drains the pending
// fsnotify events without blocking.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// eventBuffer is how many fsnotify events may queue between polls.
const eventBuffer = 64

// relevantOps are the operations that can change the file's content.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// stamp identifies a version of the file on disk.
type stamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statStamp(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{exists: true, size: info.Size(), modTime: info.ModTime()}
}

// FileWatcher reports external modifications of a single file.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	last    stamp
	closed  bool
}

// New starts watching the file at path. The file itself may not exist yet,
// but its directory must.
func New(path string) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewBufferedWatcher(eventBuffer)
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &FileWatcher{
		watcher: fsw,
		path:    absPath,
		last:    statStamp(absPath),
	}, nil
}

// Path returns the absolute path of the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Changed drains pending events and reports whether the file differs from
// the version last seen. Each external change is reported once. An error
// reported by fsnotify is returned along with whatever change was seen so
// far; after Close it returns ErrWatcherClosed.
func (w *FileWatcher) Changed() (bool, error) {
	if w.closed {
		return false, ErrWatcherClosed
	}

	touched := false
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return w.settle(touched), nil
			}
			if filepath.Clean(ev.Name) == w.path && ev.Op&relevantOps != 0 {
				touched = true
			}
		case err, ok := <-w.watcher.Errors:
			if ok && err != nil {
				return w.settle(touched), err
			}
		default:
			return w.settle(touched), nil
		}
	}
}

func (w *FileWatcher) settle(touched bool) bool {
	if !touched {
		return false
	}
	current := statStamp(w.path)
	if current == w.last {
		return false
	}
	w.last = current
	return true
}

// Sync records the file's current state as seen, typically right after the
// editor itself has written it.
func (w *FileWatcher) Sync() {
	w.last = statStamp(w.path)
}

// Close stops watching. It is safe to call more than once.
func (w *FileWatcher) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
