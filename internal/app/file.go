package app

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/watcher"
)

// Open loads the file at path into the editor. A file that does not exist
// yet opens as an empty document that will be created on save.
func (app *Application) Open(path string) error {
	data, err := os.ReadFile(path)
	var doc *buffer.Document
	switch {
	case err == nil:
		doc = buffer.FromText(string(data))
	case errors.Is(err, fs.ErrNotExist):
		doc = buffer.New()
	default:
		return &FileError{Op: "open", Path: path, Err: err}
	}

	app.view.SetDocument(doc)
	app.filename = path
	app.watch()

	app.Logger().WithComponent("file").Info("opened %s (%d rows)", path, doc.Len())
	return nil
}

// Save writes the document to its file, asking for a name first if it has
// none. Failures leave the document and its dirty state unchanged and are
// reported in the status message.
func (app *Application) Save() error {
	if app.filename == "" {
		name, ok, err := app.Prompt(savePrompt, nil)
		if err != nil {
			return err
		}
		if !ok {
			app.SetStatus("Save aborted")
			return ErrNoFilename
		}
		app.filename = name
		app.watch()
	}

	doc := app.view.Document()
	data := doc.Serialize()
	if err := os.WriteFile(app.filename, []byte(data), 0o644); err != nil {
		app.SetStatus("Can't save! I/O error: %s", ioReason(err))
		app.Logger().WithComponent("file").Error("save %s: %v", app.filename, err)
		return &FileError{Op: "save", Path: app.filename, Err: err}
	}

	doc.MarkClean()
	if app.watcher != nil {
		app.watcher.Sync()
	}
	app.SetStatus("%d bytes written to disk", len(data))
	app.Logger().WithComponent("file").Info("saved %s (%d bytes)", app.filename, len(data))
	return nil
}

// watch replaces the file watcher with one for the current filename.
// Watching is best effort; a failure is only logged.
func (app *Application) watch() {
	if app.watcher != nil {
		_ = app.watcher.Close()
		app.watcher = nil
	}

	w, err := watcher.New(app.filename)
	if err != nil {
		app.Logger().WithComponent("watcher").Warn("not watching %s: %v", app.filename, err)
		return
	}
	app.watcher = w
	app.Logger().WithComponent("watcher").Debug("watching %s", w.Path())
}
