package app

import (
	"errors"
	"fmt"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// quitWarning is shown when Ctrl-Q is pressed with unsaved changes.
const quitWarning = "WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit."

// readKey waits for the next key press. Resize events are applied and the
// screen repainted while waiting. A backend error is fatal.
func (app *Application) readKey() (key.Event, error) {
	for {
		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			app.Logger().Debug("key %s", ev.Key)
			return ev.Key, nil
		case backend.EventResize:
			app.view.ResizeScreen(ev.Width, ev.Height)
			app.refresh()
		case backend.EventError:
			err := ev.Err
			if err == nil {
				err = backend.ErrClosed
			}
			return key.Event{}, fmt.Errorf("%w: %w", ErrKeyRead, err)
		}
	}
}

// ProcessKey applies one key press to the session. It returns ErrQuit when
// the editor should exit and a wrapped ErrKeyRead when a prompt could not
// read the terminal. Everything else is reported in the status message.
func (app *Application) ProcessKey(ev key.Event) error {
	doc := app.view.Document()

	switch {
	case ev.IsCtrl('q'):
		if doc.IsDirty() && app.quitTimes > 0 {
			app.SetStatus(quitWarning, app.quitTimes)
			app.quitTimes--
			return nil
		}
		return ErrQuit

	case ev.Key == key.KeyEnter:
		app.view.SetCursor(doc.SplitLine(app.view.Cursor()))

	case ev.IsCtrl('s'):
		if err := app.Save(); errors.Is(err, ErrKeyRead) {
			return err
		}

	case ev.IsCtrl('f'):
		if err := app.Find(); err != nil {
			return err
		}

	case ev.Key == key.KeyHome:
		app.view.Home()

	case ev.Key == key.KeyEnd:
		app.view.End()

	case isBackspace(ev), ev.Key == key.KeyDelete:
		if ev.Key == key.KeyDelete {
			app.view.MoveCursor(viewport.DirRight)
		}
		if pos, ok := doc.DeleteBefore(app.view.Cursor()); ok {
			app.view.SetCursor(pos)
		}

	case ev.IsCtrl('l'), ev.Key == key.KeyEscape:
		// Ignored; every pass repaints the full screen.

	case ev.Key == key.KeyTab:
		app.insert('\t')

	case ev.IsChar():
		app.insert(ev.Rune)

	default:
		if dir, ok := pageDirection(ev); ok {
			app.view.PageMove(dir, app.view.Height())
		} else if dir, ok := movement(ev, app.cfg.Editor.WASDMovement); ok {
			app.view.MoveCursor(dir)
		}
	}

	app.quitTimes = app.cfg.Editor.QuitTimes
	return nil
}

func (app *Application) insert(c rune) {
	app.view.SetCursor(app.view.Document().InsertRune(app.view.Cursor(), c))
}
