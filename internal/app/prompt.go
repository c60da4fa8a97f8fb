package app

import (
	"github.com/dshills/kilo/internal/engine/search"
	"github.com/dshills/kilo/internal/input/key"
)

// Prompt formats.
const (
	savePrompt   = "Save as: %s (ESC to cancel)"
	searchPrompt = "Search: %s (Use ESC/Arrows/Enter)"
)

// PromptFunc is called after every key press in a prompt with the current
// input and the key.
type PromptFunc func(input string, ev key.Event)

// Prompt reads a line of input in the message bar. format must contain one
// %s, replaced by the input so far. Enter accepts non-empty input; Escape
// cancels and returns false. The callback, if any, sees every key,
// including the final Enter or Escape.
func (app *Application) Prompt(format string, callback PromptFunc) (string, bool, error) {
	var input []rune

	for {
		app.SetStatus(format, string(input))
		app.refresh()

		ev, err := app.readKey()
		if err != nil {
			return "", false, err
		}

		switch {
		case isBackspace(ev), ev.Key == key.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case ev.Key == key.KeyEscape:
			app.SetStatus("")
			if callback != nil {
				callback(string(input), ev)
			}
			return "", false, nil
		case ev.Key == key.KeyEnter:
			if len(input) > 0 {
				app.SetStatus("")
				if callback != nil {
					callback(string(input), ev)
				}
				return string(input), true, nil
			}
		case ev.IsChar():
			input = append(input, ev.Rune)
		}

		if callback != nil {
			callback(string(input), ev)
		}
	}
}

// Find runs an incremental search. The cursor follows the match as the
// query is typed; the arrow keys step to the next or previous match.
// Escape puts the cursor and scroll position back.
func (app *Application) Find() error {
	app.search.Begin()
	_, _, err := app.Prompt(searchPrompt, func(query string, ev key.Event) {
		app.search.Step(query, searchEvent(ev))
	})
	return err
}

// searchEvent classifies a prompt key for the search session.
func searchEvent(ev key.Event) search.Event {
	switch ev.Key {
	case key.KeyEnter:
		return search.EventConfirm
	case key.KeyEscape:
		return search.EventCancel
	case key.KeyRight, key.KeyDown:
		return search.EventNext
	case key.KeyLeft, key.KeyUp:
		return search.EventPrevious
	default:
		return search.EventInput
	}
}
