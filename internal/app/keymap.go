package app

import (
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// movement returns the cursor direction a key moves in. Arrow keys always
// move; Alt+w/a/s/d move only when wasd is enabled.
func movement(ev key.Event, wasd bool) (viewport.Direction, bool) {
	switch ev.Key {
	case key.KeyUp:
		return viewport.DirUp, true
	case key.KeyDown:
		return viewport.DirDown, true
	case key.KeyLeft:
		return viewport.DirLeft, true
	case key.KeyRight:
		return viewport.DirRight, true
	}

	if !wasd || !ev.IsAlt(ev.Rune) {
		return 0, false
	}
	switch ev.Rune {
	case 'w':
		return viewport.DirUp, true
	case 'a':
		return viewport.DirLeft, true
	case 's':
		return viewport.DirDown, true
	case 'd':
		return viewport.DirRight, true
	}
	return 0, false
}

// pageDirection returns the direction of a PageUp or PageDown key.
func pageDirection(ev key.Event) (viewport.Direction, bool) {
	switch ev.Key {
	case key.KeyPageUp:
		return viewport.DirUp, true
	case key.KeyPageDown:
		return viewport.DirDown, true
	}
	return 0, false
}

// isBackspace reports whether ev deletes the character before the cursor.
func isBackspace(ev key.Event) bool {
	return ev.Key == key.KeyBackspace || ev.IsCtrl('h')
}
