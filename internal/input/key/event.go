package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Mod contains the active modifier keys.
	Mod Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mod: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Mod: mods}
}

// Ctrl creates the event for Control plus a letter.
func Ctrl(r rune) Event {
	return Event{Key: KeyRune, Rune: unicode.ToLower(r), Mod: ModCtrl}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsCtrl returns true if this is Control plus the given letter.
func (e Event) IsCtrl(r rune) bool {
	return e.IsRune() && e.Mod.Has(ModCtrl) && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// IsAlt returns true if this is Alt plus the given character.
func (e Event) IsAlt(r rune) bool {
	return e.IsRune() && e.Mod.Has(ModAlt) && !e.Mod.Has(ModCtrl) && e.Rune == r
}

// IsChar returns true if this is a printable character that should be
// inserted as text. Shift alone does not disqualify a character.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.Mod.Has(ModCtrl) && !e.Mod.Has(ModAlt) && unicode.IsPrint(e.Rune)
}

// String returns a canonical string representation like "C-s" or "Enter".
func (e Event) String() string {
	var parts []string
	if e.Mod.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if e.Mod.Has(ModAlt) {
		parts = append(parts, "A")
	}
	// Only show Shift for non-character keys
	if e.Mod.Has(ModShift) && !e.IsRune() {
		parts = append(parts, "S")
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		parts = append(parts, "Space")
	case e.Key == KeyRune:
		parts = append(parts, string(e.Rune))
	default:
		parts = append(parts, e.Key.String())
	}
	return strings.Join(parts, "-")
}
