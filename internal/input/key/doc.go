// Package key provides the key event types delivered by the input source.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: identifies a keyboard key (special keys or KeyRune for characters)
//   - Modifier: modifier keys held with the key (Shift, Ctrl, Alt)
//   - Event: a single key press
//
// Control combinations of letters are reported as KeyRune with the lower-case
// letter and ModCtrl set, so Ctrl-S is Event{Key: KeyRune, Rune: 's',
// Mod: ModCtrl}. Ctrl-H, Ctrl-I and Ctrl-M arrive as Backspace, Tab and Enter
// because terminals cannot tell them apart.
package key
