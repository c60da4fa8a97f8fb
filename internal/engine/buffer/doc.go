// Package buffer provides the in-memory text buffer of the editor: an ordered
// sequence of rows, each holding its raw characters and a tab-expanded render
// cache.
//
// The buffer package provides:
//
//   - Row: one line of text plus its display form (tabs expanded to stops of 8)
//   - Document: the ordered rows of the open file and a dirty counter
//   - Position: a logical cursor position (character column, row index)
//
// Columns are always character (rune) indexes, never byte offsets. The render
// column of a character is obtained with Row.CursorToRender.
//
// Basic usage:
//
//	doc := buffer.FromText("hello\nworld\n")
//
//	pos := buffer.Position{X: 5, Y: 0}
//	pos = doc.InsertRune(pos, '!')   // "hello!"
//	pos = doc.SplitLine(pos)         // "hello!", "", "world"
//
//	text := doc.Serialize()          // "hello!\n\nworld\n"
//
// Structural misuse (an index past the end, deleting at the start of the
// buffer) is never an error: operations report whether they did anything and
// otherwise leave the buffer untouched.
//
// A Document is not safe for concurrent use; it is owned by a single editing
// session.
package buffer
