package buffer

import (
	"strings"
)

// Document is the ordered collection of rows of the open buffer.
// The index of a row is its 0-based line number.
type Document struct {
	rows  []*Row
	dirty int
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// Load creates a document from a sequence of lines.
// A trailing empty line, the artifact of splitting text that ends with a
// newline, is dropped so the row count matches the visible content.
// A trailing carriage return on each line is stripped.
func Load(lines []string) *Document {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	d := &Document{rows: make([]*Row, 0, len(lines))}
	for _, line := range lines {
		d.rows = append(d.rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
	return d
}

// FromText creates a document from file content split on newlines.
func FromText(text string) *Document {
	if text == "" {
		return New()
	}
	return Load(strings.Split(text, "\n"))
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// IsEmpty returns true if the document has no rows.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// Row returns the row at index y. The second result is false when y does
// not name an existing row, which includes the virtual row at Len.
func (d *Document) Row(y int) (*Row, bool) {
	if y < 0 || y >= len(d.rows) {
		return nil, false
	}
	return d.rows[y], true
}

// RowLen returns the character count of row y, or 0 when the row does not
// exist.
func (d *Document) RowLen(y int) int {
	if row, ok := d.Row(y); ok {
		return row.Len()
	}
	return 0
}

// Dirty returns the number of mutations since the document was loaded or
// last marked clean.
func (d *Document) Dirty() int {
	return d.dirty
}

// IsDirty returns true if the document has unsaved mutations.
func (d *Document) IsDirty() bool {
	return d.dirty > 0
}

// MarkClean resets the dirty counter after a successful save.
func (d *Document) MarkClean() {
	d.dirty = 0
}

// InsertRow inserts a new row holding text at index at, shifting later rows
// down. It reports false and does nothing if at is past Len.
func (d *Document) InsertRow(at int, text string) bool {
	if at < 0 || at > len(d.rows) {
		return false
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = NewRow(text)
	d.dirty++
	return true
}

// DeleteRow removes the row at index at and returns its characters.
// The second result is false when there is no row at that index.
func (d *Document) DeleteRow(at int) (string, bool) {
	row, ok := d.Row(at)
	if !ok {
		return "", false
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty++
	return row.String(), true
}

// clamp keeps pos inside the document: Y in [0, Len] and X in [0, RowLen(Y)].
func (d *Document) clamp(pos Position) Position {
	pos.Y = max(0, min(pos.Y, len(d.rows)))
	pos.X = max(0, min(pos.X, d.RowLen(pos.Y)))
	return pos
}

// InsertRune inserts c at pos and returns the cursor position after it.
// Typing on the virtual row past the end first appends an empty row.
func (d *Document) InsertRune(pos Position, c rune) Position {
	pos = d.clamp(pos)
	if pos.Y == len(d.rows) {
		d.InsertRow(len(d.rows), "")
	}
	d.rows[pos.Y].InsertRune(pos.X, c)
	d.dirty++
	pos.X++
	return pos
}

// DeleteBefore removes the character before pos, the backspace operation.
// At column 0 the row is joined onto the end of the previous row.
// It returns the new cursor position and whether anything changed.
func (d *Document) DeleteBefore(pos Position) (Position, bool) {
	pos = d.clamp(pos)
	switch {
	case pos.Y == len(d.rows):
		return pos, false
	case pos.X == 0 && pos.Y == 0:
		return pos, false
	case pos.X > 0:
		d.rows[pos.Y].DeleteRune(pos.X - 1)
		d.dirty++
		pos.X--
		return pos, true
	}

	prev := d.rows[pos.Y-1]
	pos.X = prev.Len()
	removed, _ := d.DeleteRow(pos.Y)
	prev.Append(removed)
	pos.Y--
	return pos, true
}

// SplitLine breaks the line at pos, the enter operation, and returns the
// cursor position at the start of the following line.
func (d *Document) SplitLine(pos Position) Position {
	pos = d.clamp(pos)
	if pos.X == 0 {
		d.InsertRow(pos.Y, "")
	} else {
		suffix := d.rows[pos.Y].Split(pos.X)
		d.InsertRow(pos.Y+1, suffix)
	}
	return Position{X: 0, Y: pos.Y + 1}
}

// Lines returns the characters of every row.
func (d *Document) Lines() []string {
	lines := make([]string, len(d.rows))
	for i, row := range d.rows {
		lines[i] = row.String()
	}
	return lines
}

// Serialize joins all rows with a newline after each, the on-disk format.
func (d *Document) Serialize() string {
	var sb strings.Builder
	for _, row := range d.rows {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
