package viewport

import (
	"fmt"

	"github.com/dshills/kilo/internal/engine/buffer"
)

// ScrollState is a snapshot of the cursor and both scroll offsets.
type ScrollState struct {
	Cursor    buffer.Position
	RowOffset int
	ColOffset int
}

// GetScrollState returns the current cursor and offsets.
func (v *Viewport) GetScrollState() ScrollState {
	return ScrollState{
		Cursor:    v.cursor,
		RowOffset: v.rowOff,
		ColOffset: v.colOff,
	}
}

// SetScrollState restores a snapshot taken with GetScrollState.
func (v *Viewport) SetScrollState(state ScrollState) {
	v.SetCursor(state.Cursor)
	v.rowOff = max(state.RowOffset, 0)
	v.colOff = max(state.ColOffset, 0)
}

// RevealAtTop pushes the row offset past the end of the document so that the
// next Scroll pulls it back to the cursor row, placing that row at the top
// of the pane.
func (v *Viewport) RevealAtTop() {
	v.rowOff = v.doc.Len()
}

// Scroll recomputes the render column of the cursor and adjusts the offsets
// so the cursor is inside the pane. It must run before every render pass.
func (v *Viewport) Scroll() {
	v.renderX = 0
	if row, ok := v.doc.Row(v.cursor.Y); ok {
		v.renderX = row.CursorToRender(v.cursor.X)
	}

	if v.cursor.Y < v.rowOff {
		v.rowOff = v.cursor.Y
	}
	if v.cursor.Y >= v.rowOff+v.height {
		v.rowOff = max(v.cursor.Y-v.height+1, 0)
	}
	if v.renderX < v.colOff {
		v.colOff = v.renderX
	}
	if v.renderX >= v.colOff+v.width {
		v.colOff = max(v.renderX-v.width+1, 0)
	}
}

// PercentLabel returns a short position token for the status bar: "All" for
// an empty document, "TOP" in the first 5% of the rows, "BOT" in the last 5%,
// and otherwise "<row>,<col> NN%" with a 1-based row and column.
func (v *Viewport) PercentLabel() string {
	n := v.doc.Len()
	if n == 0 {
		return "All"
	}

	percent := v.cursor.Y * 100 / n
	switch {
	case percent < 5:
		return "TOP"
	case percent >= 95:
		return "BOT"
	}
	return fmt.Sprintf("%d,%d %d%%", v.cursor.Y+1, v.cursor.X+1, percent)
}
