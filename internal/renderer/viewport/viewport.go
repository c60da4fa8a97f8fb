// Package viewport provides the cursor and scrolling controller of the
// editor: the logical cursor, the scroll offsets into the document, and the
// dimensions of the visible text pane.
package viewport

import (
	"github.com/dshills/kilo/internal/engine/buffer"
)

// ReservedRows is the number of screen rows kept for the status bar and
// the message line below the text pane.
const ReservedRows = 2

// Viewport represents the visible portion of a document and the cursor
// within it.
type Viewport struct {
	doc *buffer.Document

	cursor buffer.Position

	// Scroll offsets: first visible row and first visible render column
	rowOff int
	colOff int

	// Render column of the cursor, refreshed by Scroll
	renderX int

	// Size of the text pane in screen cells
	width  int
	height int
}

// New creates a viewport over doc for a text pane of the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func New(doc *buffer.Document, width, height int) *Viewport {
	if doc == nil {
		doc = buffer.New()
	}
	return &Viewport{
		doc:    doc,
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// NewForScreen creates a viewport for a terminal of the given size,
// reserving the bottom rows for the status and message lines.
func NewForScreen(doc *buffer.Document, screenWidth, screenHeight int) *Viewport {
	return New(doc, screenWidth, screenHeight-ReservedRows)
}

// Document returns the document the viewport shows.
func (v *Viewport) Document() *buffer.Document {
	return v.doc
}

// SetDocument replaces the document and resets the cursor and offsets.
func (v *Viewport) SetDocument(doc *buffer.Document) {
	if doc == nil {
		doc = buffer.New()
	}
	v.doc = doc
	v.cursor = buffer.Position{}
	v.rowOff, v.colOff, v.renderX = 0, 0, 0
}

// Width returns the text pane width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the text pane height.
func (v *Viewport) Height() int {
	return v.height
}

// Resize updates the text pane size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// ResizeScreen updates the pane size from the terminal size.
func (v *Viewport) ResizeScreen(screenWidth, screenHeight int) {
	v.Resize(screenWidth, screenHeight-ReservedRows)
}

// Cursor returns the logical cursor position.
func (v *Viewport) Cursor() buffer.Position {
	return v.cursor
}

// SetCursor moves the cursor, clamping it to the document: the row to
// [0, rows] and the column to the length of the row.
func (v *Viewport) SetCursor(pos buffer.Position) {
	pos.Y = max(0, min(pos.Y, v.doc.Len()))
	pos.X = max(0, min(pos.X, v.doc.RowLen(pos.Y)))
	v.cursor = pos
}

// RowOffset returns the first visible row.
func (v *Viewport) RowOffset() int {
	return v.rowOff
}

// ColOffset returns the first visible render column.
func (v *Viewport) ColOffset() int {
	return v.colOff
}

// RenderX returns the render column of the cursor as of the last Scroll.
func (v *Viewport) RenderX() int {
	return v.renderX
}

// ScreenRowToRow converts a screen row to a document row.
func (v *Viewport) ScreenRowToRow(screenRow int) int {
	return v.rowOff + max(screenRow, 0)
}

// ScreenCursor returns the screen cell of the cursor. The values saturate
// at 0 when the offsets have not caught up with the cursor yet.
func (v *Viewport) ScreenCursor() (col, row int) {
	return max(v.renderX-v.colOff, 0), max(v.cursor.Y-v.rowOff, 0)
}
