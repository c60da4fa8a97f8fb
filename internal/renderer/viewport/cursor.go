package viewport

// Direction is a single-step cursor movement.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// MoveCursor moves the cursor one step.
//
// Left at column 0 wraps to the end of the previous row and Right at the end
// of a row wraps to the start of the next one. Up stops at row 0 and Down
// stops at the virtual row past the end of the document. After the move the
// column is clamped to the length of the target row.
func (v *Viewport) MoveCursor(dir Direction) {
	pos := v.cursor
	row, onRow := v.doc.Row(pos.Y)

	switch dir {
	case DirLeft:
		if pos.X > 0 {
			pos.X--
		} else if pos.Y > 0 {
			pos.Y--
			pos.X = v.doc.RowLen(pos.Y)
		}
	case DirRight:
		if onRow {
			if pos.X < row.Len() {
				pos.X++
			} else if pos.X == row.Len() {
				pos.Y++
				pos.X = 0
			}
		}
	case DirUp:
		if pos.Y > 0 {
			pos.Y--
		}
	case DirDown:
		if pos.Y < v.doc.Len() {
			pos.Y++
		}
	}

	pos.X = min(pos.X, v.doc.RowLen(pos.Y))
	v.cursor = pos
}

// PageMove moves the cursor to the top or bottom edge of the viewport and
// then steps pageSize rows further in that direction. Directions other
// than up and down are ignored.
func (v *Viewport) PageMove(dir Direction, pageSize int) {
	switch dir {
	case DirUp:
		v.cursor.Y = v.rowOff
	case DirDown:
		v.cursor.Y = min(v.rowOff+v.height-1, v.doc.Len())
	default:
		return
	}
	v.cursor.Y = max(0, min(v.cursor.Y, v.doc.Len()))
	v.cursor.X = min(v.cursor.X, v.doc.RowLen(v.cursor.Y))

	for range max(pageSize, 0) {
		v.MoveCursor(dir)
	}
}

// Home moves the cursor to the start of the row.
func (v *Viewport) Home() {
	v.cursor.X = 0
}

// End moves the cursor to the end of the row.
func (v *Viewport) End() {
	v.cursor.X = v.doc.RowLen(v.cursor.Y)
}
