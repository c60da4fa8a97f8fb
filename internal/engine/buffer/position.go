package buffer

import "fmt"

// Position is a logical cursor position.
// X is a character index into the row (not a render column) and Y is a
// 0-indexed row number. Y may equal the document's row count, which denotes
// the virtual row just past the end of the buffer.
// Position is an immutable value type.
type Position struct {
	X int
	Y int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Y, p.X)
}
