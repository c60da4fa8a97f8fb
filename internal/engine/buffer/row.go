package buffer

import (
	"strings"
	"unicode/utf8"
)

// TabStop is the width of a tab stop in render columns.
const TabStop = 8

// rawByteBase offsets a byte that is not valid UTF-8 into the low surrogate
// range, which no decoded rune occupies, so the byte survives a round trip.
const rawByteBase = 0xDC00

// Row is a single line of text together with its display form.
// The render cache is always the tab expansion of the characters.
//
// A byte that is not part of a valid UTF-8 sequence counts as one
// character of its own and is written back unchanged.
type Row struct {
	chars  []rune
	render []rune
}

// NewRow creates a row from a line of text.
func NewRow(text string) *Row {
	r := &Row{chars: decodeChars(text)}
	r.update()
	return r
}

// decodeChars splits text into characters, mapping each invalid byte to
// rawByteBase plus the byte value.
func decodeChars(text string) []rune {
	chars := make([]rune, 0, len(text))
	for len(text) > 0 {
		c, size := utf8.DecodeRuneInString(text)
		if c == utf8.RuneError && size == 1 {
			c = rawByteBase + rune(text[0])
		}
		chars = append(chars, c)
		text = text[size:]
	}
	return chars
}

// encodeChars is the inverse of decodeChars.
func encodeChars(chars []rune) string {
	buf := make([]byte, 0, len(chars))
	for _, c := range chars {
		if isRawByte(c) {
			buf = append(buf, byte(c-rawByteBase))
			continue
		}
		buf = utf8.AppendRune(buf, c)
	}
	return string(buf)
}

// isRawByte reports whether c stands for an invalid input byte. Such bytes
// are always 0x80 or above.
func isRawByte(c rune) bool {
	return c >= rawByteBase+0x80 && c <= rawByteBase+0xFF
}

// update recomputes the render cache from the characters.
func (r *Row) update() {
	render := r.render[:0]
	col := 0
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			col++
			for col%TabStop != 0 {
				render = append(render, ' ')
				col++
			}
			continue
		}
		if isRawByte(c) {
			c = utf8.RuneError
		}
		render = append(render, c)
		col++
	}
	r.render = render
}

// Len returns the number of characters in the row.
func (r *Row) Len() int {
	return len(r.chars)
}

// RenderLen returns the number of render columns in the row.
func (r *Row) RenderLen() int {
	return len(r.render)
}

// String returns the raw characters of the row, byte for byte as loaded.
func (r *Row) String() string {
	return encodeChars(r.chars)
}

// Render returns the tab-expanded display form of the row.
func (r *Row) Render() string {
	return string(r.render)
}

// RenderSlice returns at most width render columns starting at column from.
// It returns an empty string when from is past the end of the row.
func (r *Row) RenderSlice(from, width int) string {
	if from < 0 {
		from = 0
	}
	if from >= len(r.render) || width <= 0 {
		return ""
	}
	end := min(from+width, len(r.render))
	return string(r.render[from:end])
}

// InsertRune inserts c before the character at index at.
// An index at or past the end appends.
func (r *Row) InsertRune(at int, c rune) {
	if at < 0 {
		at = 0
	}
	if at >= len(r.chars) {
		r.chars = append(r.chars, c)
	} else {
		r.chars = append(r.chars, 0)
		copy(r.chars[at+1:], r.chars[at:])
		r.chars[at] = c
	}
	r.update()
}

// DeleteRune removes the character at index at.
// It reports whether a character was removed.
func (r *Row) DeleteRune(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update()
	return true
}

// Split truncates the row to its first from characters and returns the
// removed suffix. The caller is responsible for placing the suffix in a
// new row.
func (r *Row) Split(from int) string {
	from = max(0, min(from, len(r.chars)))
	suffix := encodeChars(r.chars[from:])
	r.chars = r.chars[:from]
	r.update()
	return suffix
}

// Append concatenates text onto the end of the row.
func (r *Row) Append(text string) {
	if text == "" {
		return
	}
	r.chars = append(r.chars, decodeChars(text)...)
	r.update()
}

// CursorToRender maps a character column to its render column using the
// same tab expansion as the render cache.
func (r *Row) CursorToRender(cx int) int {
	cx = min(cx, len(r.chars))
	rx := 0
	for _, c := range r.chars[:max(cx, 0)] {
		if c == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// Index returns the character column of the first occurrence of query in
// the row, or -1. The match is a case-sensitive literal comparison and an
// empty query never matches.
func (r *Row) Index(query string) int {
	if query == "" {
		return -1
	}
	s := r.String()
	i := strings.Index(s, query)
	if i < 0 {
		return -1
	}
	return len(decodeChars(s[:i]))
}
