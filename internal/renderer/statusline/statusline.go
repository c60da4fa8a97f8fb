// Package statusline provides the status bar and message line drawn below
// the text area.
package statusline

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/core"
)

// Height is the number of screen rows the status line occupies.
const Height = 2

// MaxFilenameWidth is the widest a filename may appear in the status bar.
const MaxFilenameWidth = 20

// NoName is shown in place of the filename for an unnamed document.
const NoName = "[No Name]"

// StatusLine renders the status bar and the message line beneath it.
type StatusLine struct {
	// Display state
	filename   string
	modified   bool
	totalLines int
	right      string // Usually the percent label
	message    string

	// Style configuration
	barStyle     core.Style
	messageStyle core.Style

	width int
}

// DefaultBarStyle is white text on dark magenta.
func DefaultBarStyle() core.Style {
	return core.DefaultStyle().WithForeground(core.ColorWhite).WithBackground(core.ColorDarkMagenta)
}

// New creates a new status line.
func New(barStyle, messageStyle core.Style) *StatusLine {
	return &StatusLine{
		barStyle:     barStyle,
		messageStyle: messageStyle,
	}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetTotalLines updates the line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetRight sets the right-aligned text of the status bar.
func (s *StatusLine) SetRight(text string) {
	s.right = text
}

// SetMessage sets the message line text.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
}

// Resize updates the width of the status line.
func (s *StatusLine) Resize(width int) {
	s.width = max(width, 0)
}

// Left returns the left part of the status bar.
func (s *StatusLine) Left() string {
	name := s.filename
	if name == "" {
		name = NoName
	}
	name = runewidth.Truncate(name, MaxFilenameWidth, "")

	left := fmt.Sprintf("%s - %d lines", name, s.totalLines)
	if s.modified {
		left += " (modified)"
	}
	return left
}

// Bar returns the status bar text padded to the line width. The left part
// is truncated to fit and the right part is shown only when it fits after it.
func (s *StatusLine) Bar() string {
	left := runewidth.Truncate(s.Left(), s.width, "")
	lw := runewidth.StringWidth(left)
	rw := runewidth.StringWidth(s.right)

	if s.right != "" && lw+rw <= s.width {
		return left + strings.Repeat(" ", s.width-lw-rw) + s.right
	}
	return runewidth.FillRight(left, s.width)
}

// Message returns the message line text truncated to the line width.
func (s *StatusLine) Message() string {
	return runewidth.Truncate(s.message, s.width, "")
}

// Render draws the status bar at row and the message line at row+1.
func (s *StatusLine) Render(b backend.Backend, row int) {
	s.renderText(b, row, s.Bar(), s.barStyle)
	s.renderText(b, row+1, s.Message(), s.messageStyle)
}

// renderText draws text and clears the rest of the row in the given style.
func (s *StatusLine) renderText(b backend.Backend, row int, text string, style core.Style) {
	col := 0
	for _, r := range text {
		w := core.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > s.width {
			break
		}
		b.SetCell(col, row, core.NewStyledCell(r, style))
		col += w
	}
	b.Fill(core.RectFromSize(row, col, 1, s.width-col), core.Cell{Rune: ' ', Width: 1, Style: style})
}
