package renderer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/core"
	"github.com/dshills/kilo/internal/renderer/statusline"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// EmptyRowMarker is drawn in column 0 of screen rows past the end of the
// document.
const EmptyRowMarker = "~"

// Options configures the renderer.
type Options struct {
	// ShowWelcome draws the welcome banner over an empty document.
	ShowWelcome bool

	// Version is shown in the welcome banner.
	Version string

	// Styles
	TextStyle    core.Style
	StatusStyle  core.Style
	MessageStyle core.Style
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowWelcome:  true,
		Version:      "0.0.1",
		TextStyle:    core.DefaultStyle(),
		StatusStyle:  statusline.DefaultBarStyle(),
		MessageStyle: core.DefaultStyle(),
	}
}

// Frame is the per-render state that does not live in the viewport.
type Frame struct {
	// Filename is shown in the status bar; empty means unnamed.
	Filename string

	// Message is the transient status message, already expired by the
	// caller when stale.
	Message string
}

// Renderer paints a viewport, the status bar and the message line onto a
// backend. It keeps no screen state of its own; every call to Render
// repaints the full frame.
type Renderer struct {
	opts    Options
	backend backend.Backend
	status  *statusline.StatusLine
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		opts:    opts,
		backend: b,
		status:  statusline.New(opts.StatusStyle, opts.MessageStyle),
	}
}

// Render scrolls the viewport to keep the cursor visible and paints one
// frame.
func (r *Renderer) Render(v *viewport.Viewport, f Frame) {
	v.Scroll()

	doc := v.Document()
	width, height := v.Width(), v.Height()

	r.backend.HideCursor()

	for y := range height {
		var text string
		row, ok := doc.Row(v.ScreenRowToRow(y))
		switch {
		case ok:
			text = row.RenderSlice(v.ColOffset(), width)
		case r.opts.ShowWelcome && doc.IsEmpty() && y == height/3:
			text = WelcomeLine(r.opts.Version, width)
		default:
			text = EmptyRowMarker
		}
		r.drawRow(y, width, text)
	}

	r.status.Resize(width)
	r.status.SetFilename(f.Filename)
	r.status.SetModified(doc.IsDirty())
	r.status.SetTotalLines(doc.Len())
	r.status.SetRight(v.PercentLabel())
	r.status.SetMessage(f.Message)
	r.status.Render(r.backend, height)

	col, row := v.ScreenCursor()
	r.backend.ShowCursor(col, row)
	r.backend.Show()
}

// drawRow draws one rune per cell so that screen columns line up with
// render columns, then clears the rest of the row.
func (r *Renderer) drawRow(y, width int, text string) {
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		r.backend.SetCell(x, y, core.NewStyledCell(ch, r.opts.TextStyle))
		x++
	}
	r.backend.Fill(core.RectFromSize(y, x, 1, width-x), core.EmptyCell())
}

// WelcomeLine returns the welcome banner centered in width columns, with
// the empty row marker in column 0 when there is room for it.
func WelcomeLine(version string, width int) string {
	welcome := runewidth.Truncate(fmt.Sprintf("Kilo Editor -- version %s", version), width, "")

	padding := (width - runewidth.StringWidth(welcome)) / 2
	if padding <= 0 {
		return welcome
	}
	return EmptyRowMarker + strings.Repeat(" ", padding-1) + welcome
}
