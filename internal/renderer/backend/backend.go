// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"errors"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer/core"
)

// ErrClosed is reported by PollEvent once the backend has been shut down.
var ErrClosed = errors.New("backend closed")

// ErrNoEvents is reported by the null backend when its queue is empty.
var ErrNoEvents = errors.New("no queued events")

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventError
)

// String returns the name of the event type.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventError:
		return "error"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Resize event fields
	Width, Height int

	// Err is set for EventError.
	Err error
}

// KeyEvent wraps a key event.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use and, for a real terminal,
	// switches it into raw mode. Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the terminal.
	GetCell(x, y int) core.Cell

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}

// NullBackend is an in-memory backend for testing. Its PollEvent never
// blocks: with nothing queued it reports ErrNoEvents.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	initialized   bool
	shows         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.initialized = false
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(rect.Top, 0); y < rect.Bottom && y < b.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < b.width; x++ {
			b.cells[y][x] = cell
		}
	}
}

func (b *NullBackend) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	default:
		return Event{Type: EventError, Err: ErrNoEvents}
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// PostKeys queues a key event for each given key.
func (b *NullBackend) PostKeys(events ...key.Event) {
	for _, ev := range events {
		b.PostEvent(KeyEvent(ev))
	}
}

// PostString queues one rune event per character of s.
func (b *NullBackend) PostString(s string) {
	for _, r := range s {
		b.PostEvent(KeyEvent(key.NewRuneEvent(r, key.ModNone)))
	}
}

// Initialized reports whether Init has been called without a matching Shutdown.
func (b *NullBackend) Initialized() bool {
	return b.initialized
}

// ShowCount returns how many times Show has been called.
func (b *NullBackend) ShowCount() int {
	return b.shows
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Line returns the runes of screen row y as a string, for testing.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		runes = append(runes, c.Rune)
	}
	return string(runes)
}

// Resize simulates a terminal resize and queues the matching event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
