package search

import (
	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// Direction is the direction a scan steps through the rows.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns the name of the direction.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Event is the kind of keystroke delivered to Step.
type Event int

const (
	// EventInput means the query was edited.
	EventInput Event = iota
	// EventConfirm ends the search leaving the cursor on the match.
	EventConfirm
	// EventCancel ends the search and restores the saved cursor.
	EventCancel
	// EventNext steps to the following match.
	EventNext
	// EventPrevious steps to the preceding match.
	EventPrevious
)

// Match is a search hit.
type Match struct {
	Row    int
	Column int
}

// View is the cursor and scroll state a search moves and restores.
// *viewport.Viewport implements it.
type View interface {
	Document() *buffer.Document
	SetCursor(pos buffer.Position)
	GetScrollState() viewport.ScrollState
	SetScrollState(state viewport.ScrollState)
	RevealAtTop()
}

// Session holds the state of one interactive search over the document shown
// by a view.
type Session struct {
	view View

	lastMatch int
	hasMatch  bool
	direction Direction

	saved  viewport.ScrollState
	active bool
}

// NewSession creates a search session for the given view.
func NewSession(view View) *Session {
	return &Session{view: view}
}

// Begin snapshots the cursor and scroll offsets for restore on cancel and
// clears any previous match.
func (s *Session) Begin() {
	s.saved = s.view.GetScrollState()
	s.active = true
	s.reset()
}

// Active returns true between Begin and a confirm or cancel.
func (s *Session) Active() bool {
	return s.active
}

// Direction returns the current scan direction.
func (s *Session) Direction() Direction {
	return s.direction
}

func (s *Session) reset() {
	s.lastMatch = 0
	s.hasMatch = false
	s.direction = Forward
}

// Step handles one keystroke of the search prompt with the current query.
// It returns the match the cursor was moved to, if any.
func (s *Session) Step(query string, ev Event) (Match, bool) {
	switch ev {
	case EventConfirm:
		s.reset()
		s.active = false
		return Match{}, false
	case EventCancel:
		s.reset()
		s.active = false
		s.view.SetScrollState(s.saved)
		return Match{}, false
	case EventNext:
		s.direction = Forward
	case EventPrevious:
		s.direction = Backward
	default:
		s.reset()
	}

	m, ok := s.scan(query)
	if !ok {
		return Match{}, false
	}

	s.lastMatch = m.Row
	s.hasMatch = true
	s.view.SetCursor(buffer.Position{X: m.Column, Y: m.Row})
	s.view.RevealAtTop()
	return m, true
}

// scan visits at most every row once, starting after the last match (or
// from the sentinel past the last row) and wrapping at both ends.
func (s *Session) scan(query string) (Match, bool) {
	doc := s.view.Document()
	n := doc.Len()
	if query == "" || n == 0 {
		return Match{}, false
	}

	current := n
	if s.hasMatch {
		current = s.lastMatch
	}

	for range n {
		if s.direction == Forward {
			current++
			if current >= n {
				current = 0
			}
		} else {
			current--
			if current < 0 {
				current = n - 1
			}
		}

		row, _ := doc.Row(current)
		if col := row.Index(query); col >= 0 {
			return Match{Row: current, Column: col}, true
		}
	}
	return Match{}, false
}
