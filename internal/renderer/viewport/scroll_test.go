package viewport

import (
	"testing"

	"github.com/dshills/kilo/internal/engine/buffer"
)

func TestScrollVertical(t *testing.T) {
	doc := buffer.Load(numberedLines(50))
	v := New(doc, 80, 10)

	v.SetCursor(buffer.Position{Y: 25})
	v.Scroll()
	if v.RowOffset() != 16 {
		t.Errorf("expected row offset 16, got %d", v.RowOffset())
	}

	v.SetCursor(buffer.Position{Y: 3})
	v.Scroll()
	if v.RowOffset() != 3 {
		t.Errorf("expected row offset 3, got %d", v.RowOffset())
	}
}

func TestScrollHorizontalUsesRenderColumn(t *testing.T) {
	doc := buffer.Load([]string{"\t\t\tx"})
	v := New(doc, 10, 5)

	v.SetCursor(buffer.Position{X: 3})
	v.Scroll()
	if v.RenderX() != 24 {
		t.Errorf("expected render column 24, got %d", v.RenderX())
	}
	if v.ColOffset() != 15 {
		t.Errorf("expected col offset 15, got %d", v.ColOffset())
	}

	col, row := v.ScreenCursor()
	if col != 9 || row != 0 {
		t.Errorf("expected screen cursor (9, 0), got (%d, %d)", col, row)
	}

	v.Home()
	v.Scroll()
	if v.ColOffset() != 0 {
		t.Errorf("expected col offset 0, got %d", v.ColOffset())
	}
}

func TestScrollEmptyDocument(t *testing.T) {
	v := New(buffer.New(), 10, 5)
	v.SetScrollState(ScrollState{RowOffset: 7, ColOffset: 4})

	v.Scroll()
	if v.RowOffset() != 0 || v.ColOffset() != 0 || v.RenderX() != 0 {
		t.Errorf("expected zero offsets, got row=%d col=%d rx=%d", v.RowOffset(), v.ColOffset(), v.RenderX())
	}
}

func TestScreenCursorSaturates(t *testing.T) {
	doc := buffer.Load([]string{"abc", "def"})
	v := New(doc, 10, 5)
	v.SetScrollState(ScrollState{Cursor: buffer.Position{}, RowOffset: 1, ColOffset: 2})

	// Offsets are ahead of the cursor until the next Scroll
	col, row := v.ScreenCursor()
	if col != 0 || row != 0 {
		t.Errorf("expected (0, 0), got (%d, %d)", col, row)
	}
}

func TestScrollStateRoundTrip(t *testing.T) {
	doc := buffer.Load(numberedLines(50))
	v := New(doc, 5, 10)
	v.SetCursor(buffer.Position{X: 6, Y: 30})
	v.Scroll()

	saved := v.GetScrollState()

	v.SetCursor(buffer.Position{Y: 2})
	v.Scroll()
	v.SetScrollState(saved)

	if v.GetScrollState() != saved {
		t.Errorf("state not restored: %+v vs %+v", v.GetScrollState(), saved)
	}
}

func TestRevealAtTop(t *testing.T) {
	doc := buffer.Load(numberedLines(50))
	v := New(doc, 80, 10)

	v.SetCursor(buffer.Position{Y: 30})
	v.RevealAtTop()
	v.Scroll()
	if v.RowOffset() != 30 {
		t.Errorf("expected row 30 at top, got %d", v.RowOffset())
	}

	// A match already on screen is moved to the top as well
	v.SetCursor(buffer.Position{Y: 32})
	v.RevealAtTop()
	v.Scroll()
	if v.RowOffset() != 32 {
		t.Errorf("expected row 32 at top, got %d", v.RowOffset())
	}
}

func TestPercentLabel(t *testing.T) {
	v := New(buffer.New(), 80, 10)
	if got := v.PercentLabel(); got != "All" {
		t.Errorf("expected All, got %q", got)
	}

	v.SetDocument(buffer.Load(numberedLines(100)))

	tests := []struct {
		pos  buffer.Position
		want string
	}{
		{buffer.Position{Y: 0}, "TOP"},
		{buffer.Position{Y: 4}, "TOP"},
		{buffer.Position{Y: 5, X: 2}, "6,3 5%"},
		{buffer.Position{Y: 50}, "51,1 50%"},
		{buffer.Position{Y: 94}, "95,1 94%"},
		{buffer.Position{Y: 95}, "BOT"},
		{buffer.Position{Y: 100}, "BOT"},
	}

	for _, tt := range tests {
		v.SetCursor(tt.pos)
		if got := v.PercentLabel(); got != tt.want {
			t.Errorf("PercentLabel at %v = %q, expected %q", tt.pos, got, tt.want)
		}
	}
}
