package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/core"
)

func TestLeft(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		lines    int
		modified bool
		want     string
	}{
		{"unnamed", "", 0, false, "[No Name] - 0 lines"},
		{"named", "main.go", 42, false, "main.go - 42 lines"},
		{"modified", "main.go", 3, true, "main.go - 3 lines (modified)"},
		{"long name", "a_really_long_file_name.txt", 1, false, "a_really_long_file_n - 1 lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultBarStyle(), core.DefaultStyle())
			s.SetFilename(tt.filename)
			s.SetTotalLines(tt.lines)
			s.SetModified(tt.modified)
			if got := s.Left(); got != tt.want {
				t.Errorf("Left() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestBarRightAligned(t *testing.T) {
	s := New(DefaultBarStyle(), core.DefaultStyle())
	s.SetFilename("a.txt")
	s.SetTotalLines(10)
	s.SetRight("TOP")
	s.Resize(30)

	bar := s.Bar()
	if len(bar) != 30 {
		t.Fatalf("bar should fill the width, got %d: %q", len(bar), bar)
	}
	if !strings.HasPrefix(bar, "a.txt - 10 lines") {
		t.Errorf("unexpected left part %q", bar)
	}
	if !strings.HasSuffix(bar, "TOP") {
		t.Errorf("right part should be flush right: %q", bar)
	}
}

func TestBarNarrow(t *testing.T) {
	s := New(DefaultBarStyle(), core.DefaultStyle())
	s.SetFilename("a.txt")
	s.SetTotalLines(10)
	s.SetRight("51,1 50%")
	s.Resize(12)

	// Left part is truncated and the right part dropped
	if got := s.Bar(); got != "a.txt - 10 l" {
		t.Errorf("unexpected bar %q", got)
	}

	s.Resize(0)
	if got := s.Bar(); got != "" {
		t.Errorf("zero width bar should be empty, got %q", got)
	}
}

func TestMessageTruncated(t *testing.T) {
	s := New(DefaultBarStyle(), core.DefaultStyle())
	s.Resize(5)
	s.SetMessage("hello world")
	if got := s.Message(); got != "hello" {
		t.Errorf("expected truncated message, got %q", got)
	}
	s.SetMessage("")
	if got := s.Message(); got != "" {
		t.Errorf("expected empty message, got %q", got)
	}
}

func TestRender(t *testing.T) {
	b := backend.NewNullBackend(20, 4)
	b.Init()

	s := New(DefaultBarStyle(), core.DefaultStyle())
	s.SetFilename("x")
	s.SetTotalLines(2)
	s.SetRight("All")
	s.SetMessage("saved")
	s.Resize(20)
	s.Render(b, 2)

	if got := b.Line(2); got != "x - 2 lines      All" {
		t.Errorf("unexpected bar row %q", got)
	}
	if got := b.Line(3); got != "saved               " {
		t.Errorf("unexpected message row %q", got)
	}
	if !b.GetCell(19, 2).Style.Equals(DefaultBarStyle()) {
		t.Error("status bar should be drawn in the bar style")
	}
	if !b.GetCell(10, 3).Style.Equals(core.DefaultStyle()) {
		t.Error("message line should be drawn in the message style")
	}
}
