package buffer

import (
	"reflect"
	"testing"
)

func TestLoadDropsTrailingEmptyLine(t *testing.T) {
	doc := Load([]string{"a", "b", ""})
	if doc.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", doc.Len())
	}

	doc = FromText("one\ntwo\n")
	if !reflect.DeepEqual(doc.Lines(), []string{"one", "two"}) {
		t.Errorf("unexpected lines %q", doc.Lines())
	}

	// Only one trailing empty line is an artifact
	doc = FromText("one\n\n")
	if !reflect.DeepEqual(doc.Lines(), []string{"one", ""}) {
		t.Errorf("unexpected lines %q", doc.Lines())
	}

	if !FromText("").IsEmpty() {
		t.Error("empty text should give an empty document")
	}
	if doc.Dirty() != 0 {
		t.Errorf("loaded document should be clean, dirty=%d", doc.Dirty())
	}
}

func TestLoadStripsCarriageReturn(t *testing.T) {
	doc := FromText("a\r\nb\r\n")
	if !reflect.DeepEqual(doc.Lines(), []string{"a", "b"}) {
		t.Errorf("unexpected lines %q", doc.Lines())
	}
}

func TestDocumentRowVirtual(t *testing.T) {
	doc := Load([]string{"x"})

	if _, ok := doc.Row(0); !ok {
		t.Error("row 0 should exist")
	}
	if _, ok := doc.Row(1); ok {
		t.Error("row at Len is the virtual row and should not exist")
	}
	if _, ok := doc.Row(-1); ok {
		t.Error("negative row should not exist")
	}
	if doc.RowLen(1) != 0 {
		t.Errorf("virtual row length should be 0, got %d", doc.RowLen(1))
	}
}

func TestDocumentInsertRow(t *testing.T) {
	doc := Load([]string{"a", "c"})

	if !doc.InsertRow(1, "b") {
		t.Fatal("insert at 1 should succeed")
	}
	if !doc.InsertRow(3, "d") {
		t.Fatal("insert at Len should succeed")
	}
	if doc.InsertRow(10, "z") {
		t.Error("insert past Len should fail")
	}
	if !reflect.DeepEqual(doc.Lines(), []string{"a", "b", "c", "d"}) {
		t.Errorf("unexpected lines %q", doc.Lines())
	}
	if doc.Dirty() != 2 {
		t.Errorf("expected dirty 2, got %d", doc.Dirty())
	}
}

func TestDocumentDeleteRow(t *testing.T) {
	doc := Load([]string{"a", "b"})

	got, ok := doc.DeleteRow(0)
	if !ok || got != "a" {
		t.Errorf("DeleteRow(0) = %q, %v", got, ok)
	}
	if _, ok := doc.DeleteRow(1); ok {
		t.Error("DeleteRow past end should report nothing")
	}
	if doc.Dirty() != 1 {
		t.Errorf("expected dirty 1, got %d", doc.Dirty())
	}
	if !reflect.DeepEqual(doc.Lines(), []string{"b"}) {
		t.Errorf("unexpected lines %q", doc.Lines())
	}
}

func TestDocumentInsertRune(t *testing.T) {
	doc := New()

	pos := doc.InsertRune(Position{}, 'h')
	pos = doc.InsertRune(pos, 'i')
	if pos != (Position{X: 2, Y: 0}) {
		t.Errorf("unexpected cursor %v", pos)
	}
	if !reflect.DeepEqual(doc.Lines(), []string{"hi"}) {
		t.Errorf("unexpected lines %q", doc.Lines())
	}

	// Typing on the virtual row creates a new line
	pos = doc.InsertRune(Position{X: 0, Y: 1}, '!')
	if pos != (Position{X: 1, Y: 1}) {
		t.Errorf("unexpected cursor %v", pos)
	}
	if !reflect.DeepEqual(doc.Lines(), []string{"hi", "!"}) {
		t.Errorf("unexpected lines %q", doc.Lines())
	}
	if !doc.IsDirty() {
		t.Error("document should be dirty")
	}
}

func TestDocumentDeleteBefore(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		pos     Position
		want    []string
		wantPos Position
		changed bool
	}{
		{
			name:    "start of buffer",
			lines:   []string{"ab"},
			pos:     Position{X: 0, Y: 0},
			want:    []string{"ab"},
			wantPos: Position{X: 0, Y: 0},
		},
		{
			name:    "virtual row",
			lines:   []string{"ab"},
			pos:     Position{X: 0, Y: 1},
			want:    []string{"ab"},
			wantPos: Position{X: 0, Y: 1},
		},
		{
			name:    "intra-row",
			lines:   []string{"abc"},
			pos:     Position{X: 2, Y: 0},
			want:    []string{"ac"},
			wantPos: Position{X: 1, Y: 0},
			changed: true,
		},
		{
			name:    "join with previous row",
			lines:   []string{"hello", "world"},
			pos:     Position{X: 0, Y: 1},
			want:    []string{"helloworld"},
			wantPos: Position{X: 5, Y: 0},
			changed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Load(tt.lines)
			pos, changed := doc.DeleteBefore(tt.pos)

			if changed != tt.changed {
				t.Errorf("changed = %v, expected %v", changed, tt.changed)
			}
			if pos != tt.wantPos {
				t.Errorf("cursor = %v, expected %v", pos, tt.wantPos)
			}
			if !reflect.DeepEqual(doc.Lines(), tt.want) {
				t.Errorf("lines = %q, expected %q", doc.Lines(), tt.want)
			}
			if changed != doc.IsDirty() {
				t.Errorf("dirty = %d with changed = %v", doc.Dirty(), changed)
			}
		})
	}
}

func TestDocumentSplitLine(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		pos     Position
		want    []string
		wantPos Position
	}{
		{
			name:    "end of row",
			lines:   []string{"abc", "de"},
			pos:     Position{X: 3, Y: 0},
			want:    []string{"abc", "", "de"},
			wantPos: Position{X: 0, Y: 1},
		},
		{
			name:    "start of row",
			lines:   []string{"abc"},
			pos:     Position{X: 0, Y: 0},
			want:    []string{"", "abc"},
			wantPos: Position{X: 0, Y: 1},
		},
		{
			name:    "middle of row",
			lines:   []string{"abcd"},
			pos:     Position{X: 2, Y: 0},
			want:    []string{"ab", "cd"},
			wantPos: Position{X: 0, Y: 1},
		},
		{
			name:    "virtual row",
			lines:   []string{"a"},
			pos:     Position{X: 0, Y: 1},
			want:    []string{"a", ""},
			wantPos: Position{X: 0, Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Load(tt.lines)
			pos := doc.SplitLine(tt.pos)

			if pos != tt.wantPos {
				t.Errorf("cursor = %v, expected %v", pos, tt.wantPos)
			}
			if !reflect.DeepEqual(doc.Lines(), tt.want) {
				t.Errorf("lines = %q, expected %q", doc.Lines(), tt.want)
			}
			if !doc.IsDirty() {
				t.Error("split should mark the document dirty")
			}
		})
	}
}

func TestDocumentSerialize(t *testing.T) {
	doc := Load([]string{"a", "", "b\tc"})
	if got := doc.Serialize(); got != "a\n\nb\tc\n" {
		t.Errorf("Serialize() = %q", got)
	}

	if got := New().Serialize(); got != "" {
		t.Errorf("empty document should serialize to empty string, got %q", got)
	}

	// Serialize and reload is stable
	again := FromText(doc.Serialize())
	if !reflect.DeepEqual(again.Lines(), doc.Lines()) {
		t.Errorf("reload mismatch: %q vs %q", again.Lines(), doc.Lines())
	}
}

func TestDocumentMarkClean(t *testing.T) {
	doc := New()
	doc.InsertRune(Position{}, 'x')
	doc.MarkClean()
	if doc.IsDirty() {
		t.Error("document should be clean after MarkClean")
	}
}

func TestDocumentInvalidUTF8RoundTrip(t *testing.T) {
	const text = "caf\xe9\n\xff\xfeb\n"

	doc := FromText(text)
	if got := doc.Serialize(); got != text {
		t.Fatalf("Serialize() = %q, want %q", got, text)
	}
	if doc.RowLen(1) != 3 {
		t.Errorf("expected each stray byte to count as a character, got %d", doc.RowLen(1))
	}

	doc.InsertRune(Position{}, 'x')
	if got := doc.Serialize(); got != "xcaf\xe9\n\xff\xfeb\n" {
		t.Errorf("after insert Serialize() = %q", got)
	}

	// Joining rows keeps the bytes on both sides
	pos, ok := doc.DeleteBefore(Position{X: 0, Y: 1})
	if !ok || pos != (Position{X: 5, Y: 0}) {
		t.Fatalf("DeleteBefore = %v, %v", pos, ok)
	}
	if got := doc.Serialize(); got != "xcaf\xe9\xff\xfeb\n" {
		t.Errorf("after join Serialize() = %q", got)
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{X: 5, Y: 1}).String(); got != "(1:5)" {
		t.Errorf("unexpected String() %q", got)
	}
}
