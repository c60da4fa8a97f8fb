// Package renderer paints the editor screen.
//
// A frame is the text pane followed by the status bar and the message line:
//
//	┌─────────────────────────────────────────┐
//	│ document rows from the viewport offsets │
//	│ ~                                       │
//	│ ~      Kilo Editor -- version 0.0.1     │
//	├─────────────────────────────────────────┤
//	│ name - N lines (modified)      51,1 50% │
//	│ message                                 │
//	└─────────────────────────────────────────┘
//
// Drawing goes through the backend abstraction, so the same paint pass
// targets a tcell terminal or the in-memory NullBackend used by tests.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	r.Render(view, renderer.Frame{Filename: "notes.txt"})
package renderer
