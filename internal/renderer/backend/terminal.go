package backend

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
// Init puts the terminal into raw mode and Shutdown restores it.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
	active bool
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.active = true
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return
	}
	t.active = false
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Rune:  mainc,
		Width: core.RuneWidth(mainc),
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

func (t *Terminal) PostEvent(event Event) {
	// Only key events can be posted back into tcell
	if event.Type == EventKey {
		k, ch, mod := convertToTcellKey(event.Key)
		_ = t.screen.PostEvent(tcell.NewEventKey(k, ch, mod)) // best-effort; event queue may be full
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

func convertColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
		Attributes: core.AttrNone,
	}

	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= core.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= core.AttrDim
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= core.AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= core.AttrReverse
	}

	return s
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}

	// Check if it's a palette color
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}

	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts tcell events to our Event type. A nil event means
// the screen has been finalized.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventError, Err: ErrClosed}

	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return KeyEvent(k)

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventError:
		return Event{Type: EventError, Err: errors.New(e.Error())}

	default:
		return Event{Type: EventNone}
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// convertKey converts a tcell key event. Control letters arrive from tcell
// as their own key codes and are normalized to a rune plus ModCtrl.
// Backspace, Tab, Enter and Escape share codes with Ctrl-H, Ctrl-I, Ctrl-M
// and Ctrl-[ and are reported as the named key.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mod := convertMod(e.Modifiers())

	if k, ok := specialKeys[e.Key()]; ok {
		return key.NewSpecialEvent(k, mod&^key.ModCtrl), true
	}

	switch k := e.Key(); {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mod), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		ev := key.Ctrl('a' + rune(k-tcell.KeyCtrlA))
		ev.Mod = ev.Mod.With(mod)
		return ev, true
	default:
		return key.Event{}, false
	}
}

// convertToTcellKey converts a key event back to tcell's representation.
func convertToTcellKey(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	mod := convertToTcellMod(ev.Mod)
	if ev.Key == key.KeyRune {
		if ev.Mod.Has(key.ModCtrl) && ev.Rune >= 'a' && ev.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(ev.Rune-'a'), 0, mod
		}
		return tcell.KeyRune, ev.Rune, mod
	}
	for tk, k := range specialKeys {
		if k == ev.Key && tk != tcell.KeyBackspace {
			return tk, 0, mod
		}
	}
	return tcell.KeyRune, ev.Rune, mod
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	result := key.ModNone
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.ModAlt
	}
	return result
}

// convertToTcellMod converts our Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(key.ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(key.ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(key.ModAlt) {
		result |= tcell.ModAlt
	}
	return result
}
