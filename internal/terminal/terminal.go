package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	x, y  int
	style tcell.Style
}

// NewTerminal creates a terminal backend. Init must be called before
// any other method.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, style: tcell.StyleDefault}, nil
}

// Init switches the terminal to raw mode and starts the event pump.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.events = make(chan tcell.Event, 16)
	t.quit = make(chan struct{})
	go t.screen.ChannelEvents(t.events, t.quit)
	return nil
}

// Fini restores cooked mode. Safe to call after a failed Init.
func (t *Terminal) Fini() {
	if t.quit != nil {
		close(t.quit)
		t.quit = nil
	}
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) MoveCursor(x, y int) {
	t.x, t.y = x, y
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) ShowCursor() {
	t.screen.ShowCursor(t.x, t.y)
}

// Print writes s at the write head one grapheme cluster per cell
// group, advancing by display width. Wide clusters occupy two cells;
// output never wraps past the right edge.
func (t *Terminal) Print(s string) {
	width, _ := t.screen.Size()
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if t.x >= width {
			return
		}
		runes := g.Runes()
		t.screen.SetContent(t.x, t.y, runes[0], runes[1:], t.style)
		adv := runewidth.StringWidth(g.Str())
		if adv < 1 {
			adv = 1
		}
		t.x += adv
	}
}

func (t *Terminal) ClearLine() {
	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, t.y, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Terminal) ClearScreen() {
	t.screen.Clear()
}

func (t *Terminal) SetColors(fg, bg Color) {
	t.style = tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))
}

func (t *Terminal) ResetColors() {
	t.style = tcell.StyleDefault
}

func (t *Terminal) Flush() {
	t.screen.Show()
}

// PollEvent waits for the next input event. It returns nil when the
// timeout elapses and ClosedEvent when the screen is finalized.
func (t *Terminal) PollEvent(timeout time.Duration) Event {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			return ClosedEvent{}
		}
		return convertEvent(ev)
	case <-timer.C:
		return nil
	}
}

func convertColor(c Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
