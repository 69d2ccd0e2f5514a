package terminal

import "github.com/gdamore/tcell/v2"

// Key identifies a named key. Printable characters arrive as KeyRune
// with the Rune field set.
type Key uint8

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
)

// Event is a terminal input event: a KeyEvent, a ResizeEvent, or a
// ClosedEvent. PollEvent returns nil on timeout.
type Event interface {
	event()
}

// KeyEvent is a single key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Ctrl bool
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

// ClosedEvent reports that the terminal event stream ended.
type ClosedEvent struct{}

func (KeyEvent) event()    {}
func (ResizeEvent) event() {}
func (ClosedEvent) event() {}

// convertEvent maps a tcell event into the backend event model.
// Events the editor does not consume (mouse, paste) map to nil.
func convertEvent(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent{Width: w, Height: h}
	case *tcell.EventKey:
		return convertKey(ev)
	}
	return nil
}

func convertKey(ev *tcell.EventKey) Event {
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp, Ctrl: ctrl}
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown, Ctrl: ctrl}
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft, Ctrl: ctrl}
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight, Ctrl: ctrl}
	case tcell.KeyHome:
		return KeyEvent{Key: KeyHome, Ctrl: ctrl}
	case tcell.KeyEnd:
		return KeyEvent{Key: KeyEnd, Ctrl: ctrl}
	case tcell.KeyPgUp:
		return KeyEvent{Key: KeyPageUp, Ctrl: ctrl}
	case tcell.KeyPgDn:
		return KeyEvent{Key: KeyPageDown, Ctrl: ctrl}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace, Ctrl: ctrl}
	case tcell.KeyDelete:
		return KeyEvent{Key: KeyDelete, Ctrl: ctrl}
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter, Ctrl: ctrl}
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape, Ctrl: ctrl}
	case tcell.KeyTab:
		return KeyEvent{Key: KeyRune, Rune: '\t'}
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Ctrl: ctrl}
	}

	// Ctrl+letter combinations arrive as dedicated control codes.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyEvent{Key: KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Ctrl: true}
	}
	return nil
}
