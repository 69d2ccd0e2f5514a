// Package terminal abstracts the screen and keyboard behind a small
// backend interface, with a tcell implementation for real terminals
// and an in-memory implementation for tests.
package terminal

import (
	"errors"
	"time"
)

// ErrClosed is reported when the event stream ends because the
// terminal went away. The editor treats it as fatal.
var ErrClosed = errors.New("terminal event stream closed")

// Color is a 24-bit RGB color. The zero value means the terminal
// default.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB creates an explicit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return !c.set
}

// Backend is the terminal collaborator the editor draws through.
//
// Init acquires the terminal and switches it to raw mode; Fini
// restores cooked mode and must run on every exit path. Drawing is
// cursor-relative: MoveCursor positions the write head, Print writes
// at it and advances by display width. Nothing reaches the screen
// until Flush.
type Backend interface {
	Init() error
	Fini()

	Size() (width, height int)

	MoveCursor(x, y int)
	HideCursor()
	ShowCursor()

	Print(s string)
	ClearLine()
	ClearScreen()

	SetColors(fg, bg Color)
	ResetColors()

	Flush()

	// PollEvent blocks until a key or resize event arrives or the
	// timeout elapses. It returns nil on timeout and ClosedEvent
	// when the terminal is gone.
	PollEvent(timeout time.Duration) Event
}
