package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

const maxStatusNameWidth = 20

// refresh redraws the whole screen: text rows, status bar, message
// bar, and the cursor. When the session is quitting it clears the
// screen instead.
func (e *Editor) refresh() {
	e.term.HideCursor()
	e.term.MoveCursor(0, 0)

	if e.quitting {
		e.term.ClearScreen()
		e.term.ShowCursor()
		e.term.Flush()
		return
	}

	e.drawRows()
	e.drawStatusBar()
	e.drawMessageBar()
	if e.buf.IsEmpty() {
		e.drawWelcome()
	}

	x, y := e.cur.ScreenPosition()
	e.term.MoveCursor(x, y)
	e.term.ShowCursor()
	e.term.Flush()
}

// drawRows renders the visible window of the buffer. Rows past the
// end of the buffer get a tilde marker.
func (e *Editor) drawRows() {
	offset := e.cur.Offset()
	for row := 0; row < e.textHeight(); row++ {
		e.term.MoveCursor(0, row)
		e.term.ClearLine()

		ln, ok := e.buf.Line(row + offset.Y)
		if !ok {
			e.term.Print("~")
			continue
		}
		e.term.Print(ln.Render(offset.X, offset.X+e.width))
	}
}

func (e *Editor) drawStatusBar() {
	if e.height < 2 {
		return
	}

	name := e.buf.Path()
	if name == "" {
		name = "[No Name]"
	}
	name = runewidth.Truncate(name, maxStatusNameWidth, "")

	status := fmt.Sprintf("%s -- %d lines", name, e.buf.LineCount())
	if e.buf.IsDirty() {
		status += " (modified)"
	}

	pos := e.cur.Position()
	indicator := fmt.Sprintf("%d/%d", pos.Y, pos.X)

	if pad := e.width - runewidth.StringWidth(status) - runewidth.StringWidth(indicator); pad > 0 {
		status += strings.Repeat(" ", pad)
	}
	status = runewidth.Truncate(status+indicator, e.width, "")

	e.term.MoveCursor(0, e.height-2)
	e.term.SetColors(e.statusFG, e.statusBG)
	e.term.Print(status)
	e.term.ResetColors()
}

func (e *Editor) drawMessageBar() {
	if e.height < 1 {
		return
	}
	e.term.MoveCursor(0, e.height-1)
	e.term.ClearLine()
	if time.Since(e.status.at) < e.cfg.StatusMessageTTL() {
		e.term.Print(runewidth.Truncate(e.status.text, e.width, ""))
	}
}

// drawWelcome centers a version banner on an empty buffer.
func (e *Editor) drawWelcome() {
	message := runewidth.Truncate(
		fmt.Sprintf("Slate editor -- version %s", Version), e.width, "")
	x := (e.width - runewidth.StringWidth(message)) / 2
	if x < 0 {
		x = 0
	}
	e.term.MoveCursor(x, e.height/2)
	e.term.Print(message)
	e.term.MoveCursor(0, 0)
}
