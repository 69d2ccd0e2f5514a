package editor

import (
	"github.com/dshills/slate/internal/engine/buffer"
	"github.com/dshills/slate/internal/engine/cursor"
	"github.com/dshills/slate/internal/terminal"
)

// searchSession is the incremental-search prompt observer. Every
// keystroke re-runs the search from the current cursor; Right and
// Down first step past the current match so repeated presses walk
// forward through the matches.
type searchSession struct {
	e *Editor
}

func (s *searchSession) PromptKey(k terminal.KeyEvent, query string, dir buffer.SearchDirection) {
	e := s.e

	moved := false
	if k.Key == terminal.KeyRight || k.Key == terminal.KeyDown {
		e.cur.Move(cursor.Right, e.buf, e.height)
		moved = true
	}

	if pos, ok := e.buf.Find(query, e.cur.Position(), dir); ok {
		e.cur.SetPosition(pos)
		e.cur.Scroll(e.width, e.textHeight())
	} else if moved {
		e.cur.Move(cursor.Left, e.buf, e.height)
	}
}

// search runs the incremental search prompt. Aborting restores the
// cursor and viewport to where they were before the prompt began.
func (e *Editor) search() {
	saved := e.cur.Position()

	if _, ok := e.runPromptMode("Search: ", promptSearch, &searchSession{e: e}); !ok {
		e.setStatus("Find aborted")
		e.cur.SetPosition(saved)
		e.cur.Scroll(e.width, e.textHeight())
	}
}
