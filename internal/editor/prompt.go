package editor

import (
	"github.com/dshills/slate/internal/engine/buffer"
	"github.com/dshills/slate/internal/terminal"
)

// promptMode distinguishes plain text prompts from the incremental
// search prompt, which additionally tracks a search direction.
type promptMode uint8

const (
	promptPlain promptMode = iota
	promptSearch
)

// PromptObserver receives every keystroke of a modal prompt along
// with the input typed so far and, for search prompts, the direction
// the keystroke selected.
type PromptObserver interface {
	PromptKey(k terminal.KeyEvent, input string, dir buffer.SearchDirection)
}

// prompt is the modal input state machine. Each keystroke drives one
// transition; Escape discards the partial input, Enter accepts it.
type prompt struct {
	label    string
	input    []rune
	mode     promptMode
	lastDir  buffer.SearchDirection
	done     bool
	accepted bool
}

func newPrompt(label string, mode promptMode) *prompt {
	return &prompt{label: label, mode: mode, lastDir: buffer.SearchForward}
}

func (p *prompt) step(k terminal.KeyEvent) {
	switch {
	case k.Key == terminal.KeyEnter || (k.Ctrl && k.Rune == 'j'):
		p.done = true
		p.accepted = true
	case k.Key == terminal.KeyEscape:
		p.input = p.input[:0]
		p.done = true
	case k.Key == terminal.KeyBackspace:
		if n := len(p.input); n > 0 {
			p.input = p.input[:n-1]
		}
	case k.Key == terminal.KeyRune && !k.Ctrl:
		p.input = append(p.input, k.Rune)
	}

	if p.mode == promptSearch {
		switch k.Key {
		case terminal.KeyRight, terminal.KeyDown:
			p.lastDir = buffer.SearchForward
		case terminal.KeyUp, terminal.KeyLeft:
			p.lastDir = buffer.SearchBackward
		default:
			p.lastDir = buffer.SearchForward
		}
	}
}

// runPrompt drives a modal prompt until accept or abort. It returns
// the typed input and whether the prompt was accepted with non-empty
// input. Buffer state is untouched by the prompt itself; observers
// may move the cursor and the caller restores it on abort.
func (e *Editor) runPrompt(label string, obs PromptObserver) (string, bool) {
	return e.runPromptMode(label, promptPlain, obs)
}

func (e *Editor) runPromptMode(label string, mode promptMode, obs PromptObserver) (string, bool) {
	p := newPrompt(label, mode)

	for !p.done {
		e.setStatus(p.label + string(p.input))
		e.refresh()

		switch ev := e.term.PollEvent(e.cfg.PollInterval()).(type) {
		case nil:
			continue
		case terminal.ClosedEvent:
			e.closed = true
			return "", false
		case terminal.ResizeEvent:
			e.width, e.height = ev.Width, ev.Height
		case terminal.KeyEvent:
			p.step(ev)
			if obs != nil {
				obs.PromptKey(ev, string(p.input), p.lastDir)
			}
		}
	}

	e.setStatus("")
	if !p.accepted || len(p.input) == 0 {
		return "", false
	}
	return string(p.input), true
}
