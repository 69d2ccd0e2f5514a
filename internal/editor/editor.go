// Package editor wires the buffer, cursor controller, and terminal
// backend into an interactive session.
//
// The session is single-threaded and event-driven: exactly one key or
// resize event is handled, and its redraw completed, before the next
// is accepted. The input wait blocks with a bounded poll timeout so
// resize notifications and the message-bar TTL stay responsive.
package editor

import (
	"fmt"
	"time"

	"github.com/dshills/slate/internal/config"
	"github.com/dshills/slate/internal/engine/buffer"
	"github.com/dshills/slate/internal/engine/cursor"
	"github.com/dshills/slate/internal/logging"
	"github.com/dshills/slate/internal/plugin"
	"github.com/dshills/slate/internal/terminal"
	"github.com/dshills/slate/internal/watch"
)

// Version is the release string shown on the welcome line. Set via
// ldflags at build time.
var Version = "dev"

// Options configures a session.
type Options struct {
	// Path is the file to open. Empty opens an unnamed buffer. An
	// unreadable file degrades to an empty buffer with a transient
	// error message rather than a failed start.
	Path string

	Config  config.Config
	Logger  *logging.Logger
	Backend terminal.Backend

	// DisableWatch turns off the external-modification watcher.
	DisableWatch bool
}

type statusMessage struct {
	text string
	at   time.Time
}

// Editor owns one buffer and its cursor, viewport, and prompt state.
type Editor struct {
	buf     *buffer.Buffer
	cur     *cursor.Controller
	term    terminal.Backend
	cfg     config.Config
	log     *logging.Logger
	plugins *plugin.Host
	watcher *watch.Watcher

	width  int
	height int

	status        statusMessage
	quitRemaining int
	quitting      bool
	closed        bool
	watchDisabled bool

	statusFG terminal.Color
	statusBG terminal.Color
}

// New creates a session over opts.Backend. The backend must already
// be initialized.
func New(opts Options) *Editor {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	e := &Editor{
		cur:           cursor.New(),
		term:          opts.Backend,
		cfg:           opts.Config,
		log:           log,
		quitRemaining: opts.Config.QuitConfirmations,
		watchDisabled: opts.DisableWatch,
	}
	e.width, e.height = e.term.Size()

	fg, bg, err := opts.Config.Theme.Colors()
	if err != nil {
		log.Warn("theme: %v", err)
	}
	e.statusFG, e.statusBG = fg, bg

	e.setStatus("HELP: Ctrl-S = save | Ctrl-F = find | Ctrl-C = quit")

	if opts.Path == "" {
		e.buf = buffer.New()
		return e
	}

	buf, err := buffer.Open(opts.Path)
	if err != nil {
		log.Error("open: %v", err)
		e.setStatus(fmt.Sprintf("ERR: Could not open file %s", opts.Path))
		e.buf = buffer.New()
		return e
	}
	e.buf = buf

	if !opts.DisableWatch {
		e.startWatcher()
	}
	return e
}

// SetPlugins attaches the user-script host. Must be called before
// Run.
func (e *Editor) SetPlugins(h *plugin.Host) {
	e.plugins = h
}

// Buffer exposes the underlying buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor exposes the cursor controller.
func (e *Editor) Cursor() *cursor.Controller {
	return e.cur
}

// Status implements plugin.API: it shows a transient message.
func (e *Editor) Status(msg string) {
	e.setStatus(msg)
}

// Log implements plugin.API.
func (e *Editor) Log(msg string) {
	e.log.Info("plugin: %s", msg)
}

// Close releases the watcher and the plugin host. It does not touch
// the backend; the owner of the backend restores the terminal.
func (e *Editor) Close() {
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
	e.plugins.Close()
}

// Run drives the session until quit or terminal failure. A clean quit
// returns nil.
func (e *Editor) Run() error {
	if path := e.buf.Path(); path != "" {
		e.hook(e.plugins.OnOpen(path))
	}

	e.refresh()
	for !e.quitting {
		e.drainWatcher()

		ev := e.term.PollEvent(e.cfg.PollInterval())
		switch ev := ev.(type) {
		case nil:
			// Timeout tick: the message bar may have expired.
			e.redrawMessageBar()
			continue
		case terminal.ClosedEvent:
			return terminal.ErrClosed
		case terminal.ResizeEvent:
			e.width, e.height = ev.Width, ev.Height
		case terminal.KeyEvent:
			e.handleKey(ev)
			if e.closed {
				return terminal.ErrClosed
			}
		}
		e.refresh()
	}

	e.refresh()
	return nil
}

func (e *Editor) handleKey(k terminal.KeyEvent) {
	switch {
	case k.Key == terminal.KeyEnter || (k.Ctrl && k.Rune == 'j'):
		e.buf.Insert(e.cur.Position(), '\n')
		e.cur.Move(cursor.Right, e.buf, e.height)

	case k.Ctrl && (k.Rune == 'c' || k.Rune == 'q'):
		e.requestQuit()
		return

	case k.Ctrl && k.Rune == 's':
		e.save()

	case k.Ctrl && k.Rune == 'f':
		e.search()

	case k.Ctrl && k.Key == terminal.KeyHome:
		e.cur.Move(cursor.DocumentHome, e.buf, e.height)

	case k.Ctrl && k.Key == terminal.KeyEnd:
		e.cur.Move(cursor.DocumentEnd, e.buf, e.height)

	case k.Key == terminal.KeyBackspace:
		if pos := e.cur.Position(); pos.X != 0 || pos.Y != 0 {
			e.cur.Move(cursor.Left, e.buf, e.height)
			e.buf.Delete(e.cur.Position())
		}

	case k.Key == terminal.KeyDelete:
		e.buf.Delete(e.cur.Position())

	case k.Key == terminal.KeyRune && !k.Ctrl:
		e.buf.Insert(e.cur.Position(), k.Rune)
		e.cur.Move(cursor.Right, e.buf, e.height)

	default:
		if dir, ok := moveDirection(k); ok {
			e.cur.Move(dir, e.buf, e.height)
		}
	}

	// Any key other than the quit chord resets the confirmation
	// countdown.
	if e.quitRemaining < e.cfg.QuitConfirmations {
		e.quitRemaining = e.cfg.QuitConfirmations
		e.setStatus("")
	}

	e.cur.Scroll(e.width, e.textHeight())
}

func moveDirection(k terminal.KeyEvent) (cursor.Direction, bool) {
	switch k.Key {
	case terminal.KeyLeft:
		return cursor.Left, true
	case terminal.KeyRight:
		return cursor.Right, true
	case terminal.KeyUp:
		return cursor.Up, true
	case terminal.KeyDown:
		return cursor.Down, true
	case terminal.KeyHome:
		return cursor.Home, true
	case terminal.KeyEnd:
		return cursor.End, true
	case terminal.KeyPageUp:
		return cursor.PageUp, true
	case terminal.KeyPageDown:
		return cursor.PageDown, true
	}
	return 0, false
}

func (e *Editor) requestQuit() {
	if e.quitRemaining > 0 && e.buf.IsDirty() {
		e.setStatus(fmt.Sprintf(
			"WARNING! File has unsaved changes. Press Ctrl-C %d more times to quit.",
			e.quitRemaining))
		e.quitRemaining--
		return
	}
	e.quitting = true
}

func (e *Editor) save() {
	if e.buf.Path() == "" {
		name, ok := e.runPrompt("Save as: ", nil)
		if !ok || name == "" {
			e.setStatus("Save aborted")
			return
		}
		e.buf.SetPath(name)
	}

	if e.watcher != nil {
		e.watcher.Expect()
	}
	if err := e.buf.SaveToDisk(); err != nil {
		e.log.Error("save: %v", err)
		e.setStatus("Failed to save file!")
		return
	}

	e.setStatus("File saved")
	e.log.Info("saved %s", e.buf.Path())
	if e.watcher == nil && !e.watchDisabled {
		e.startWatcher()
	}
	e.hook(e.plugins.OnSave(e.buf.Path()))
}

func (e *Editor) startWatcher() {
	w, err := watch.New(e.buf.Path())
	if err != nil {
		e.log.Warn("watch: %v", err)
		return
	}
	e.watcher = w
}

func (e *Editor) drainWatcher() {
	if e.watcher == nil {
		return
	}
	select {
	case <-e.watcher.Changes():
		e.setStatus("WARNING! File changed on disk.")
		e.redrawMessageBar()
	default:
	}
}

// redrawMessageBar repaints only the message bar, leaving the cursor
// where it was.
func (e *Editor) redrawMessageBar() {
	e.drawMessageBar()
	x, y := e.cur.ScreenPosition()
	e.term.MoveCursor(x, y)
	e.term.Flush()
}

// hook reports a plugin hook failure as a status message, never an
// error.
func (e *Editor) hook(err error) {
	if err == nil {
		return
	}
	e.log.Error("plugin: %v", err)
	e.setStatus(fmt.Sprintf("Plugin error: %v", err))
}

func (e *Editor) setStatus(text string) {
	e.status = statusMessage{text: text, at: time.Now()}
}

// textHeight is the number of rows available for buffer content: the
// status and message bars take the bottom two.
func (e *Editor) textHeight() int {
	h := e.height - 2
	if h < 0 {
		h = 0
	}
	return h
}
