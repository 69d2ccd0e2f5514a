package terminal

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// MemoryBackend implements Backend against an in-memory cell grid for
// tests. Each cell holds one grapheme cluster; the trailing cell of a
// wide cluster holds the empty string. PollEvent replays a scripted
// event queue and reports ClosedEvent once the script runs out.
type MemoryBackend struct {
	width  int
	height int
	cells  [][]string

	x, y          int
	cursorVisible bool

	queue []Event

	Inited bool
	Finied bool
}

// NewMemoryBackend creates a test backend with the given extent.
func NewMemoryBackend(width, height int) *MemoryBackend {
	m := &MemoryBackend{width: width, height: height}
	m.reset()
	return m
}

func (m *MemoryBackend) reset() {
	m.cells = make([][]string, m.height)
	for y := range m.cells {
		m.cells[y] = make([]string, m.width)
		for x := range m.cells[y] {
			m.cells[y][x] = " "
		}
	}
}

// Queue appends events for PollEvent to replay.
func (m *MemoryBackend) Queue(events ...Event) {
	m.queue = append(m.queue, events...)
}

// Row returns the rendered content of screen row y, right-trimmed.
func (m *MemoryBackend) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	return strings.TrimRight(strings.Join(m.cells[y], ""), " ")
}

// CursorVisible reports whether the cursor is currently shown.
func (m *MemoryBackend) CursorVisible() bool {
	return m.cursorVisible
}

// Cursor returns the write-head position.
func (m *MemoryBackend) Cursor() (x, y int) {
	return m.x, m.y
}

func (m *MemoryBackend) Init() error {
	m.Inited = true
	return nil
}

func (m *MemoryBackend) Fini() {
	m.Finied = true
}

func (m *MemoryBackend) Size() (int, int) {
	return m.width, m.height
}

func (m *MemoryBackend) MoveCursor(x, y int) {
	m.x, m.y = x, y
}

func (m *MemoryBackend) HideCursor() {
	m.cursorVisible = false
}

func (m *MemoryBackend) ShowCursor() {
	m.cursorVisible = true
}

// Print advances one cluster per cell group by display width, the
// same walk the tcell backend performs.
func (m *MemoryBackend) Print(s string) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if m.x >= m.width || m.y < 0 || m.y >= m.height {
			return
		}
		m.cells[m.y][m.x] = g.Str()
		adv := runewidth.StringWidth(g.Str())
		if adv < 1 {
			adv = 1
		}
		for i := 1; i < adv && m.x+i < m.width; i++ {
			m.cells[m.y][m.x+i] = ""
		}
		m.x += adv
	}
}

func (m *MemoryBackend) ClearLine() {
	if m.y < 0 || m.y >= m.height {
		return
	}
	for x := range m.cells[m.y] {
		m.cells[m.y][x] = " "
	}
}

func (m *MemoryBackend) ClearScreen() {
	m.reset()
}

func (m *MemoryBackend) SetColors(fg, bg Color) {}

func (m *MemoryBackend) ResetColors() {}

func (m *MemoryBackend) Flush() {}

func (m *MemoryBackend) PollEvent(timeout time.Duration) Event {
	if len(m.queue) == 0 {
		return ClosedEvent{}
	}
	ev := m.queue[0]
	m.queue = m.queue[1:]
	return ev
}
