package terminal

import (
	"testing"
	"time"
)

func TestMemoryBackendPrint(t *testing.T) {
	m := NewMemoryBackend(10, 3)

	m.MoveCursor(2, 1)
	m.Print("hi")

	if got := m.Row(1); got != "  hi" {
		t.Errorf("Row(1) = %q, want %q", got, "  hi")
	}
	if x, y := m.Cursor(); x != 4 || y != 1 {
		t.Errorf("cursor = (%d, %d), want (4, 1)", x, y)
	}
}

func TestMemoryBackendPrintAdvancesByDisplayWidth(t *testing.T) {
	m := NewMemoryBackend(10, 1)

	// A CJK cluster occupies two cells.
	m.MoveCursor(0, 0)
	m.Print("日x")

	if x, _ := m.Cursor(); x != 3 {
		t.Errorf("cursor x = %d, want 3", x)
	}
	if got := m.Row(0); got != "日x" {
		t.Errorf("Row(0) = %q, want %q", got, "日x")
	}
}

func TestMemoryBackendPrintKeepsClusterInOneCell(t *testing.T) {
	m := NewMemoryBackend(5, 1)

	// e + combining acute is one cluster, one cell.
	s := "e\u0301a"
	m.MoveCursor(0, 0)
	m.Print(s)

	if x, _ := m.Cursor(); x != 2 {
		t.Errorf("cursor x = %d, want 2", x)
	}
	if got := m.Row(0); got != s {
		t.Errorf("Row(0) = %q, want %q", got, s)
	}
}

func TestMemoryBackendClipsAtWidth(t *testing.T) {
	m := NewMemoryBackend(4, 1)
	m.MoveCursor(0, 0)
	m.Print("toolong")

	if got := m.Row(0); got != "tool" {
		t.Errorf("Row(0) = %q, want %q", got, "tool")
	}
}

func TestMemoryBackendClearLine(t *testing.T) {
	m := NewMemoryBackend(5, 2)
	m.MoveCursor(0, 0)
	m.Print("abc")
	m.ClearLine()

	if got := m.Row(0); got != "" {
		t.Errorf("Row(0) = %q, want empty", got)
	}
}

func TestMemoryBackendEventQueue(t *testing.T) {
	m := NewMemoryBackend(5, 2)
	m.Queue(KeyEvent{Key: KeyRune, Rune: 'x'}, ResizeEvent{Width: 1, Height: 1})

	if _, ok := m.PollEvent(time.Millisecond).(KeyEvent); !ok {
		t.Error("first event must be the queued key")
	}
	if _, ok := m.PollEvent(time.Millisecond).(ResizeEvent); !ok {
		t.Error("second event must be the queued resize")
	}
	if _, ok := m.PollEvent(time.Millisecond).(ClosedEvent); !ok {
		t.Error("an exhausted queue must report ClosedEvent")
	}
}
