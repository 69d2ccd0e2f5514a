package buffer

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/slate/internal/engine/line"
)

// Buffer is an ordered sequence of lines with an optional file path
// and a dirty flag.
type Buffer struct {
	lines []*line.Line
	path  string
	dirty bool
}

// New creates an empty buffer with no path.
func New() *Buffer {
	return &Buffer{}
}

// FromLines creates a buffer holding the given lines. The buffer is
// clean and has no path.
func FromLines(lines []string) *Buffer {
	b := &Buffer{lines: make([]*line.Line, 0, len(lines))}
	for _, s := range lines {
		b.lines = append(b.lines, line.New(s))
	}
	return b
}

// Open reads the file at path and splits it into one line per text
// line. CRLF and CR terminators are normalized to LF. The result is
// clean.
func Open(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	text := normalizeLineEndings(string(data))
	b := &Buffer{path: path}
	if text != "" {
		for _, s := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
			b.lines = append(b.lines, line.New(s))
		}
	}
	return b, nil
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at index, or false if index is out of range.
func (b *Buffer) Line(index int) (*line.Line, bool) {
	if index < 0 || index >= len(b.lines) {
		return nil, false
	}
	return b.lines[index], true
}

// IsEmpty reports whether the buffer holds no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Path returns the associated file path, if any.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath associates the buffer with a file path.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// IsDirty reports whether the buffer has unsaved mutations.
func (b *Buffer) IsDirty() bool {
	return b.dirty
}

// Text returns the buffer content joined by LF terminators, with a
// trailing terminator after every line. This is exactly what
// SaveToDisk writes.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for _, ln := range b.lines {
		sb.WriteString(ln.Text())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Insert places r at pos. Positions with Y beyond one-past-the-last
// line are a no-op. A newline triggers a line split instead of a
// character insertion. Inserting at Y == LineCount appends a new
// line.
func (b *Buffer) Insert(pos Position, r rune) {
	if pos.Y > len(b.lines) || pos.Y < 0 {
		return
	}
	b.dirty = true
	if r == '\n' {
		b.splitLine(pos)
		return
	}
	if pos.Y == len(b.lines) {
		ln := line.New("")
		ln.Insert(0, r)
		b.lines = append(b.lines, ln)
		return
	}
	b.lines[pos.Y].Insert(pos.X, r)
}

// InsertText places s at pos with the same addressing as Insert.
// s must not contain newlines; it is inserted as one atomic run into
// a single line.
func (b *Buffer) InsertText(pos Position, s string) {
	if pos.Y > len(b.lines) || pos.Y < 0 {
		return
	}
	b.dirty = true
	if pos.Y == len(b.lines) {
		ln := line.New("")
		ln.InsertText(0, s)
		b.lines = append(b.lines, ln)
		return
	}
	b.lines[pos.Y].InsertText(pos.X, s)
}

// splitLine carves the tail [pos.X, end) off the addressed line and
// inserts it as a new line immediately after. Positions past the last
// line are a no-op.
func (b *Buffer) splitLine(pos Position) {
	if pos.Y >= len(b.lines) {
		return
	}
	ln := b.lines[pos.Y]
	tail, _ := ln.DeleteSlice(pos.X, ln.Length())
	next := line.New(tail)

	b.lines = append(b.lines, nil)
	copy(b.lines[pos.Y+2:], b.lines[pos.Y+1:])
	b.lines[pos.Y+1] = next
}

// Delete removes the cluster at pos. When pos.X sits at the end of a
// line that is not the last, the next line is merged onto it instead
// (forward delete at end of line joins lines). Positions past the
// last line are a no-op.
func (b *Buffer) Delete(pos Position) {
	if pos.Y < 0 || pos.Y >= len(b.lines) {
		return
	}
	ln := b.lines[pos.Y]

	if pos.Y < len(b.lines)-1 && pos.X == ln.Length() {
		next := b.lines[pos.Y+1]
		ln.InsertText(ln.Length(), next.Text())
		b.lines = append(b.lines[:pos.Y+1], b.lines[pos.Y+2:]...)
		b.dirty = true
		return
	}

	if pos.X >= 0 && pos.X < ln.Length() {
		ln.Delete(pos.X)
		b.dirty = true
	}
}
