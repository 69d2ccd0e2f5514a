// Package line implements a single line of text addressed by
// grapheme-cluster offsets.
//
// Every positional argument in this package counts user-perceived
// characters (grapheme clusters), never bytes or runes. A combining
// sequence or a multi-byte character is always moved as one unit, so
// no operation can split a cluster.
package line

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Line holds the text of one line and a cached cluster count.
// A Line never contains a line terminator.
type Line struct {
	text   string
	length int
}

// New creates a line from s.
func New(s string) *Line {
	l := &Line{text: s}
	l.updateLength()
	return l
}

// Length returns the number of grapheme clusters in the line.
func (l *Line) Length() int {
	return l.length
}

// Text returns the line content.
func (l *Line) Text() string {
	return l.text
}

// Bytes returns the raw UTF-8 content for I/O.
func (l *Line) Bytes() []byte {
	return []byte(l.text)
}

// Render returns the display form of clusters [start, end). Tabs are
// replaced with a single space; everything else passes through.
// Out-of-range indices are clamped, so a window past the end of the
// line degrades to the empty string.
func (l *Line) Render(start, end int) string {
	if end > l.length {
		end = l.length
	}
	if start > end {
		start = end
	}
	if start == end {
		return ""
	}

	var b strings.Builder
	g := uniseg.NewGraphemes(l.text)
	for i := 0; g.Next() && i < end; i++ {
		if i < start {
			continue
		}
		if s := g.Str(); s == "\t" {
			b.WriteByte(' ')
		} else {
			b.WriteString(s)
		}
	}
	return b.String()
}

// Insert places r at cluster offset at. Offsets at or past the end
// append.
func (l *Line) Insert(at int, r rune) {
	l.InsertText(at, string(r))
}

// InsertText places s at cluster offset at with the same addressing
// as Insert. s must not contain line terminators; splitting on
// newlines is the buffer's job.
func (l *Line) InsertText(at int, s string) {
	if s == "" {
		return
	}
	if at >= l.length {
		l.text += s
	} else {
		cut := l.byteOffset(at)
		l.text = l.text[:cut] + s + l.text[cut:]
	}
	l.updateLength()
}

// Delete removes the cluster at offset at. Offsets past the end are a
// no-op.
func (l *Line) Delete(at int) {
	if at >= l.length {
		return
	}
	from := l.byteOffset(at)
	to := l.byteOffset(at + 1)
	l.text = l.text[:from] + l.text[to:]
	l.updateLength()
}

// DeleteSlice removes clusters [from, to) and returns the removed
// substring. Degenerate ranges (to <= from or to > Length) remove
// nothing and report false.
func (l *Line) DeleteSlice(from, to int) (string, bool) {
	if to <= from || to > l.length {
		return "", false
	}
	lo := l.byteOffset(from)
	hi := l.byteOffset(to)
	removed := l.text[lo:hi]
	l.text = l.text[:lo] + l.text[hi:]
	l.updateLength()
	return removed, true
}

// ClusterOffsetOfByte returns the index of the cluster containing
// byte position b. Used to translate substring match positions back
// into cluster offsets.
func (l *Line) ClusterOffsetOfByte(b int) int {
	if b <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(l.text)
	for i := 0; g.Next(); i++ {
		from, to := g.Positions()
		if b >= from && b < to {
			return i
		}
	}
	return l.length
}

// byteOffset returns the byte index where cluster i begins. An index
// at or past the end maps to len(text).
func (l *Line) byteOffset(i int) int {
	if i >= l.length {
		return len(l.text)
	}
	g := uniseg.NewGraphemes(l.text)
	for n := 0; g.Next(); n++ {
		if n == i {
			from, _ := g.Positions()
			return from
		}
	}
	return len(l.text)
}

func (l *Line) updateLength() {
	l.length = uniseg.GraphemeClusterCount(l.text)
}
