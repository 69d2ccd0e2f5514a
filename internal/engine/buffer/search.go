package buffer

// Find scans for query starting at from in the given direction and
// returns the position of the first match along the scan order.
//
// Forward scans lines from.Y through the last line; the first line is
// searched from offset from.X, subsequent lines from offset 0. The
// scan never wraps past the end of the buffer.
//
// Backward scans lines from.Y down through line 0; the first line is
// searched up to offset from.X, and stepping to a previous line
// resets the limit to that line's full length. The scan never wraps
// past the start of the buffer.
func (b *Buffer) Find(query string, from Position, dir SearchDirection) (Position, bool) {
	if query == "" || len(b.lines) == 0 {
		return Position{}, false
	}
	if dir == SearchBackward {
		return b.findBackward(query, from)
	}
	return b.findForward(query, from)
}

func (b *Buffer) findForward(query string, from Position) (Position, bool) {
	if from.Y < 0 {
		from = Position{}
	}
	if from.X < 0 {
		from.X = 0
	}
	for y := from.Y; y < len(b.lines); y++ {
		start := 0
		if y == from.Y {
			start = from.X
		}
		if x, ok := b.lines[y].Index(query, start); ok {
			return Position{X: x, Y: y}, true
		}
	}
	return Position{}, false
}

func (b *Buffer) findBackward(query string, from Position) (Position, bool) {
	if from.Y >= len(b.lines) {
		from = Position{Y: len(b.lines) - 1, X: b.lines[len(b.lines)-1].Length()}
	}
	for y := from.Y; y >= 0; y-- {
		limit := b.lines[y].Length()
		if y == from.Y {
			limit = from.X
		}
		if x, ok := b.lines[y].LastIndex(query, limit); ok {
			return Position{X: x, Y: y}, true
		}
	}
	return Position{}, false
}
