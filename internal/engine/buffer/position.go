package buffer

import "fmt"

// Position addresses a point in the buffer. X is a grapheme-cluster
// offset within a line, Y a line index. Positions are transient values
// and never persisted.
type Position struct {
	X int
	Y int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Y, p.X)
}

// SearchDirection selects the scan order for Find.
type SearchDirection uint8

const (
	// SearchForward scans from the start position toward the end of
	// the buffer.
	SearchForward SearchDirection = iota
	// SearchBackward scans from the start position toward the start
	// of the buffer.
	SearchBackward
)

// String returns the direction name.
func (d SearchDirection) String() string {
	switch d {
	case SearchForward:
		return "forward"
	case SearchBackward:
		return "backward"
	default:
		return "unknown"
	}
}
