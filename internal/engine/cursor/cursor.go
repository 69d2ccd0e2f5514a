// Package cursor tracks the edit position and the viewport origin
// over a buffer.
//
// The controller owns two positions: the cursor (cluster offset, line
// index) and the viewport offset (top-left visible cell). Movement
// wraps and saturates per direction and always ends with a clamp to
// the addressed line and the buffer extent; scrolling follows the
// cursor so it never leaves the visible window.
package cursor

import "github.com/dshills/slate/internal/engine/buffer"

// Direction names a cursor movement.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
	Home
	End
	PageUp
	PageDown
	// DocumentHome jumps to the first cluster of the first line.
	DocumentHome
	// DocumentEnd jumps past the last cluster of the last line.
	DocumentEnd
)

// Controller holds cursor and viewport state for one buffer.
type Controller struct {
	pos    buffer.Position
	offset buffer.Position
}

// New creates a controller at the origin.
func New() *Controller {
	return &Controller{}
}

// Position returns the cursor position.
func (c *Controller) Position() buffer.Position {
	return c.pos
}

// SetPosition moves the cursor directly, without clamping. Callers
// hand it positions that came from the buffer (search results), which
// are valid by construction.
func (c *Controller) SetPosition(p buffer.Position) {
	c.pos = p
}

// Offset returns the viewport origin.
func (c *Controller) Offset() buffer.Position {
	return c.offset
}

// ScreenPosition returns the cursor position relative to the viewport
// origin, saturating at zero.
func (c *Controller) ScreenPosition() (x, y int) {
	x = c.pos.X - c.offset.X
	y = c.pos.Y - c.offset.Y
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// Move applies one movement. Left at the start of a line wraps to the
// end of the previous line; Right at the end wraps to the start of
// the next. Vertical moves saturate at the top and are only
// range-clamped by the final step. pageSize is the number of rows a
// page movement covers.
//
// After every move the cursor clamps to the target line's length
// (zero if the line does not exist) and to [0, LineCount-1].
func (c *Controller) Move(dir Direction, buf *buffer.Buffer, pageSize int) {
	x, y := c.pos.X, c.pos.Y
	if pageSize < 1 {
		pageSize = 1
	}

	switch dir {
	case Left:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = lineLength(buf, y)
		}
	case Right:
		if ln, ok := buf.Line(y); ok {
			if x < ln.Length() {
				x++
			} else if y < buf.LineCount()-1 {
				y++
				x = 0
			}
		} else {
			x = 0
		}
	case Up:
		if y > 0 {
			y--
		}
	case Down:
		y++
	case Home:
		x = 0
	case End:
		x = lineLength(buf, y)
	case PageUp:
		y -= pageSize - 1
		if y < 0 {
			y = 0
		}
	case PageDown:
		y += pageSize - 1
	case DocumentHome:
		x, y = 0, 0
	case DocumentEnd:
		y = buf.LineCount() - 1
		if y < 0 {
			y = 0
		}
		x = lineLength(buf, y)
	}

	if ln, ok := buf.Line(y); ok {
		if x > ln.Length() {
			x = ln.Length()
		}
	} else {
		x = 0
	}
	if max := buf.LineCount() - 1; y > max {
		y = max
	}
	if y < 0 {
		y = 0
	}

	c.pos = buffer.Position{X: x, Y: y}
}

// Scroll moves the viewport origin the minimum distance needed to
// keep the cursor inside a width x height window. It is a pure
// function of the cursor, the previous offset, and the extent; no
// buffer access is required.
func (c *Controller) Scroll(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	ox, oy := c.offset.X, c.offset.Y

	if c.pos.X >= ox+width {
		ox = c.pos.X - width + 1
	} else if c.pos.X < ox {
		ox = c.pos.X
	}

	if c.pos.Y >= oy+height {
		oy = c.pos.Y - height + 1
	} else if c.pos.Y < oy {
		oy = c.pos.Y
	}

	c.offset = buffer.Position{X: ox, Y: oy}
}

func lineLength(buf *buffer.Buffer, y int) int {
	if ln, ok := buf.Line(y); ok {
		return ln.Length()
	}
	return 0
}
