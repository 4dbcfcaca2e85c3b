// Package canvas provides the fixed-size character grid that all drawing
// commands mutate.
//
// A Canvas owns a width×height grid of runes plus the current pen character.
// Cells outside the grid are clipped on write rather than rejected, so
// rasterization code never needs its own bounds checks.
package canvas

import "errors"

// Blank is the rune stored in every cell of a fresh or reset canvas.
const Blank = ' '

// ErrInvalidDimensions is returned when a canvas is created with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("canvas: width and height must be positive")

// Canvas is a fixed-size rune grid with a current pen character.
// Dimensions are immutable after creation.
type Canvas struct {
	width  int
	height int
	cells  []rune // row-major: cells[y*width+x]
	pen    rune
}

// New creates a blank canvas with the given dimensions and initial pen.
func New(width, height int, pen rune) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
		pen:    pen,
	}
	c.Reset()
	return c, nil
}

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.height }

// Pen returns the current pen character.
func (c *Canvas) Pen() rune { return c.pen }

// SetPen replaces the pen character. Validation of the character is the
// interpreter's responsibility, not the canvas's.
func (c *Canvas) SetPen(pen rune) { c.pen = pen }

// Reset blanks every cell. Pen and dimensions are unchanged.
func (c *Canvas) Reset() {
	for i := range c.cells {
		c.cells[i] = Blank
	}
}

// Set writes the current pen character at (x, y). Out-of-range coordinates
// are clipped silently.
func (c *Canvas) Set(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = c.pen
}

// At returns the rune stored at (x, y), or Blank for out-of-range
// coordinates.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Blank
	}
	return c.cells[y*c.width+x]
}

// Snapshot returns a copy of the grid as one string per row. The rendering
// collaborator consumes this; mutating the canvas afterwards does not affect
// a snapshot already taken.
func (c *Canvas) Snapshot() []string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		rows[y] = string(c.cells[y*c.width : (y+1)*c.width])
	}
	return rows
}

// Equal reports whether two canvases have identical dimensions, cell
// contents, and pen.
func (c *Canvas) Equal(other *Canvas) bool {
	if c.width != other.width || c.height != other.height || c.pen != other.pen {
		return false
	}
	for i, r := range c.cells {
		if other.cells[i] != r {
			return false
		}
	}
	return true
}
