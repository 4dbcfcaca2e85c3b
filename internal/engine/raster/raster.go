// Package raster marks cells along geometric shapes on a canvas.
//
// The routines are pure with respect to everything but the canvas: given the
// same canvas state and parameters they always touch the same cells, which is
// what makes history replay deterministic. The arithmetic is deliberately
// integer-truncating and must not be "improved": which cells a non-divisible
// slope or a circle sample lands on is part of the persisted-history
// contract.
package raster

import (
	"math"

	"github.com/dshills/gridpaint/internal/engine/canvas"
)

// Line marks cells from (x0, y0) to (x1, y1) with the canvas pen.
//
// The segment is sampled at n+1 points where n = max(|dx|, |dy|), each
// computed as x0 + i*dx/n with integer division truncating toward zero.
// Every point is clipped independently by the canvas.
func Line(c *canvas.Canvas, x0, y0, x1, y1 int) {
	dx := x1 - x0
	dy := y1 - y0

	n := max(abs(dx), abs(dy))
	c.Set(x0, y0)
	for i := 1; i <= n; i++ {
		c.Set(x0+i*dx/n, y0+i*dy/n)
	}
}

// Rect marks the outline of the axis-aligned box whose top-left corner is
// (x0, y0) with the given width and height. A non-positive width or height
// is a no-op.
func Rect(c *canvas.Canvas, x0, y0, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	x1 := x0 + width - 1
	y1 := y0 + height - 1

	Line(c, x0, y0, x1, y0)
	Line(c, x0, y1, x1, y1)
	Line(c, x0, y0, x0, y1)
	Line(c, x1, y0, x1, y1)
}

// Circle marks the outline of a circle centered at (x0, y0) with radius r.
// A non-positive radius is a no-op.
//
// The outline is sampled at one-degree steps with coordinates truncated
// toward zero. Small radii leave gaps and large radii mark some cells more
// than once; both are intentional and harmless since marking is idempotent
// for a fixed pen.
func Circle(c *canvas.Canvas, x0, y0, r int) {
	if r <= 0 {
		return
	}

	for deg := 0; deg < 360; deg++ {
		rad := float64(deg) * math.Pi / 180.0
		x := x0 + int(float64(r)*math.Cos(rad))
		y := y0 + int(float64(r)*math.Sin(rad))
		c.Set(x, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
