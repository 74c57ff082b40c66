package raster2x

import "github.com/flavioheleno/raster2x/image565"

// DrawLine draws a line from (x0, y0) to (x1, y1) inclusive.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, intensity uint16) {
	c.line(x0, y0, x1, y1, image565.Pack(intensity))
}

func (c *Canvas) line(x0, y0, x1, y1 int, pix uint16) {
	// Run top to bottom.
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	// The start point lies exactly on the line.
	c.point(x0, y0, pix)

	dx := x1 - x0
	xdir := 1
	if dx < 0 {
		xdir = -1
		dx = -dx
	}
	dy := y1 - y0

	switch {
	case dy == 0:
		for ; dx > 0; dx-- {
			x0 += xdir
			c.point(x0, y0, pix)
		}

	case dx == 0:
		for ; dy > 0; dy-- {
			y0++
			c.point(x0, y0, pix)
		}

	case dx == dy:
		for ; dy > 0; dy-- {
			x0 += xdir
			y0++
			c.point(x0, y0, pix)
		}

	case dy > dx:
		// Y-major: adj is the 16-bit fraction of a pixel X advances per row,
		// truncated so X never overshoots the endpoint. X steps whenever the
		// accumulator wraps.
		var acc uint16
		adj := uint16(uint64(dx) << 16 / uint64(dy))
		for n := dy - 1; n > 0; n-- {
			prev := acc
			acc += adj
			if acc <= prev {
				x0 += xdir
			}
			y0++
			c.point(x0, y0, pix)
		}
		c.point(x1, y1, pix)

	default:
		// X-major, same as above with the axes swapped.
		var acc uint16
		adj := uint16(uint64(dy) << 16 / uint64(dx))
		for n := dx - 1; n > 0; n-- {
			prev := acc
			acc += adj
			if acc <= prev {
				y0++
			}
			x0 += xdir
			c.point(x0, y0, pix)
		}
		c.point(x1, y1, pix)
	}
}
