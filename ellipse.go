package raster2x

import "github.com/flavioheleno/raster2x/image565"

// MaxRadius is the largest radius DrawEllipse and FillEllipse accept.
// Ellipses with a larger radius draw nothing.
const MaxRadius = 1 << 24

// DrawEllipse outlines the axis-aligned ellipse centered at (cx, cy) with
// radii rx and ry. Negative radii draw nothing.
func (c *Canvas) DrawEllipse(cx, cy, rx, ry int, intensity uint16) {
	if !validRadii(rx, ry) {
		return
	}
	pix := image565.Pack(intensity)
	if c.degenerateEllipse(cx, cy, rx, ry, pix) {
		return
	}
	traceEllipse(rx, ry, func(a, b int) {
		c.point(cx+a, cy+b, pix)
		c.point(cx-a-1, cy+b, pix)
		c.point(cx+a, cy-b-1, pix)
		c.point(cx-a-1, cy-b-1, pix)
	})
}

// FillEllipse fills the axis-aligned ellipse centered at (cx, cy) with
// horizontal spans. Negative radii draw nothing.
func (c *Canvas) FillEllipse(cx, cy, rx, ry int, intensity uint16) {
	if !validRadii(rx, ry) {
		return
	}
	pix := image565.Pack(intensity)
	if c.degenerateEllipse(cx, cy, rx, ry, pix) {
		return
	}
	traceEllipse(rx, ry, func(a, b int) {
		c.line(cx-a-1, cy+b, cx+a, cy+b, pix)
		c.line(cx-a-1, cy-b-1, cx+a, cy-b-1, pix)
	})
}

func validRadii(rx, ry int) bool {
	return rx >= 0 && ry >= 0 && rx <= MaxRadius && ry <= MaxRadius
}

// degenerateEllipse draws ellipses with a zero radius and reports whether it
// did. It must run before traceEllipse, which divides by the larger radius.
func (c *Canvas) degenerateEllipse(cx, cy, rx, ry int, pix uint16) bool {
	switch {
	case rx == 0 && ry == 0:
		c.point(cx, cy, pix)
	case rx == 0:
		c.line(cx, cy-ry, cx, cy+ry, pix)
	case ry == 0:
		c.line(cx-rx, cy, cx+rx, cy, pix)
	default:
		return false
	}
	return true
}

// traceEllipse walks the first octant of a circle whose radius is the larger
// of rx and ry, in 1/64 pixel steps, and scales the other axis onto the
// ellipse. Each iteration yields two offset pairs (a, b) from the center, one
// per octant; emit is called for a pair only when it differs from the pair
// produced by the previous iteration. Both radii must be positive and at most
// MaxRadius.
func traceEllipse(rx, ry int, emit func(a, b int)) {
	major, minor := rx, ry
	if ry > rx {
		major, minor = ry, rx
	}
	r := major

	ix, iy := 0, major<<6
	prevH, prevI, prevJ, prevK := -1, -1, -1, -1
	for {
		h, i := round64(ix), round64(iy)
		j, k := h*minor/major, i*minor/major

		if rx >= ry {
			if h != prevH || k != prevK {
				emit(h, k)
			}
			if i != prevI || j != prevJ {
				emit(i, j)
			}
		} else {
			if j != prevJ || i != prevI {
				emit(j, i)
			}
			if k != prevK || h != prevH {
				emit(k, h)
			}
		}
		prevH, prevI, prevJ, prevK = h, i, j, k

		// The second update uses the new ix.
		ix += iy / r
		iy -= ix / r

		if i <= h {
			break
		}
	}
}

// round64 rounds a value in 1/64 pixels to whole pixels the way the stepping
// expects: fractions of 56/64 and above round up.
func round64(v int) int {
	return (v + 8) >> 6
}
