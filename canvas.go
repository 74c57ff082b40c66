package raster2x

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/raster2x/image565"
)

// ErrInvalidBuffer is returned by NewCanvas when a buffer's geometry does not
// match its storage.
var ErrInvalidBuffer = errors.New("raster2x: invalid buffer")

// Buffer is a mutable rectangle of packed 16-bit pixels owned by the caller.
//
// Size reports the dimensions in physical pixels and Pitch the distance
// between rows, also in pixels. Pixels returns the storage starting at the
// top-left pixel.
type Buffer interface {
	Size() (w, h int)
	Pitch() int
	Pixels() []uint16
}

// Canvas draws into a borrowed Buffer. It holds no drawing state between calls.
type Canvas struct {
	pix   []uint16
	pitch int
	w, h  int

	// Exclusive logical limits for plotted points.
	maxX, maxY int
}

// NewCanvas validates buf and returns a canvas drawing into it.
// The buffer's storage must stay valid, and must not be resized, for as long
// as the canvas is used.
func NewCanvas(buf Buffer) (*Canvas, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	w, h := buf.Size()
	pitch := buf.Pitch()
	pix := buf.Pixels()

	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidBuffer, w, h)
	}
	if pitch < w {
		return nil, fmt.Errorf("%w: pitch %d shorter than width %d", ErrInvalidBuffer, pitch, w)
	}
	if len(pix) < pitch*h {
		return nil, fmt.Errorf("%w: %d pixels, need %d", ErrInvalidBuffer, len(pix), pitch*h)
	}

	c := &Canvas{
		pix:   pix,
		pitch: pitch,
		w:     w,
		h:     h,
		maxX:  w/2 - 1,
		maxY:  h/2 - 1,
	}
	Logger().Debug("raster2x: canvas attached", "width", w, "height", h, "pitch", pitch)
	return c, nil
}

// Size returns the logical dimensions, half the physical ones.
func (c *Canvas) Size() (w, h int) {
	return c.w / 2, c.h / 2
}

// Clear zeroes every pixel, row padding included.
func (c *Canvas) Clear() {
	for y := 0; y < c.h; y++ {
		clear(c.pix[y*c.pitch : (y+1)*c.pitch])
	}
}

// DrawPoint fills the 2×2 physical block of logical point (x, y).
// Points outside the drawable range are ignored.
func (c *Canvas) DrawPoint(x, y int, intensity uint16) {
	c.point(x, y, image565.Pack(intensity))
}

// point writes an already packed pixel, clipping to the logical limits.
func (c *Canvas) point(x, y int, pix uint16) {
	if x < 0 || x >= c.maxX || y < 0 || y >= c.maxY {
		return
	}
	ofs := 2*y*c.pitch + 2*x
	c.pix[ofs] = pix
	c.pix[ofs+1] = pix
	c.pix[ofs+c.pitch] = pix
	c.pix[ofs+c.pitch+1] = pix
}

// DrawRect outlines the rectangle with corners (x0, y0) and (x1, y1),
// tracing the top, right, bottom and left edges in that order.
func (c *Canvas) DrawRect(x0, y0, x1, y1 int, intensity uint16) {
	pix := image565.Pack(intensity)
	c.line(x0, y0, x1, y0, pix)
	c.line(x1, y0, x1, y1, pix)
	c.line(x1, y1, x0, y1, pix)
	c.line(x0, y1, x0, y0, pix)
}
