package image565

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidLayout is returned by Wrap when the dimensions do not describe the slice.
var ErrInvalidLayout = errors.New("image565: invalid buffer layout")

// Pack quantizes a source intensity to 5 bits and replicates it into the
// three channel fields of a 565 pixel.
//
// Intensities are expected in 0..255. Larger values are packed literally:
// the quantized value is wider than 5 bits, the fields overlap, and the
// result is no longer gray.
func Pack(intensity uint16) uint16 {
	q := intensity >> 3
	return q | q<<6 | q<<11
}

// Gray565 is a packed 16-bit pixel. Pixels written by Pack always hold equal
// channel intensities.
type Gray565 uint16

// RGBA expands the packed channels to 16 bits each.
func (c Gray565) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11&0x1F) * 0xFFFF / 0x1F
	g = uint32(c>>5&0x3F) * 0xFFFF / 0x3F
	b = uint32(c&0x1F) * 0xFFFF / 0x1F
	return r, g, b, 0xFFFF
}

// Level returns the 5-bit intensity stored in the low field.
func (c Gray565) Level() uint8 {
	return uint8(c & 0x1F)
}

// toGray565 converts any color.Color to Gray565.
func toGray565(c color.Color) color.Color {
	if g, ok := c.(Gray565); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as image/color's GrayModel, result in 0-255.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
	return Gray565(Pack(uint16(y)))
}

// Gray565Model converts colors to Gray565.
var Gray565Model = color.ModelFunc(toGray565)

// Gray is an image of packed 16-bit gray pixels.
type Gray struct {
	Pix    []uint16        // Pixel data, one element per pixel
	Stride int             // Pixels per row, padding included
	Rect   image.Rectangle // Image bounds
}

// NewGray allocates a Gray image with the given bounds and no row padding.
func NewGray(r image.Rectangle) *Gray {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Gray{Rect: r}
	}
	return &Gray{
		Pix:    make([]uint16, w*h),
		Stride: w,
		Rect:   r,
	}
}

// Wrap adopts pix as a w×h image whose rows are stride pixels apart.
// The slice is not copied; writes through the image land in pix.
func Wrap(pix []uint16, w, h, stride int) (*Gray, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidLayout, w, h)
	}
	if stride < w {
		return nil, fmt.Errorf("%w: stride %d shorter than width %d", ErrInvalidLayout, stride, w)
	}
	if len(pix) < stride*h {
		return nil, fmt.Errorf("%w: %d pixels, need %d", ErrInvalidLayout, len(pix), stride*h)
	}
	return &Gray{Pix: pix, Stride: stride, Rect: image.Rect(0, 0, w, h)}, nil
}

// ColorModel returns the color model of the image.
func (p *Gray) ColorModel() color.Model {
	return Gray565Model
}

// Bounds returns the image bounds.
func (p *Gray) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *Gray) At(x, y int) color.Color {
	return p.Gray565At(x, y)
}

// Gray565At returns the packed pixel at (x, y), or zero outside the bounds.
func (p *Gray) Gray565At(x, y int) Gray565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	return Gray565(p.Pix[p.PixOffset(x, y)])
}

// Set sets the color of the pixel at (x, y).
func (p *Gray) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint16(Gray565Model.Convert(c).(Gray565))
}

// SetGray565 stores a packed pixel at (x, y) without conversion.
func (p *Gray) SetGray565(x, y int, c Gray565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint16(c)
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (p *Gray) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

// Size returns the width and height in physical pixels.
func (p *Gray) Size() (w, h int) {
	return p.Rect.Dx(), p.Rect.Dy()
}

// Pitch returns the row length in pixels.
func (p *Gray) Pitch() int {
	return p.Stride
}

// Pixels returns the backing storage, starting at the top-left pixel.
func (p *Gray) Pixels() []uint16 {
	return p.Pix
}
