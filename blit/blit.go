// Package blit copies finished raster2x frames to presentation targets.
//
// Frames are image565.Gray buffers. ToRGBA expands them for image libraries
// and windowing toolkits, and ToDisplayer pushes them to any tinygo display
// driver. Both scale with nearest-neighbour sampling when the target size
// differs, which keeps the 2×2 blocks sharp at integer ratios.
package blit

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"tinygo.org/x/drivers"

	"github.com/flavioheleno/raster2x/image565"
)

// ToRGBA writes src into dst, scaling when the sizes differ.
func ToRGBA(dst *image.RGBA, src *image565.Gray) {
	if dst.Rect.Size() != src.Rect.Size() {
		xdraw.NearestNeighbor.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)
		return
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+4*w]
		for x, p := range s {
			r, g, b, _ := image565.Gray565(p).RGBA()
			d[4*x+0] = uint8(r >> 8)
			d[4*x+1] = uint8(g >> 8)
			d[4*x+2] = uint8(b >> 8)
			d[4*x+3] = 0xFF
		}
	}
}

// ToDisplayer draws src on d, scaled to the driver's size, and calls Display.
func ToDisplayer(d drivers.Displayer, src *image565.Gray) error {
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return d.Display()
	}

	frame := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	ToRGBA(frame, src)

	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			i := frame.PixOffset(int(x), int(y))
			p := frame.Pix[i : i+4 : i+4]
			d.SetPixel(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
		}
	}
	return d.Display()
}
