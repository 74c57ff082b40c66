package raster2x

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// textFont is a 3×5 pixel font, legible at logical resolution.
var textFont = &tinyfont.TomThumb

// DrawText draws s with its baseline on logical row y, starting at column x.
// Intensities above 255 are clamped to 255.
func (c *Canvas) DrawText(x, y int, s string, intensity uint16) {
	v := uint8(min(intensity, 255))
	tinyfont.WriteLine(c.Displayer(), textFont, int16(x), int16(y), s, color.RGBA{R: v, G: v, B: v, A: 0xFF})
}

// TextWidth returns the logical width DrawText covers for s.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(textFont, s)
	return int(w)
}

// Displayer returns a view of the canvas in logical coordinates that satisfies
// drivers.Displayer, so tinygo graphics code can draw on it. SetPixel draws
// a logical point with the color's gray level (0-255) as intensity.
func (c *Canvas) Displayer() drivers.Displayer {
	return canvasDisplay{c: c}
}

type canvasDisplay struct {
	c *Canvas
}

func (d canvasDisplay) Size() (x, y int16) {
	w, h := d.c.Size()
	return int16(w), int16(h)
}

func (d canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	g := color.GrayModel.Convert(c).(color.Gray)
	d.c.DrawPoint(int(x), int(y), uint16(g.Y))
}

// Display is a no-op; presenting the buffer is up to the owner.
func (d canvasDisplay) Display() error {
	return nil
}
