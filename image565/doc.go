// Package image565 provides the 16-bit packed grayscale pixel format used by raster2x.
//
// Every pixel is a uint16 in 5-6-5 channel layout with all three channels
// carrying the same 5-bit intensity. The green field is 6 bits wide, so the
// value sits one bit above its least significant bit:
//
//	bit:    15..11  10..6  5  4..0
//	field:  q       q      0  q
//
// A source intensity is quantized by discarding its low 3 bits before packing:
//
//	q := intensity >> 3
//	pixel := q | q<<6 | q<<11
//
// Intensities in 0-255 therefore cover the 32 gray levels exactly.
//
// This package provides:
//
// - Gray565: the packed color type
// - Gray565Model: a color model converting standard Go colors to Gray565
// - Gray: an image.Image / draw.Image over a []uint16 with a stride in pixels
//
// Example usage:
//
//	// Allocate a 640x480 frame
//	img := image565.NewGray(image.Rect(0, 0, 640, 480))
//
//	// Adopt a buffer owned by a display layer, rows padded to 648 pixels
//	img, err := image565.Wrap(pix, 640, 480, 648)
//
//	// Write a mid-gray pixel
//	img.SetGray565(10, 20, image565.Gray565(image565.Pack(128)))
package image565
