// Package raster2x draws points, lines, ellipses and filled ellipses into a
// 16-bit grayscale pixel buffer at double the logical resolution.
//
// # Coordinate System
//
// All drawing calls take logical coordinates. One logical unit covers a 2×2
// block of physical pixels, so a 640×480 buffer has a 320×240 logical space.
// The last logical row and column are never written: a point is drawn only when
//
//	0 <= x < width/2-1 && 0 <= y < height/2-1
//
// Points outside that range are silently dropped. No drawing call returns an
// error or panics for out-of-range geometry.
//
// # Pixel Format
//
// Pixels are packed with image565.Pack: the intensity's low 3 bits are
// discarded and the remaining 5-bit gray level is replicated into the red,
// green and blue fields. Intensities 0-255 span the full gray range.
//
// # Buffers
//
// The canvas never allocates or frees pixel storage. It borrows any Buffer,
// typically an *image565.Gray, either allocated by image565.NewGray or wrapped
// around memory owned by a display layer with image565.Wrap:
//
//	img := image565.NewGray(image.Rect(0, 0, 640, 480))
//	c, err := raster2x.NewCanvas(img)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Drawing a Frame
//
// A frame is cleared once and then drawn with independent calls. Calls share
// no state except the buffer itself, and a canvas must not be drawn on from
// more than one goroutine at a time:
//
//	c.Clear()
//	c.DrawRect(10, 10, 309, 229, 128)
//	c.DrawLine(0, 0, 100, 37, 255)
//	c.DrawEllipse(160, 120, 20, 10, 255)
//	c.FillEllipse(160, 200, 6, 3, 64)
//	c.DrawText(4, 10, "12", 255)
//
// Presenting the frame is up to the caller; see the blit and ssd1322 packages.
//
// # Lines
//
// Lines are normalized to run top to bottom. Horizontal, vertical and 45°
// lines are stepped directly. All other lines use a 16-bit fixed-point error
// accumulator whose unsigned overflow advances the minor axis. Both endpoints
// are always drawn, and drawing a line in either direction yields the same
// pixels.
//
// # Ellipses
//
// Axis-aligned ellipses are traced by stepping a circle of the larger radius
// in 1/64 pixel increments and scaling the other axis. Mirrored points sit at
// cx+a and cx-a-1 (likewise for y), so the shape is symmetric about the corner
// between logical pixels. A zero radius degrades to a point or a line through
// the center.
package raster2x
