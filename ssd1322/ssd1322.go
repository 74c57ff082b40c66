// Package ssd1322 presents raster2x frames on an SSD1322 OLED via SPI.
//
// The SSD1322 is a 4-bit grayscale controller with 480×128 pixels of display
// RAM. Frames are image565.Gray buffers; each pixel's 5-bit gray level is
// reduced to the panel's 16 levels. Frames whose size differs from the panel
// are scaled with nearest-neighbour sampling.
//
// Only the rectangle that changed since the previous frame is sent.
package ssd1322

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"time"

	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/raster2x"
	"github.com/flavioheleno/raster2x/image565"
)

const (
	ramWidth = 480 // Pixels per row of display RAM
	colUnit  = 4   // Pixels per column address
)

// ErrHalted is returned by every operation after Halt.
var ErrHalted = errors.New("ssd1322: halted")

// Opts is the configuration for the SSD1322 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 256, multiple of 4, ≤480)
	H int // Height (default: 64, ≤128)

	// Rotation and mirroring
	Rotated       bool // 180° rotation
	Sequential    bool // Sequential COM pin configuration
	SwapTopBottom bool // Swap top/bottom display halves

	// Optional hardware reset pin
	RST gpio.PinIO
}

func (o *Opts) validate() error {
	if o.W <= 0 || o.W%colUnit != 0 || o.W > ramWidth {
		return errors.New("ssd1322: width must be a multiple of 4 between 4 and 480")
	}
	if o.H <= 0 || o.H > 128 {
		return errors.New("ssd1322: height must be between 1 and 128")
	}
	return nil
}

// Dev is the device handle for the SSD1322 display.
type Dev struct {
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinIO

	rect      image.Rectangle
	colOffset int // First RAM column address used, centers the panel in RAM

	frame  []byte         // Next frame, two pixels per byte, high nibble first
	shown  []byte         // Frame currently in display RAM
	scaled *image565.Gray // Scratch for frames of a different size

	halted bool
}

// NewSPI creates a new SSD1322 device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0, 8-bit transfers.
// opts can be nil to use defaults (256x64 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 256, H: 64}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1322: connect: %w", err)
	}

	stride := opts.W / 2
	d := &Dev{
		c:         c,
		dc:        dc,
		rst:       opts.RST,
		rect:      image.Rect(0, 0, opts.W, opts.H),
		colOffset: (ramWidth - opts.W) / 2 / colUnit,
		frame:     make([]byte, stride*opts.H),
		shown:     make([]byte, stride*opts.H),
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}

	raster2x.Logger().Info("ssd1322: panel ready", "width", opts.W, "height", opts.H)
	return d, nil
}

func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1322: failed to pull RST low: %w", err)
		}
		time.Sleep(200 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1322: failed to pull RST high: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
	}

	cmds := []byte{
		0xFD, 0x12, // Unlock command codes
		0xAE,       // Display OFF
		0xB3, 0x91, // Clock divider and oscillator frequency
		0xCA, byte(opts.H - 1), // MUX ratio
		0xA2, 0x00, // Display offset
		0xA1, 0x00, // Start line
	}

	remap1, remap2 := byte(0x14), byte(0x11)
	if opts.Rotated {
		remap1 = 0x06
	}
	if opts.Sequential {
		remap2 &^= 0x10
	}
	if opts.SwapTopBottom {
		remap1 ^= 0x10
	}

	cmds = append(cmds,
		0xA0, remap1, remap2, // Remap and dual COM mode
		0xAB, 0x01, // Enable internal VDD
		0xB4, 0xA0, 0xFD, // External VSL, enhanced low GS display quality
		0xC1, 0xFF, // Contrast current
		0xC7, 0x0F, // Master contrast
		0xB9,       // Default linear grayscale table
		0xB1, 0xE2, // Phase length
		0xD1, 0x82, 0x20, // Display enhancement B
		0xBB, 0x1F, // Pre-charge voltage
		0xB6, 0x08, // Second pre-charge period
		0xBE, 0x07, // VCOMH voltage
		0xA6, // Normal display mode
		0xA9, // Exit partial display mode
	)
	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Display RAM starts out undefined; shown is all zeros.
	if err := d.writeRect(0, 0, d.rect.Dx()/colUnit, d.rect.Dy(), d.shown); err != nil {
		return err
	}
	return d.sendCommands([]byte{0xAF}) // Display ON
}

func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeRect sends pixels to a window of cols column addresses (4 pixels each)
// by rows lines, starting at column address col and row.
func (d *Dev) writeRect(col, row, cols, rows int, pixels []byte) error {
	start := d.colOffset + col
	if err := d.sendCommands([]byte{
		0x15, byte(start), byte(start + cols - 1), // Column address
		0x75, byte(row), byte(row + rows - 1), // Row address
		0x5C, // Write RAM
	}); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// Bounds returns the panel bounds.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Present shows src on the panel, sending only what changed since the
// previous call.
func (d *Dev) Present(src *image565.Gray) error {
	if d.halted {
		return ErrHalted
	}

	if src.Rect.Size() != d.rect.Size() {
		if d.scaled == nil {
			d.scaled = image565.NewGray(d.rect)
		}
		xdraw.NearestNeighbor.Scale(d.scaled, d.rect, src, src.Rect, xdraw.Src, nil)
		src = d.scaled
	}
	d.pack(src)

	minCol, maxCol, minRow, maxRow := d.calculateDiff()
	if minCol > maxCol {
		return nil
	}

	region := d.extractRegion(minCol, maxCol, minRow, maxRow)
	cols := (maxCol - minCol + 1) / 2
	if err := d.writeRect(minCol/2, minRow, cols, maxRow-minRow+1, region); err != nil {
		return err
	}
	raster2x.Logger().Debug("ssd1322: region written",
		"x", minCol*2, "y", minRow, "w", cols*colUnit, "h", maxRow-minRow+1)

	copy(d.shown, d.frame)
	return nil
}

// pack converts src, which must match the panel size, into d.frame.
func (d *Dev) pack(src *image565.Gray) {
	w, h := d.rect.Dx(), d.rect.Dy()
	stride := w / 2
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		out := d.frame[y*stride : (y+1)*stride]
		for i := range out {
			hi := image565.Gray565(row[2*i]).Level() >> 1
			lo := image565.Gray565(row[2*i+1]).Level() >> 1
			out[i] = hi<<4 | lo
		}
	}
}

// calculateDiff finds the byte columns and rows that differ between the
// shown and next frames. Columns are aligned to whole column addresses
// (2 bytes). It returns minCol > maxCol when nothing changed.
func (d *Dev) calculateDiff() (minCol, maxCol, minRow, maxRow int) {
	stride := d.rect.Dx() / 2
	height := d.rect.Dy()

	minCol, maxCol = stride, -1
	minRow, maxRow = height, -1

	for y := 0; y < height; y++ {
		prev := d.shown[y*stride : (y+1)*stride]
		next := d.frame[y*stride : (y+1)*stride]
		if bytes.Equal(prev, next) {
			continue
		}
		minRow = min(minRow, y)
		maxRow = max(maxRow, y)
		for x := range next {
			if prev[x] != next[x] {
				minCol = min(minCol, x)
				maxCol = max(maxCol, x)
			}
		}
	}
	if minCol > maxCol {
		return minCol, maxCol, minRow, maxRow
	}

	minCol &^= 1
	maxCol |= 1
	return minCol, maxCol, minRow, maxRow
}

// extractRegion copies the bytes of the inclusive region out of d.frame.
func (d *Dev) extractRegion(minCol, maxCol, minRow, maxRow int) []byte {
	stride := d.rect.Dx() / 2
	width := maxCol - minCol + 1

	out := make([]byte, 0, width*(maxRow-minRow+1))
	for y := minRow; y <= maxRow; y++ {
		start := y*stride + minCol
		out = append(out, d.frame[start:start+width]...)
	}
	return out
}

// SetContrast sets the contrast current (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands([]byte{0xC1, contrast})
}

// Invert swaps black and white on the panel.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(0xA6)
	if invert {
		mode = 0xA7
	}
	return d.sendCommands([]byte{mode})
}

// Halt turns the display off. The device rejects further calls.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	return d.sendCommands([]byte{0xAE})
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1322.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
