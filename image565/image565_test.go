package image565

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name      string
		intensity uint16
		want      uint16
	}{
		{"black", 0, 0x0000},
		{"below first step", 7, 0x0000},
		{"first step", 8, 0x0841},
		{"mid gray", 128, 0x8410},
		{"white", 255, 0xFFDF},
		{"above range overlaps fields", 256, 0x0820},
		{"max uint16", 0xFFFF, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.intensity); got != tt.want {
				t.Errorf("Pack(%d) = 0x%04X, want 0x%04X", tt.intensity, got, tt.want)
			}
		})
	}
}

func TestPackReplicatesChannels(t *testing.T) {
	for v := 0; v < 256; v++ {
		p := Pack(uint16(v))
		q := uint16(v) >> 3
		if r, g, b := p>>11&0x1F, p>>6&0x1F, p&0x1F; r != q || g != q || b != q {
			t.Fatalf("Pack(%d) channels = (%d, %d, %d), want all %d", v, r, g, b, q)
		}
		if p&(1<<5) != 0 {
			t.Fatalf("Pack(%d) = 0x%04X sets green LSB", v, p)
		}
	}
}

func TestGray565RGBA(t *testing.T) {
	tests := []struct {
		name  string
		c     Gray565
		wantR uint32
		wantB uint32
	}{
		{"black", Gray565(Pack(0)), 0, 0},
		{"white", Gray565(Pack(255)), 0xFFFF, 0xFFFF},
		{"level 16", Gray565(Pack(128)), 16 * 0xFFFF / 31, 16 * 0xFFFF / 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, b, a := tt.c.RGBA()
			if r != tt.wantR || b != tt.wantB || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, _, %x, %x), want (%x, _, %x, ffff)", r, b, a, tt.wantR, tt.wantB)
			}
		})
	}
}

func TestGray565ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  uint8
	}{
		{"passthrough", Gray565(Pack(80)), 10},
		{"black", color.Black, 0},
		{"white", color.White, 31},
		{"gray rgb", color.RGBA{0x80, 0x80, 0x80, 0xFF}, 16},
		{"gray8", color.Gray{Y: 0x40}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gray565Model.Convert(tt.input).(Gray565)
			if got.Level() != tt.want {
				t.Errorf("Gray565Model.Convert(%v).Level() = %d, want %d", tt.input, got.Level(), tt.want)
			}
		})
	}
}

func TestNewGray(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"640x480", image.Rect(0, 0, 640, 480), 640, 640 * 480},
		{"2x2", image.Rect(0, 0, 2, 2), 2, 4},
		{"offset rect", image.Rect(10, 20, 14, 22), 4, 8},
		{"empty", image.Rect(0, 0, 0, 4), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewGray(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		pixLen  int
		w, h    int
		stride  int
		wantErr bool
	}{
		{"exact", 16, 4, 4, 4, false},
		{"padded rows", 24, 4, 4, 6, false},
		{"longer slice", 100, 4, 4, 4, false},
		{"stride too short", 16, 4, 4, 3, true},
		{"slice too short", 15, 4, 4, 4, true},
		{"negative width", 16, -4, 4, 4, true},
		{"zero size", 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Wrap(make([]uint16, tt.pixLen), tt.w, tt.h, tt.stride)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Wrap() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidLayout) {
					t.Errorf("Wrap() error = %v, want ErrInvalidLayout", err)
				}
				return
			}
			if w, h := img.Size(); w != tt.w || h != tt.h {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.w, tt.h)
			}
			if img.Pitch() != tt.stride {
				t.Errorf("Pitch() = %d, want %d", img.Pitch(), tt.stride)
			}
		})
	}
}

func TestWrapSharesStorage(t *testing.T) {
	pix := make([]uint16, 6*2)
	img, err := Wrap(pix, 4, 2, 6)
	if err != nil {
		t.Fatal(err)
	}
	img.SetGray565(1, 1, Gray565(0x1234))
	if pix[7] != 0x1234 {
		t.Errorf("pix[7] = 0x%04X, want 0x1234", pix[7])
	}
}

func TestGraySetGet(t *testing.T) {
	img := NewGray(image.Rect(0, 0, 4, 2))
	img.Set(2, 1, color.White)

	if got := img.Gray565At(2, 1); uint16(got) != Pack(255) {
		t.Errorf("Gray565At(2, 1) = 0x%04X, want 0x%04X", uint16(got), Pack(255))
	}
	c, ok := img.At(2, 1).(Gray565)
	if !ok {
		t.Fatalf("At(2, 1) returned %T, want Gray565", img.At(2, 1))
	}
	if c.Level() != 31 {
		t.Errorf("At(2, 1).Level() = %d, want 31", c.Level())
	}
}

func TestGrayOutOfBounds(t *testing.T) {
	img := NewGray(image.Rect(0, 0, 4, 4))

	img.SetGray565(-1, 0, 0xFFFF)
	img.SetGray565(0, -1, 0xFFFF)
	img.SetGray565(4, 0, 0xFFFF)
	img.Set(0, 4, color.White)

	for i, v := range img.Pix {
		if v != 0 {
			t.Errorf("Pix[%d] = 0x%04X after out-of-bounds writes, want 0", i, v)
		}
	}
	if got := img.Gray565At(-1, 0); got != 0 {
		t.Errorf("Gray565At(-1, 0) = 0x%04X, want 0", uint16(got))
	}
}

func TestGrayOffsetRect(t *testing.T) {
	img := NewGray(image.Rect(100, 50, 104, 52))
	img.SetGray565(100, 50, 0x0841)

	if img.Pix[0] != 0x0841 {
		t.Errorf("Pix[0] = 0x%04X, want 0x0841", img.Pix[0])
	}
	if off := img.PixOffset(103, 51); off != 7 {
		t.Errorf("PixOffset(103, 51) = %d, want 7", off)
	}
}

func TestGrayColorModel(t *testing.T) {
	img := NewGray(image.Rect(0, 0, 2, 2))
	if img.ColorModel() != Gray565Model {
		t.Error("ColorModel() did not return Gray565Model")
	}
}
