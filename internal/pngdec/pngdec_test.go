package pngdec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encode(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return buf.Bytes()
}

func TestCheckSignature(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		ok   bool
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n"), true},
		{"exactly four bytes", []byte("\x89PNG"), true},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, false},
		{"short", []byte("\x89PN"), false},
		{"empty", nil, false},
		{"lowercase", []byte("\x89png"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSignature(tt.data)
			if tt.ok && err != nil {
				t.Errorf("CheckSignature: unexpected error %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrSignature) {
				t.Errorf("CheckSignature: got %v, want ErrSignature", err)
			}
		})
	}
}

func TestDecode_SignatureFirst(t *testing.T) {
	_, err := Decode([]byte("definitely not a png"))
	if !errors.Is(err, ErrSignature) {
		t.Errorf("Decode: got %v, want ErrSignature", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Error("signature mismatch should not be reported as ErrDecode")
	}
}

func TestDecode_CorruptPayload(t *testing.T) {
	data := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

	_, err := Decode(data)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Decode: got %v, want ErrDecode", err)
	}
}

func TestDecode_Formats(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(1, 1, color.Gray{Y: 77})

	opaque := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range opaque.Pix {
		opaque.Pix[i] = 255
	}
	opaque.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})

	alpha := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	alpha.SetNRGBA(1, 1, color.NRGBA{10, 20, 30, 40})

	// Two colours encode at 1 bit per sample.
	twoColor := image.NewPaletted(image.Rect(0, 0, 3, 2), color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{200, 100, 50, 255},
	})
	twoColor.SetColorIndex(1, 1, 1)

	keyed := image.NewPaletted(image.Rect(0, 0, 3, 2), color.Palette{
		color.NRGBA{0, 0, 0, 0},
		color.NRGBA{200, 100, 50, 255},
	})
	keyed.SetColorIndex(1, 1, 1)

	deep := image.NewRGBA64(image.Rect(0, 0, 3, 2))
	for i := range deep.Pix {
		deep.Pix[i] = 0xff
	}
	deep.SetRGBA64(1, 1, color.RGBA64{0x1234, 0x5678, 0x9abc, 0xffff})

	tests := []struct {
		name     string
		img      image.Image
		hasAlpha bool
		want     []byte
	}{
		{"gray", gray, false, []byte{77, 77, 77}},
		{"truecolor", opaque, false, []byte{10, 20, 30}},
		{"truecolor alpha", alpha, true, []byte{10, 20, 30, 40}},
		{"palette 1-bit", twoColor, false, []byte{200, 100, 50}},
		{"palette trns", keyed, true, []byte{200, 100, 50, 255}},
		{"16-bit", deep, false, []byte{0x12, 0x56, 0x9a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := PNG{}.Decode(encode(t, tt.img))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if m.Width != 3 || m.Height != 2 {
				t.Fatalf("size: got %dx%d, want 3x2", m.Width, m.Height)
			}
			if m.HasAlpha != tt.hasAlpha {
				t.Errorf("HasAlpha: got %v, want %v", m.HasAlpha, tt.hasAlpha)
			}
			if len(m.Rows) != 2 {
				t.Fatalf("rows: got %d, want 2", len(m.Rows))
			}

			bpp := m.BytesPerPixel()
			for y, row := range m.Rows {
				if len(row) != 3*bpp {
					t.Fatalf("row %d: got %d bytes, want %d", y, len(row), 3*bpp)
				}
			}
			if got := m.Rows[1][bpp : 2*bpp]; !bytes.Equal(got, tt.want) {
				t.Errorf("pixel(1,1): got %v, want %v", got, tt.want)
			}
		})
	}
}
