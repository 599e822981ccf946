package raster

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// newFilled returns a w x h buffer of the given format filled with c.
func newFilled(t *testing.T, w, h int, format Format, c Color) *Buffer {
	t.Helper()
	b := NewSized(Sz(float64(w), float64(h)), format)
	b.Fill(c)
	return b
}

// newPattern returns a buffer whose bytes are i%251, so every byte position
// is distinguishable from its neighbours.
func newPattern(t *testing.T, w, h int, format Format) *Buffer {
	t.Helper()
	b := NewSized(Sz(float64(w), float64(h)), format)
	for i := range b.Pix() {
		b.Pix()[i] = byte(i % 251)
	}
	return b
}

// writePNG encodes img into a temp file and returns its path.
func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func checkLength(t *testing.T, b *Buffer) {
	t.Helper()
	if want := b.BytesPerRow() * b.Height(); len(b.Pix()) != want {
		t.Fatalf("len(Pix) = %d, want %d (%dx%d %s)", len(b.Pix()), want, b.Width(), b.Height(), b.Format())
	}
}
