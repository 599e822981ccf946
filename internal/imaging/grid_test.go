package imaging

import (
	"testing"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

var gray = raster.Color{R: 128, G: 128, B: 128, A: 255}

func TestGridOverlay(t *testing.T) {
	buf := createFilledBuffer(100, 100, raster.RGBA, gray)
	red := raster.Color{R: 255, A: 255}

	if err := GridOverlay(buf, 25, false, red); err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	if buf.Width() != 100 || buf.Height() != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", buf.Width(), buf.Height())
	}
}

func TestGridOverlay_GridLines(t *testing.T) {
	buf := createFilledBuffer(100, 100, raster.RGB, gray)
	red := raster.Color{R: 255, A: 255}

	if err := GridOverlay(buf, 25, false, red); err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want raster.Color
	}{
		{"vertical line", 25, 10, red},
		{"horizontal line", 10, 50, red},
		{"intersection", 75, 75, red},
		{"between lines", 10, 10, gray},
		{"origin untouched", 0, 0, gray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buf.Pixel(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel(%d,%d): got %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGridOverlay_Luminance(t *testing.T) {
	buf := createFilledBuffer(50, 50, raster.Luminance, raster.Black)

	// (30+60+90)/3 = 60
	if err := GridOverlay(buf, 10, false, raster.Color{R: 30, G: 60, B: 90, A: 255}); err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	if got := buf.Pix()[10]; got != 60 {
		t.Errorf("grid byte on luminance buffer: got %d, want 60", got)
	}
}

func TestGridOverlay_WithCoordinates(t *testing.T) {
	buf := createFilledBuffer(100, 100, raster.RGBA, gray)

	if err := GridOverlay(buf, 50, true, raster.Color{R: 255, A: 255}); err != nil {
		t.Fatalf("GridOverlay with coordinates failed: %v", err)
	}

	// The label box for "50,50" starts one pixel left of (52,52).
	if got := buf.Pixel(51, 51); got != raster.Black {
		t.Errorf("label background: got %+v, want black", got)
	}
}

func TestGridOverlay_DifferentSpacings(t *testing.T) {
	spacings := []int{10, 25, 50, 100, 200}

	for _, spacing := range spacings {
		buf := createFilledBuffer(100, 100, raster.RGB, gray)
		if err := GridOverlay(buf, spacing, false, raster.White); err != nil {
			t.Errorf("GridOverlay with spacing %d failed: %v", spacing, err)
		}
	}
}

func TestGridOverlay_InvalidSpacing(t *testing.T) {
	buf := createFilledBuffer(10, 10, raster.RGB, gray)

	for _, spacing := range []int{0, -5} {
		if err := GridOverlay(buf, spacing, false, raster.White); err == nil {
			t.Errorf("expected error for spacing %d", spacing)
		}
	}
}

func TestDrawLabel(t *testing.T) {
	buf := raster.NewSized(raster.Sz(100, 100), raster.RGBA)

	drawLabel(buf, 10, 10, "50,50", raster.White, raster.Black)

	hasWhite := false
	hasBlack := false
	for y := 9; y < 24; y++ {
		for x := 9; x < 46; x++ {
			c := buf.Pixel(x, y)
			if c == raster.White {
				hasWhite = true
			}
			if c == raster.Black {
				hasBlack = true
			}
		}
	}

	if !hasWhite {
		t.Error("label should have white pixels (text)")
	}
	if !hasBlack {
		t.Error("label should have dark pixels (background)")
	}
}

func TestDrawLabel_BoundsCheck(t *testing.T) {
	buf := raster.NewSized(raster.Sz(20, 20), raster.RGB)

	// These should not panic even if label extends past bounds
	drawLabel(buf, 15, 15, "100,100", raster.White, raster.Black)
	drawLabel(buf, 0, 0, "0,0", raster.White, raster.Black)
	drawLabel(buf, -5, -5, "test", raster.White, raster.Black)
}

func TestDrawLabel_EmptyString(t *testing.T) {
	buf := raster.NewSized(raster.Sz(50, 50), raster.Luminance)

	// Should not panic on empty string
	drawLabel(buf, 10, 10, "", raster.White, raster.Black)
}
