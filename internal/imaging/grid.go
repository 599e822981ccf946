package imaging

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// GridOverlay draws a coordinate grid onto buf in place.
//
// Lines are drawn every gridSpacing pixels with the format-aware SetPixel, so
// on a luminance buffer the grid color is stored as its grey mean. When
// showCoordinates is set, each intersection gets an "x,y" label.
func GridOverlay(buf *raster.Buffer, gridSpacing int, showCoordinates bool, gridColor raster.Color) error {
	if gridSpacing <= 0 {
		return fmt.Errorf("grid spacing must be positive, got %d", gridSpacing)
	}

	width := buf.Width()
	height := buf.Height()

	// Draw vertical lines
	for x := gridSpacing; x < width; x += gridSpacing {
		for y := 0; y < height; y++ {
			buf.SetPixel(x, y, gridColor)
		}
	}

	// Draw horizontal lines
	for y := gridSpacing; y < height; y += gridSpacing {
		for x := 0; x < width; x++ {
			buf.SetPixel(x, y, gridColor)
		}
	}

	if showCoordinates {
		for y := gridSpacing; y < height; y += gridSpacing {
			for x := gridSpacing; x < width; x += gridSpacing {
				drawLabel(buf, x+2, y+2, fmt.Sprintf("%d,%d", x, y), raster.White, raster.Black)
			}
		}
	}

	return nil
}

// drawLabel renders text in the 7x13 basic font with its top-left corner at
// (x, y) over a one-pixel padded background box. Pixels falling outside buf
// are skipped.
func drawLabel(buf *raster.Buffer, x, y int, text string, fg, bg raster.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Height

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	for dy := -1; dy <= height; dy++ {
		for dx := -1; dx <= width; dx++ {
			px, py := x+dx, y+dy
			if px < 0 || px >= buf.Width() || py < 0 || py >= buf.Height() {
				continue
			}
			c := bg
			if mask.AlphaAt(dx, dy).A >= 0x80 {
				c = fg
			}
			buf.SetPixel(px, py, c)
		}
	}
}
