package raster

// Color is an 8-bit per channel colour value.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Common colours.
var (
	Black = Color{R: 0, G: 0, B: 0, A: 0xff}
	White = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Pixel decodes the pixel at (x, y). Coordinates are not checked: the caller
// guarantees 0 <= x < Width() and 0 <= y < Height().
//
// Luminance pixels decode to r = g = b = stored byte. Formats without an
// alpha channel report alpha 255.
func (b *Buffer) Pixel(x, y int) Color {
	return readPixel(b.format, b.pix[b.offset(x, y):])
}

// SetPixel encodes c at (x, y). Coordinates are not checked.
//
// Luminance stores the unweighted integer mean (r+g+b)/3. RGB drops alpha.
// No blending is performed.
func (b *Buffer) SetPixel(x, y int, c Color) {
	writePixel(b.format, b.pix[b.offset(x, y):], c)
}

func (b *Buffer) offset(x, y int) int {
	bpp := b.format.BytesPerPixel()
	return y*bpp*b.width + x*bpp
}

func readPixel(f Format, p []byte) Color {
	switch f {
	case Luminance:
		return Color{R: p[0], G: p[0], B: p[0], A: 0xff}
	case RGB:
		return Color{R: p[0], G: p[1], B: p[2], A: 0xff}
	case RGBA:
		return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
	default:
		return Color{}
	}
}

func writePixel(f Format, p []byte, c Color) {
	switch f {
	case Luminance:
		p[0] = uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
	case RGB:
		p[0], p[1], p[2] = c.R, c.G, c.B
	case RGBA:
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
}
