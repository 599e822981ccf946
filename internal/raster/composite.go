package raster

import "math"

// Darken combines two colours channel by channel as max(0, p1+p2-255), the
// way two layers of ink overlap. White is the identity and black absorbs.
// The result is opaque.
func Darken(p1, p2 Color) Color {
	return Color{
		R: darkenChannel(p1.R, p2.R),
		G: darkenChannel(p1.G, p2.G),
		B: darkenChannel(p1.B, p2.B),
		A: 0xff,
	}
}

func darkenChannel(a, b uint8) uint8 {
	v := int(a) + int(b) - 0xff
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// Print composites other onto b with its top-left corner at origin.
//
// b first grows to PrintExtent(other, origin); newly exposed area is filled
// with 0xff bytes (white, opaque). Each pixel of other is then combined with
// the pixel underneath using Darken.
//
// b never shifts. A negative origin therefore does not grow b to the full
// union of both rectangles: the parts of other left of or above (0, 0) are
// clipped instead. The origin is floored and clamped to ±MaxExtent, and an
// origin with a NaN or infinite coordinate prints nothing.
func (b *Buffer) Print(other *Buffer, origin Point) {
	ox, oy, ok := placement(origin)
	if !ok || other.width == 0 || other.height == 0 {
		return
	}
	if other == b {
		other = NewCrop(b, Rect{Size: b.Size()})
	}

	w, h := max(b.width, ox+other.width), max(b.height, oy+other.height)
	if w != b.width || h != b.height {
		b.Resize(Sz(float64(w), float64(h)), 0xff)
		Logger().Debug("raster: print grew destination", "width", b.width, "height", b.height)
	}

	// Resize may clamp, so clip against the size b actually has.
	x0, x1 := max(0, -ox), min(other.width, b.width-ox)
	y0, y1 := max(0, -oy), min(other.height, b.height-oy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p1 := b.Pixel(x+ox, y+oy)
			p2 := other.Pixel(x, y)
			b.SetPixel(x+ox, y+oy, Darken(p1, p2))
		}
	}
}

// PrintExtent returns the size b has after Print(other, origin), before any
// clamping to MaxBytes.
func (b *Buffer) PrintExtent(other *Buffer, origin Point) Size {
	ox, oy, ok := placement(origin)
	if !ok || other.width == 0 || other.height == 0 {
		return b.Size()
	}
	return Sz(float64(max(b.width, ox+other.width)), float64(max(b.height, oy+other.height)))
}

// placement floors origin and clamps it to ±MaxExtent. It reports false for
// NaN or infinite coordinates.
func placement(origin Point) (x, y int, ok bool) {
	if math.IsNaN(origin.X) || math.IsNaN(origin.Y) ||
		math.IsInf(origin.X, 0) || math.IsInf(origin.Y, 0) {
		return 0, 0, false
	}
	return clampOffset(origin.X), clampOffset(origin.Y), true
}

func clampOffset(v float64) int {
	return int(math.Max(-MaxExtent, math.Min(MaxExtent, math.Floor(v))))
}

// Fill sets every pixel to c using the format's encoding.
func (b *Buffer) Fill(c Color) {
	bpp := b.format.BytesPerPixel()
	for i := 0; i < len(b.pix); i += bpp {
		writePixel(b.format, b.pix[i:], c)
	}
}
