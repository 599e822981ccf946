package raster

import "math"

const (
	// MaxExtent bounds every integral width, height and print offset.
	MaxExtent = 1 << 24

	// MaxBytes bounds the storage of a single buffer. It fits an int on
	// every platform.
	MaxBytes = math.MaxInt32
)

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// Size is a width and height in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle given by its top-left origin and size.
type Rect struct {
	Origin Point
	Size   Size
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// R is shorthand for a rectangle at (x, y) with size w x h.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Integral truncates both extents toward zero. Negative extents become 0
// and extents above MaxExtent become MaxExtent.
func (s Size) Integral() Size {
	return Size{Width: extent(s.Width), Height: extent(s.Height)}
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// maxPixelBytes is the widest pixel of any format.
const maxPixelBytes = 4

// dims returns the integral size as ints. The height is clamped so that the
// storage in any format, up to 4*w*h bytes, never exceeds MaxBytes; format
// conversion can then never overflow either.
func (s Size) dims() (int, int) {
	s = s.Integral()
	w, h := int(s.Width), int(s.Height)
	if w > 0 && h > MaxBytes/(maxPixelBytes*w) {
		h = MaxBytes / (maxPixelBytes * w)
	}
	return w, h
}

// Integral floors the origin and truncates the size.
func (r Rect) Integral() Rect {
	return Rect{
		Origin: Point{X: math.Floor(r.Origin.X), Y: math.Floor(r.Origin.Y)},
		Size:   r.Size.Integral(),
	}
}

// MaxX returns the right edge (exclusive).
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge (exclusive).
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.Size.Empty() }

// Intersect returns the overlap of r and o. Disjoint rectangles yield the
// zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.Origin.X, o.Origin.X)
	y0 := math.Max(r.Origin.Y, o.Origin.Y)
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return R(x0, y0, x1-x0, y1-y0)
}

func extent(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Min(math.Trunc(v), MaxExtent)
}
