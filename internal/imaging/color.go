package imaging

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
//
// Buffers without an alpha channel always report 255.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel value in several representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

func newColorResult(c raster.Color) ColorResult {
	return ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  toHSL(c),
	}
}

// SampleColor returns the pixel at (x, y).
//
// # Errors
//
// Returns an error if (x, y) lies outside the buffer. This is the checked
// counterpart of raster.Buffer.Pixel for client-supplied coordinates.
func SampleColor(buf *raster.Buffer, x, y int) (*ColorResult, error) {
	if x < 0 || x >= buf.Width() || y < 0 || y >= buf.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside buffer bounds %dx%d", x, y, buf.Width(), buf.Height())
	}
	result := newColorResult(buf.Pixel(x, y))
	return &result, nil
}

// SetColor writes c at (x, y) after the same bounds check as SampleColor.
func SetColor(buf *raster.Buffer, x, y int, c raster.Color) error {
	if x < 0 || x >= buf.Width() || y < 0 || y >= buf.Height() {
		return fmt.Errorf("coordinates (%d,%d) outside buffer bounds %dx%d", x, y, buf.Width(), buf.Height())
	}
	buf.SetPixel(x, y, c)
	return nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples from multiple points in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point. If any point is out of bounds no
// partial result is returned.
func SampleColorsMulti(buf *raster.Buffer, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(buf, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within a buffer.
//
// (X1, Y1) is inclusive and (X2, Y2) is exclusive.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Rect converts the region to a raster rectangle.
func (r Region) Rect() raster.Rect {
	return raster.R(float64(r.X1), float64(r.Y1), float64(r.X2-r.X1), float64(r.Y2-r.Y1))
}

// ColorFrequency represents a color and its occurrence frequency.
type ColorFrequency struct {
	Hex        string    `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64   `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGBA       RGBAColor `json:"rgba"`       // Quantized components; alpha is always 255
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in buf, or
// in region when it is non-nil. The region is clamped to the buffer.
//
// # Color Quantization
//
// Components are quantized to multiples of 16 before counting:
//
//	quantized = (original / 16) * 16
//
// so #F0F0F0 and #FAFAFA are counted as the same color.
func DominantColors(buf *raster.Buffer, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := raster.Rect{Size: buf.Size()}
	if region != nil {
		bounds = region.Rect().Integral().Intersect(bounds)
	}
	x0, y0 := int(bounds.Origin.X), int(bounds.Origin.Y)
	x1, y1 := int(bounds.MaxX()), int(bounds.MaxY())

	type rgb struct{ r, g, b uint8 }
	counts := make(map[rgb]int)
	total := 0

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := buf.Pixel(x, y)
			counts[rgb{c.R / 16 * 16, c.G / 16 * 16, c.B / 16 * 16}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for k, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", k.r, k.g, k.b),
			Percentage: float64(n) / float64(total) * 100,
			RGBA:       RGBAColor{R: k.r, G: k.g, B: k.b, A: 255},
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// ParseHexColor parses "#RRGGBB", "#RGB" or "#RRGGBBAA". The leading '#' is
// optional. Colors without an alpha byte are opaque.
func ParseHexColor(hex string) (raster.Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if hex == "" {
		return raster.Color{}, fmt.Errorf("empty color string")
	}

	alpha := uint8(255)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return raster.Color{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}
	if len(hex) != 3 && len(hex) != 6 {
		return raster.Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return raster.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return raster.Color{R: r, G: g, B: b, A: alpha}, nil
}

// toHSL converts through go-colorful and reports whole degrees and percents.
func toHSL(c raster.Color) HSLColor {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := cf.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
