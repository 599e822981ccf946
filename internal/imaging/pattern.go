package imaging

import (
	"fmt"
	"strings"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// smpteBars are the seven 75% SMPTE color bars, left to right.
var smpteBars = [7]raster.Color{
	{R: 192, G: 192, B: 192, A: 255}, // Gray
	{R: 192, G: 192, B: 0, A: 255},   // Yellow
	{R: 0, G: 192, B: 192, A: 255},   // Cyan
	{R: 0, G: 192, B: 0, A: 255},     // Green
	{R: 192, G: 0, B: 192, A: 255},   // Magenta
	{R: 192, G: 0, B: 0, A: 255},     // Red
	{R: 0, G: 0, B: 192, A: 255},     // Blue
}

// ColorBars returns a width x height buffer holding the SMPTE color bar test
// pattern. A non-empty label is drawn centered near the bottom edge.
func ColorBars(width, height int, format raster.Format, label string) (*raster.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid pattern size %dx%d", width, height)
	}
	if err := CheckSize(float64(width), float64(height), format); err != nil {
		return nil, err
	}

	buf := raster.NewSized(raster.Sz(float64(width), float64(height)), format)

	barWidth := max(1, width/len(smpteBars))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bar := min(x/barWidth, len(smpteBars)-1)
			buf.SetPixel(x, y, smpteBars[bar])
		}
	}

	if label != "" {
		labelWidth := 7 * len(label)
		drawLabel(buf, (width-labelWidth)/2, height-16, label, raster.White, raster.Black)
	}

	return buf, nil
}

// SignalPreset returns the metadata for a named broadcast standard.
//
// Sample rates are four times the color subcarrier. Burst phases are in
// degrees: NTSC bursts at 180, PAL alternates between +135 and -135 on
// successive lines. Levels are fractions of peak white.
func SignalPreset(standard string) (raster.Signal, error) {
	switch strings.ToLower(standard) {
	case "ntsc":
		return raster.Signal{
			SampleRate:       raster.DefaultSampleRate,
			BlackLevel:       0.075,
			WhiteLevel:       1,
			Interlace:        0.5,
			Subcarrier:       3579545.4545,
			ColorBurst:       []float64{180},
			PhaseAlternation: []bool{false},
		}, nil
	case "pal":
		return raster.Signal{
			SampleRate:       17734475,
			BlackLevel:       0,
			WhiteLevel:       1,
			Interlace:        0.5,
			Subcarrier:       4433618.75,
			ColorBurst:       []float64{135, -135},
			PhaseAlternation: []bool{false, true},
		}, nil
	case "default", "":
		return raster.DefaultSignal(), nil
	default:
		return raster.Signal{}, fmt.Errorf("unknown signal standard: %s", standard)
	}
}
