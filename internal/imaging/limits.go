package imaging

import (
	"fmt"
	"math"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// MaxBufferBytes bounds the storage of any buffer created or grown on behalf
// of a client.
const MaxBufferBytes = 256 << 20

// CheckSize returns an error when a w x h buffer in format would exceed
// raster.MaxExtent in either direction or MaxBufferBytes in total.
//
// Extents are truncated first and negative or NaN extents count as 0, the way
// the raster package clamps them.
func CheckSize(w, h float64, format raster.Format) error {
	w, h = checkExtent(w), checkExtent(h)
	if w > raster.MaxExtent || h > raster.MaxExtent {
		return fmt.Errorf("size %gx%g exceeds the maximum extent %d", w, h, raster.MaxExtent)
	}
	if n := w * h * float64(format.BytesPerPixel()); n > MaxBufferBytes {
		return fmt.Errorf("size %gx%g %s needs %.0f bytes, limit is %d", w, h, format, n, MaxBufferBytes)
	}
	return nil
}

func checkExtent(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return math.Trunc(v)
}
