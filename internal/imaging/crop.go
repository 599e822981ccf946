package imaging

import (
	"fmt"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// Crop copies the region (x1,y1)-(x2,y2) of buf into a new buffer and
// optionally rescales it.
//
// The region is clamped to the buffer like raster.NewCrop; a region that
// misses the buffer yields an empty result. An inverted region is an error.
// Scale values other than 1 (and > 0) resample with a Lanczos filter.
func Crop(buf *raster.Buffer, x1, y1, x2, y2 int, scale float64) (*raster.Buffer, error) {
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := raster.NewCrop(buf, Region{X1: x1, Y1: y1, X2: x2, Y2: y2}.Rect())

	if scale != 1.0 && scale > 0 {
		return Scale(cropped, scale)
	}
	return cropped, nil
}

// CropQuadrant extracts a named region: top-left, top-right, bottom-left,
// bottom-right, top-half, bottom-half, left-half, right-half or center.
func CropQuadrant(buf *raster.Buffer, region string, scale float64) (*raster.Buffer, error) {
	w := buf.Width()
	h := buf.Height()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		// Center 50% of the buffer
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return nil, fmt.Errorf("unknown region: %s", region)
	}

	return Crop(buf, x1, y1, x2, y2, scale)
}

// Scale resamples buf by factor into a new buffer of the same format and
// signal metadata. Each output extent is at least one pixel, and the result
// must fit CheckSize.
func Scale(buf *raster.Buffer, factor float64) (*raster.Buffer, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("invalid scale factor: %v", factor)
	}
	if buf.Width() == 0 || buf.Height() == 0 {
		return raster.NewCrop(buf, raster.Rect{Size: buf.Size()}), nil
	}

	fw := float64(buf.Width()) * factor
	fh := float64(buf.Height()) * factor
	if err := CheckSize(fw, fh, buf.Format()); err != nil {
		return nil, fmt.Errorf("invalid scale factor %v: %w", factor, err)
	}
	newWidth := max(1, int(fw))
	newHeight := max(1, int(fh))

	resized := imaging.Resize(buf.Image(), newWidth, newHeight, imaging.Lanczos)

	out := raster.FromImage(resized, buf.Format())
	out.SetSignal(buf.Signal())
	return out, nil
}
