package raster

import (
	"fmt"
	"strings"
)

// Format identifies the per-pixel layout of a Buffer.
type Format int

const (
	// Luminance stores one grey byte per pixel.
	Luminance Format = iota
	// RGB stores red, green and blue bytes.
	RGB
	// RGBA stores red, green, blue and alpha bytes.
	RGBA
)

// BytesPerPixel returns the storage width of one pixel in this format.
func (f Format) BytesPerPixel() int {
	switch f {
	case Luminance:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case Luminance:
		return "luminance"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name as produced by Format.String.
// "gray" and "grey" are accepted as aliases for luminance.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "luminance", "gray", "grey":
		return Luminance, nil
	case "rgb":
		return RGB, nil
	case "rgba":
		return RGBA, nil
	default:
		return 0, fmt.Errorf("unknown pixel format: %q", s)
	}
}
