package raster

import (
	"errors"
	"fmt"
	"os"

	"github.com/ironsheep/raster-tools-mcp/internal/pngdec"
)

var (
	// ErrOpen means the image source could not be opened or read.
	ErrOpen = errors.New("raster: cannot open image")

	// ErrDecode means the source was read but is not a decodable image.
	// Signature mismatches additionally match pngdec.ErrSignature.
	ErrDecode = errors.New("raster: cannot decode image")
)

// NewFromFile returns a buffer loaded from the PNG file at path.
func NewFromFile(path string) (*Buffer, error) {
	b := New()
	if err := b.Load(path); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromBytes returns a buffer decoded from in-memory PNG data.
func NewFromBytes(data []byte) (*Buffer, error) {
	b := New()
	if err := b.LoadBytes(data); err != nil {
		return nil, err
	}
	return b, nil
}

// Load replaces the buffer's content with the PNG file at path.
//
// The format becomes RGBA when the image carries transparency and RGB
// otherwise. On error the buffer is left unchanged.
func (b *Buffer) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		Logger().Debug("raster: open failed", "path", path, "err", err)
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if err := b.LoadBytes(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadBytes replaces the buffer's content with the PNG encoded in data.
// On error the buffer is left unchanged.
func (b *Buffer) LoadBytes(data []byte) error {
	return b.decode(pngdec.PNG{}, data)
}

func (b *Buffer) decode(dec pngdec.Decoder, data []byte) error {
	img, err := dec.Decode(data)
	if err != nil {
		Logger().Debug("raster: decode failed", "bytes", len(data), "err", err)
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	format := RGB
	if img.HasAlpha {
		format = RGBA
	}
	stride := format.BytesPerPixel() * img.Width

	if len(img.Rows) != img.Height {
		return fmt.Errorf("%w: got %d rows, want %d", ErrDecode, len(img.Rows), img.Height)
	}
	pix := make([]byte, stride*img.Height)
	for y, row := range img.Rows {
		if len(row) < stride {
			return fmt.Errorf("%w: row %d has %d bytes, want %d", ErrDecode, y, len(row), stride)
		}
		copy(pix[y*stride:(y+1)*stride], row)
	}

	// Size, format and storage change together so they never disagree.
	b.format = format
	b.width, b.height = img.Width, img.Height
	b.pix = pix

	Logger().Debug("raster: decoded image",
		"width", img.Width, "height", img.Height, "format", format.String())
	return nil
}
