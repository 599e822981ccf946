// Package pngdec decodes PNG streams into flat 8-bit RGB or RGBA rows.
//
// Decoding happens in two explicit steps. CheckSignature looks only at the
// first SignatureLen bytes and reports ErrSignature when the stream is not a
// PNG at all. Decode runs that check and then the full decode, reporting any
// malformed payload as ErrDecode. Palette, greyscale and sub-byte sample depths
// are expanded and 16-bit samples are reduced to 8 bits, so every row holds
// exactly 3 or 4 bytes per pixel.
package pngdec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG format decoder

	"github.com/disintegration/imaging"
)

// SignatureLen is the number of leading bytes CheckSignature inspects.
const SignatureLen = 4

var signature = [SignatureLen]byte{0x89, 'P', 'N', 'G'}

var (
	// ErrSignature means the data does not start with a PNG signature.
	ErrSignature = errors.New("pngdec: not a PNG stream")

	// ErrDecode means the data carries a PNG signature but could not be decoded.
	ErrDecode = errors.New("pngdec: malformed PNG stream")
)

// Image is a decoded PNG. Each entry of Rows holds Width*BytesPerPixel() bytes.
type Image struct {
	Width    int
	Height   int
	HasAlpha bool
	Rows     [][]byte
}

// BytesPerPixel returns 4 when the image carries transparency and 3 otherwise.
func (m *Image) BytesPerPixel() int {
	if m.HasAlpha {
		return 4
	}
	return 3
}

// Decoder turns encoded image bytes into rows.
type Decoder interface {
	Decode(data []byte) (*Image, error)
}

// PNG is the Decoder for PNG streams.
type PNG struct{}

// Decode implements Decoder.
func (PNG) Decode(data []byte) (*Image, error) {
	return Decode(data)
}

// CheckSignature reports whether data starts with the PNG signature.
// Inputs shorter than SignatureLen never match.
func CheckSignature(data []byte) error {
	if len(data) < SignatureLen || !bytes.Equal(data[:SignatureLen], signature[:]) {
		return ErrSignature
	}
	return nil
}

// Decode validates the signature and decodes data.
//
// # Errors
//
//   - ErrSignature if the leading bytes are not a PNG signature
//   - ErrDecode (wrapping the underlying cause) for truncated or corrupt payloads
func Decode(data []byte) (*Image, error) {
	if err := CheckSignature(data); err != nil {
		return nil, err
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	out := &Image{HasAlpha: hasAlpha(src)}

	// Clone normalises every colour model to 8-bit non-premultiplied RGBA.
	nrgba := imaging.Clone(src)
	out.Width = nrgba.Rect.Dx()
	out.Height = nrgba.Rect.Dy()

	bpp := out.BytesPerPixel()
	out.Rows = make([][]byte, out.Height)
	for y := 0; y < out.Height; y++ {
		line := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+out.Width*4]
		row := make([]byte, out.Width*bpp)
		if bpp == 4 {
			copy(row, line)
		} else {
			for x := 0; x < out.Width; x++ {
				copy(row[x*3:x*3+3], line[x*4:x*4+3])
			}
		}
		out.Rows[y] = row
	}

	return out, nil
}

// hasAlpha reports whether the decoded colour model carries transparency.
// The PNG decoder returns NRGBA models for grey+alpha, truecolour+alpha and
// any tRNS-keyed image; palettes carry alpha per entry.
func hasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64:
		return true
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	default:
		return false
	}
}
