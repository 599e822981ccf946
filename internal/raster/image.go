package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// Image returns a copy of the buffer as a non-premultiplied RGBA image.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	bpp := b.format.BytesPerPixel()
	for i, j := 0, 0; i < len(img.Pix); i, j = i+4, j+bpp {
		c := readPixel(b.format, b.pix[j:])
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// FromImage converts any image.Image into a buffer of the given format. The
// image's bounds are translated so that its top-left pixel lands at (0, 0).
func FromImage(img image.Image, format Format) *Buffer {
	src := imaging.Clone(img)

	b := New()
	b.format = format
	b.SetSize(Sz(float64(src.Rect.Dx()), float64(src.Rect.Dy())))

	bpp := format.BytesPerPixel()
	for i, j := 0, 0; j < len(b.pix); i, j = i+4, j+bpp {
		writePixel(format, b.pix[j:], Color{
			R: src.Pix[i+0],
			G: src.Pix[i+1],
			B: src.Pix[i+2],
			A: src.Pix[i+3],
		})
	}
	return b
}
