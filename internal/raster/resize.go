package raster

// SetSize truncates size to integers, reallocates storage for it and clears
// every byte to zero. Existing content is discarded.
//
// Extents are clamped to MaxExtent and the height is reduced further if the
// storage in RGBA would exceed MaxBytes.
func (b *Buffer) SetSize(size Size) {
	w, h := size.dims()
	n := b.format.BytesPerPixel() * w * h

	if cap(b.pix) >= n {
		b.pix = b.pix[:n]
		clear(b.pix)
	} else {
		b.pix = make([]byte, n)
	}
	b.width, b.height = w, h
}

// Resize changes the size while keeping existing content anchored at the
// top-left corner. The overlapping min(old, new) rows and columns are
// preserved byte for byte; every newly exposed byte is set to fill. Sizes
// are clamped as in SetSize.
func (b *Buffer) Resize(size Size, fill byte) {
	w, h := size.dims()
	bpp := b.format.BytesPerPixel()

	b.pix = reflow(b.pix, bpp*b.width, bpp*w, b.height, h, fill)
	b.width, b.height = w, h
}

// reflow relocates rows of pix from srcStride to dstStride in place and
// returns a slice of exactly dstStride*dstRows bytes.
//
// Narrowing walks rows top to bottom: row y lands at y*dstStride, which never
// passes the start of the unread row y at y*srcStride. Widening walks bottom
// to top for the mirror-image reason.
func reflow(pix []byte, srcStride, dstStride, srcRows, dstRows int, fill byte) []byte {
	rows := min(srcRows, dstRows)
	n := dstStride * dstRows

	switch {
	case dstStride < srcStride:
		for y := 0; y < rows; y++ {
			src := pix[y*srcStride : y*srcStride+dstStride]
			copy(pix[y*dstStride:(y+1)*dstStride], src)
		}
		pix = resizeSlice(pix, n)

	case dstStride > srcStride:
		pix = resizeSlice(pix, n)
		for y := rows - 1; y >= 0; y-- {
			dst := pix[y*dstStride : (y+1)*dstStride]
			copy(dst, pix[y*srcStride:(y+1)*srcStride])
			fillBytes(dst[srcStride:], fill)
		}

	default:
		pix = resizeSlice(pix, n)
	}

	fillBytes(pix[rows*dstStride:], fill)
	return pix
}

// resizeSlice returns pix with length n, keeping its leading bytes.
// Bytes past the old length are not guaranteed to be zero.
func resizeSlice(pix []byte, n int) []byte {
	if n <= cap(pix) {
		return pix[:n]
	}
	grown := make([]byte, n)
	copy(grown, pix)
	return grown
}

func fillBytes(p []byte, v byte) {
	for i := range p {
		p[i] = v
	}
}
