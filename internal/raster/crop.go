package raster

// NewCrop returns an independent copy of the part of src covered by rect.
//
// rect is made integral and clamped to src's bounds first; a rectangle that
// misses src entirely yields a 0x0 buffer. Format and signal metadata are
// copied from src.
func NewCrop(src *Buffer, rect Rect) *Buffer {
	rect = rect.Integral().Intersect(Rect{Size: src.Size()})

	b := &Buffer{
		format: src.format,
		signal: src.signal.clone(),
	}
	b.SetSize(rect.Size)

	srcStride := src.BytesPerRow()
	dstStride := b.BytesPerRow()
	off := int(rect.Origin.Y)*srcStride + int(rect.Origin.X)*src.BytesPerPixel()

	for y := 0; y < b.height; y++ {
		copy(b.pix[y*dstStride:(y+1)*dstStride], src.pix[off:off+dstStride])
		off += srcStride
	}
	return b
}
