package raster

// DefaultSampleRate is four times the NTSC colour subcarrier, in Hz.
const DefaultSampleRate = 14318180

// Signal carries the playback parameters that travel with a frame. None of
// these values influence geometry or pixel operations.
type Signal struct {
	SampleRate       float64   `json:"sample_rate"`
	BlackLevel       float64   `json:"black_level"`
	WhiteLevel       float64   `json:"white_level"`
	Interlace        float64   `json:"interlace"`
	Subcarrier       float64   `json:"subcarrier"`
	ColorBurst       []float64 `json:"color_burst"`
	PhaseAlternation []bool    `json:"phase_alternation"`
}

// DefaultSignal returns the metadata a new buffer starts with.
func DefaultSignal() Signal {
	return Signal{
		SampleRate:       DefaultSampleRate,
		BlackLevel:       0,
		WhiteLevel:       1,
		Interlace:        0,
		Subcarrier:       0,
		ColorBurst:       []float64{0},
		PhaseAlternation: []bool{false},
	}
}

func (s Signal) clone() Signal {
	s.ColorBurst = append([]float64(nil), s.ColorBurst...)
	s.PhaseAlternation = append([]bool(nil), s.PhaseAlternation...)
	return s
}

// Buffer is a row-major pixel buffer. len(Pix()) is always
// BytesPerRow() * Height().
type Buffer struct {
	format Format
	width  int
	height int
	pix    []byte
	signal Signal
}

// New returns an empty 0x0 RGBA buffer with default signal metadata.
func New() *Buffer {
	return &Buffer{
		format: RGBA,
		signal: DefaultSignal(),
	}
}

// NewSized returns a zero-filled buffer of the given size and format.
func NewSized(size Size, format Format) *Buffer {
	b := New()
	b.format = format
	b.SetSize(size)
	return b
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// SetFormat converts every pixel to the new format. Values are decoded in
// the old format and re-encoded in the new one, so RGB to Luminance averages
// the channels and Luminance to RGBA reports an opaque grey.
func (b *Buffer) SetFormat(format Format) {
	if format == b.format {
		return
	}

	src, srcFormat := b.pix, b.format
	srcBPP := srcFormat.BytesPerPixel()
	dstBPP := format.BytesPerPixel()

	pix := make([]byte, dstBPP*b.width*b.height)
	for i, j := 0, 0; i < len(pix); i, j = i+dstBPP, j+srcBPP {
		writePixel(format, pix[i:], readPixel(srcFormat, src[j:]))
	}

	b.format = format
	b.pix = pix
}

// Size returns the integral size.
func (b *Buffer) Size() Size {
	return Size{Width: float64(b.width), Height: float64(b.height)}
}

// Width returns the width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buffer) Height() int { return b.height }

// BytesPerPixel returns the storage width of one pixel.
func (b *Buffer) BytesPerPixel() int {
	return b.format.BytesPerPixel()
}

// BytesPerRow returns the row stride. Rows carry no padding.
func (b *Buffer) BytesPerRow() int {
	return b.format.BytesPerPixel() * b.width
}

// Pix returns the underlying pixel bytes. The slice is borrowed: it stays
// valid only until the next call that changes size or format.
func (b *Buffer) Pix() []byte {
	return b.pix
}

// CopyPix returns an independent copy of the pixel bytes.
func (b *Buffer) CopyPix() []byte {
	return append([]byte(nil), b.pix...)
}

// Signal returns a copy of the signal metadata.
func (b *Buffer) Signal() Signal {
	return b.signal.clone()
}

// SetSignal replaces all signal metadata with a copy of s.
func (b *Buffer) SetSignal(s Signal) {
	b.signal = s.clone()
}

// Per-field signal accessors.
func (b *Buffer) SampleRate() float64     { return b.signal.SampleRate }
func (b *Buffer) SetSampleRate(v float64) { b.signal.SampleRate = v }
func (b *Buffer) BlackLevel() float64     { return b.signal.BlackLevel }
func (b *Buffer) SetBlackLevel(v float64) { b.signal.BlackLevel = v }
func (b *Buffer) WhiteLevel() float64     { return b.signal.WhiteLevel }
func (b *Buffer) SetWhiteLevel(v float64) { b.signal.WhiteLevel = v }
func (b *Buffer) Interlace() float64      { return b.signal.Interlace }
func (b *Buffer) SetInterlace(v float64)  { b.signal.Interlace = v }
func (b *Buffer) Subcarrier() float64     { return b.signal.Subcarrier }
func (b *Buffer) SetSubcarrier(v float64) { b.signal.Subcarrier = v }

// ColorBurst returns a copy of the colour-burst phase sequence.
func (b *Buffer) ColorBurst() []float64 {
	return append([]float64(nil), b.signal.ColorBurst...)
}

// SetColorBurst stores a copy of v.
func (b *Buffer) SetColorBurst(v []float64) {
	b.signal.ColorBurst = append([]float64(nil), v...)
}

// PhaseAlternation returns a copy of the per-line phase alternation flags.
func (b *Buffer) PhaseAlternation() []bool {
	return append([]bool(nil), b.signal.PhaseAlternation...)
}

// SetPhaseAlternation stores a copy of v.
func (b *Buffer) SetPhaseAlternation(v []bool) {
	b.signal.PhaseAlternation = append([]bool(nil), v...)
}
