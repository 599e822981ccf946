package raster

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()

	if b.Format() != RGBA {
		t.Errorf("Format: got %s, want rgba", b.Format())
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("size: got %dx%d, want 0x0", b.Width(), b.Height())
	}
	if len(b.Pix()) != 0 {
		t.Errorf("len(Pix): got %d, want 0", len(b.Pix()))
	}

	want := Signal{
		SampleRate:       14318180,
		BlackLevel:       0,
		WhiteLevel:       1,
		Interlace:        0,
		Subcarrier:       0,
		ColorBurst:       []float64{0},
		PhaseAlternation: []bool{false},
	}
	if got := b.Signal(); !reflect.DeepEqual(got, want) {
		t.Errorf("Signal: got %+v, want %+v", got, want)
	}
}

func TestBytesPerPixel(t *testing.T) {
	tests := []struct {
		format Format
		bpp    int
	}{
		{Luminance, 1},
		{RGB, 3},
		{RGBA, 4},
		{Format(99), 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel: got %d, want %d", got, tt.bpp)
			}
		})
	}
}

func TestBytesPerRow(t *testing.T) {
	b := NewSized(Sz(7, 3), RGB)
	if b.BytesPerRow() != 21 {
		t.Errorf("BytesPerRow: got %d, want 21", b.BytesPerRow())
	}
	if len(b.Pix()) != 63 {
		t.Errorf("len(Pix): got %d, want 63", len(b.Pix()))
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"luminance", Luminance, false},
		{"Gray", Luminance, false},
		{"grey", Luminance, false},
		{"RGB", RGB, false},
		{" rgba ", RGBA, false},
		{"cmyk", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q): got %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetFormat_Converts(t *testing.T) {
	b := newFilled(t, 3, 2, RGBA, Color{10, 20, 30, 40})

	b.SetFormat(RGB)
	checkLength(t, b)
	if got := b.Pixel(2, 1); got != (Color{10, 20, 30, 255}) {
		t.Errorf("RGBA->RGB: got %v, want {10 20 30 255}", got)
	}

	b.SetFormat(Luminance)
	checkLength(t, b)
	if got := b.Pixel(0, 0); got != (Color{20, 20, 20, 255}) {
		t.Errorf("RGB->Luminance: got %v, want {20 20 20 255}", got)
	}

	b.SetFormat(RGBA)
	checkLength(t, b)
	if got := b.Pixel(1, 1); got != (Color{20, 20, 20, 255}) {
		t.Errorf("Luminance->RGBA: got %v, want {20 20 20 255}", got)
	}
}

func TestSetFormat_SameFormatKeepsBytes(t *testing.T) {
	b := newPattern(t, 4, 4, RGBA)
	before := b.CopyPix()

	b.SetFormat(RGBA)

	if !reflect.DeepEqual(before, b.Pix()) {
		t.Error("SetFormat to the current format changed the bytes")
	}
}

func TestSetFormat_Empty(t *testing.T) {
	b := New()
	b.SetFormat(Luminance)
	checkLength(t, b)
	if b.Format() != Luminance {
		t.Errorf("Format: got %s, want luminance", b.Format())
	}
}

func TestSignalAccessors(t *testing.T) {
	b := New()
	b.SetSampleRate(17734475)
	b.SetBlackLevel(0.3)
	b.SetWhiteLevel(0.9)
	b.SetInterlace(0.5)
	b.SetSubcarrier(4433618.75)
	b.SetColorBurst([]float64{0.375, -0.375})
	b.SetPhaseAlternation([]bool{false, true})

	if b.SampleRate() != 17734475 {
		t.Errorf("SampleRate: got %v", b.SampleRate())
	}
	if b.BlackLevel() != 0.3 || b.WhiteLevel() != 0.9 {
		t.Errorf("levels: got %v/%v, want 0.3/0.9", b.BlackLevel(), b.WhiteLevel())
	}
	if b.Interlace() != 0.5 {
		t.Errorf("Interlace: got %v, want 0.5", b.Interlace())
	}
	if b.Subcarrier() != 4433618.75 {
		t.Errorf("Subcarrier: got %v", b.Subcarrier())
	}
	if !reflect.DeepEqual(b.ColorBurst(), []float64{0.375, -0.375}) {
		t.Errorf("ColorBurst: got %v", b.ColorBurst())
	}
	if !reflect.DeepEqual(b.PhaseAlternation(), []bool{false, true}) {
		t.Errorf("PhaseAlternation: got %v", b.PhaseAlternation())
	}
}

func TestSignal_NoAliasing(t *testing.T) {
	b := New()
	burst := []float64{1, 2}
	b.SetColorBurst(burst)
	burst[0] = 99

	if b.ColorBurst()[0] != 1 {
		t.Error("SetColorBurst kept a reference to the caller's slice")
	}

	got := b.ColorBurst()
	got[1] = 99
	if b.ColorBurst()[1] != 2 {
		t.Error("ColorBurst returned the internal slice")
	}

	s := b.Signal()
	s.PhaseAlternation[0] = true
	if b.PhaseAlternation()[0] {
		t.Error("Signal returned internal PhaseAlternation storage")
	}
}

func TestCopyPix_Independent(t *testing.T) {
	b := newPattern(t, 2, 2, RGB)
	cp := b.CopyPix()
	cp[0] = 200

	if b.Pix()[0] == 200 {
		t.Error("CopyPix aliases the buffer storage")
	}
}
