package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blend"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// Point is an integer width/height or coordinate pair.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CompareResult contains buffer comparison information.
type CompareResult struct {
	SimilarityScore  float64 `json:"similarity_score"`
	PixelsDifferent  int     `json:"pixels_different"`
	TotalPixels      int     `json:"total_pixels"`
	SameSize         bool    `json:"same_size"`
	SameFormat       bool    `json:"same_format"`
	Size1            Point   `json:"size1"`
	Size2            Point   `json:"size2"`
	AverageColorDiff float64 `json:"average_color_diff"`
}

// CompareBuffers compares the overlapping top-left extent of a and b.
//
// Per-pixel differences come from the difference blend mode applied to
// opaque copies of both buffers, so alpha is ignored. A pixel counts as
// different when the mean channel difference exceeds 10.
func CompareBuffers(a, b *raster.Buffer) *CompareResult {
	minW := min(a.Width(), b.Width())
	minH := min(a.Height(), b.Height())
	overlap := raster.R(0, 0, float64(minW), float64(minH))

	result := &CompareResult{
		TotalPixels: minW * minH,
		SameSize:    a.Width() == b.Width() && a.Height() == b.Height(),
		SameFormat:  a.Format() == b.Format(),
		Size1:       Point{X: a.Width(), Y: a.Height()},
		Size2:       Point{X: b.Width(), Y: b.Height()},
	}
	if result.TotalPixels == 0 {
		result.SimilarityScore = 1
		return result
	}

	diff := blend.Difference(opaque(raster.NewCrop(a, overlap)), opaque(raster.NewCrop(b, overlap)))

	var totalColorDiff float64
	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			c := diff.RGBAAt(x, y)
			d := float64(int(c.R)+int(c.G)+int(c.B)) / 3.0
			totalColorDiff += d
			if d > 10 {
				result.PixelsDifferent++
			}
		}
	}

	similarity := 1.0 - float64(result.PixelsDifferent)/float64(result.TotalPixels)
	result.SimilarityScore = math.Round(similarity*1000) / 1000
	result.AverageColorDiff = math.Round(totalColorDiff/float64(result.TotalPixels)*100) / 100
	return result
}

// opaque returns buf as an image with every alpha forced to 255.
func opaque(buf *raster.Buffer) image.Image {
	img := buf.Image()
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}
