package ocr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// ErrEmptyBuffer is returned when OCR is asked to read a buffer with no pixels.
var ErrEmptyBuffer = errors.New("ocr: buffer is empty")

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

func (b *Bounds) offset(dx, dy int) {
	b.X1 += dx
	b.Y1 += dy
	b.X2 += dx
	b.Y2 += dy
}

// TextRegion represents a word with its location and OCR confidence.
type TextRegion struct {
	// Text is the recognized text content.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the bounding box around this text in the buffer.
	Bounds Bounds `json:"bounds"`
}

// OCRResult contains the complete results of text extraction from a buffer.
type OCRResult struct {
	// FullText is all recognized text as a single string with original spacing/newlines.
	FullText string `json:"full_text"`

	// Regions contains individual words with their bounding boxes and confidence scores.
	// May be empty if bounding box extraction fails (text will still be in FullText).
	Regions []TextRegion `json:"regions"`
}

// encodePNG renders buf as an in-memory PNG for Tesseract.
func encodePNG(buf *raster.Buffer) ([]byte, error) {
	if buf.Width() == 0 || buf.Height() == 0 {
		return nil, ErrEmptyBuffer
	}
	var out bytes.Buffer
	if err := imaging.Encode(&out, buf.Image(), imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode buffer: %w", err)
	}
	return out.Bytes(), nil
}

// ExtractText performs OCR on an entire buffer and returns recognized text.
//
// The Regions field provides word-level granularity using Tesseract's RIL_WORD
// iterator level. Empty words are filtered out.
//
// # Error Handling
//
// If word-level bounding box extraction fails (which can happen with some
// Tesseract configurations), the function still returns the full text in
// FullText with an empty Regions slice.
func ExtractText(buf *raster.Buffer, language string) (*OCRResult, error) {
	data, err := encodePNG(buf)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		raster.Logger().Debug("ocr: word boxes unavailable", "err", err)
		return &OCRResult{
			FullText: text,
			Regions:  []TextRegion{},
		}, nil
	}

	regions := make([]TextRegion, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		regions = append(regions, TextRegion{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}

	return &OCRResult{
		FullText: text,
		Regions:  regions,
	}, nil
}

// ExtractTextFromRegion performs OCR on the region (x1,y1)-(x2,y2) of buf.
//
// The region is clamped to the buffer the way raster.NewCrop clamps it. The
// returned bounding boxes are adjusted to buffer coordinates: if the region
// starts at (100, 50) and a word is found at (10, 20) within it, the returned
// bounds start at (110, 70).
func ExtractTextFromRegion(buf *raster.Buffer, x1, y1, x2, y2 int, language string) (*OCRResult, error) {
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}

	rect := raster.R(float64(x1), float64(y1), float64(x2-x1), float64(y2-y1)).
		Intersect(raster.Rect{Size: buf.Size()})

	result, err := ExtractText(raster.NewCrop(buf, rect), language)
	if err != nil {
		return nil, err
	}

	dx, dy := int(rect.Origin.X), int(rect.Origin.Y)
	for i := range result.Regions {
		result.Regions[i].Bounds.offset(dx, dy)
	}

	return result, nil
}

// DetectTextRegionsResult contains text region locations without the actual text content.
type DetectTextRegionsResult struct {
	// Regions is the list of detected text regions with bounding boxes.
	Regions []TextRegionBox `json:"regions"`

	// Count is the number of text regions detected.
	Count int `json:"count"`
}

// TextRegionBox represents a detected text region's location without its content.
type TextRegionBox struct {
	// Bounds is the bounding box around the text region.
	Bounds Bounds `json:"bounds"`

	// Confidence is Tesseract's confidence score for this being a text region (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// DetectTextRegions finds block-level text regions in buf.
//
// Regions with confidence below minConfidence (0.0 to 1.0) are excluded.
func DetectTextRegions(buf *raster.Buffer, minConfidence float64) (*DetectTextRegionsResult, error) {
	data, err := encodePNG(buf)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	// Block level is faster than word level
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("failed to get text regions: %w", err)
	}

	regions := make([]TextRegionBox, 0)
	for _, box := range boxes {
		confidence := float64(box.Confidence) / 100.0
		if confidence < minConfidence {
			continue
		}
		regions = append(regions, TextRegionBox{
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
			Confidence: confidence,
		})
	}

	return &DetectTextRegionsResult{
		Regions: regions,
		Count:   len(regions),
	}, nil
}

// OCRInfo contains information about the OCR subsystem.
type OCRInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Backend   string `json:"backend"`
}

// Info reports the linked Tesseract version.
func Info() OCRInfo {
	client := gosseract.NewClient()
	defer client.Close()

	version := client.Version()
	return OCRInfo{
		Available: version != "",
		Version:   version,
		Backend:   "gosseract",
	}
}
