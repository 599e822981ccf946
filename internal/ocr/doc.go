// Package ocr runs Optical Character Recognition (OCR) on raster buffers using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2). Buffers are
// encoded to PNG in memory and handed to Tesseract directly, so no temporary
// files are written.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// # Supported Languages
//
// The default language is English ("eng"). Other languages can be specified
// using their Tesseract language codes:
//   - "eng" - English
//   - "deu" - German
//   - "fra" - French
//   - See Tesseract documentation for full list
//
// # Functions
//
//   - ExtractText: Full-buffer OCR, returns all text with word bounding boxes
//   - ExtractTextFromRegion: OCR on a rectangular region of a buffer
//   - DetectTextRegions: Find text regions without returning their text
//   - Info: Report whether Tesseract is usable and which version is linked
//
// # Pixel Formats
//
// Luminance, RGB and RGBA buffers are all accepted. Transparent pixels in an
// RGBA buffer are encoded as they are; Tesseract composites them itself.
//
// # Error Handling
//
// Functions return errors for:
//   - Empty buffers
//   - Unsupported language codes
//   - Tesseract initialization failures
//
// If bounding box extraction fails (e.g., Tesseract version mismatch),
// ExtractText still returns the extracted text with an empty Regions slice.
package ocr
