// Package raster implements an in-memory raster buffer: a contiguous, row-major
// byte buffer tagged with a pixel format, an integral size, and the signal
// metadata that downstream video-signal consumers read.
//
// # Pixel Formats
//
// Three formats are supported:
//   - Luminance: 1 byte per pixel
//   - RGB: 3 bytes per pixel (r, g, b)
//   - RGBA: 4 bytes per pixel (r, g, b, a)
//
// Rows are stored without padding, so the row stride is always
// BytesPerPixel * width and the buffer length is always stride * height.
//
// # Geometry
//
// Sizes, points, and rectangles are accepted as float64 values and truncated
// to integers before use. Negative extents collapse to zero. Crop construction
// clamps the requested rectangle to the source bounds instead of failing.
//
// # Pixel Access
//
// Pixel and SetPixel do not bounds-check. Callers must keep 0 <= x < Width and
// 0 <= y < Height; out-of-range coordinates either panic or address a
// neighbouring pixel.
//
// # Thread Safety
//
// A Buffer is not safe for concurrent mutation. Callers that share a buffer
// between goroutines must serialize access themselves. Every constructor and
// conversion copies pixel storage; no two buffers ever alias the same bytes.
//
// # Loading
//
// Load and LoadBytes decode PNG data through the pngdec package. A failed load
// leaves the buffer exactly as it was; a successful load replaces size, format,
// and bytes together.
package raster
