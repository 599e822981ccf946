// Package imaging provides the operations the MCP server runs on raster
// buffers: a named buffer cache, colour sampling, cropping and scaling, grid
// overlays, test patterns, and buffer comparison.
//
// All operations work on *raster.Buffer values and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Unlike the raster package, functions here validate coordinates that come
// from clients: sampling outside a buffer is an error, not a panic. Regions
// passed to Crop are clamped to the buffer the same way raster.NewCrop clamps.
//
// # Thread Safety
//
// BufferCache is safe for concurrent use and serializes access to each cached
// buffer through With and WithPair. The functions that take a *raster.Buffer
// directly assume the caller holds that buffer exclusively.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// Hex colors in requests are parsed with go-colorful and may carry a trailing
// alpha byte ("#RRGGBBAA").
package imaging
