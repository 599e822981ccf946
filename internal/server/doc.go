// Package server implements the MCP (Model Context Protocol) server for raster buffer tools.
//
// This package provides a JSON-RPC 2.0 server that exposes raster buffer operations
// through the MCP protocol, so that MCP-compatible clients can build, composite and
// inspect frames pixel by pixel.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 24 tools organized into categories:
//
// Buffer Lifecycle:
//   - raster_new: Create a zero-filled buffer
//   - raster_load: Decode a PNG file or base64 PNG data
//   - raster_info: Size, format, stride and signal metadata
//   - raster_list, raster_free: Session management
//   - raster_pixels: Raw bytes as base64
//
// Storage and Geometry:
//   - raster_set_format: Convert pixels to luminance, rgb or rgba
//   - raster_resize: Clear-resize or content-preserving resize
//   - raster_crop, raster_crop_quadrant: Copy a region into a new buffer
//   - raster_scale: Lanczos resampling
//
// Compositing and Pixels:
//   - raster_print: Darken-composite one buffer onto another
//   - raster_fill: Fill with a color
//   - raster_get_pixel, raster_set_pixel: Single pixel access
//
// Color Analysis:
//   - raster_sample_colors_multi: Sample multiple points
//   - raster_dominant_colors: Extract color palette
//   - raster_compare: Similarity of two buffers
//
// Patterns and Signal:
//   - raster_grid_overlay: Draw a coordinate grid
//   - raster_color_bars: SMPTE test pattern
//   - raster_signal: Read or update signal metadata
//
// OCR:
//   - raster_ocr: Extract text, optionally from a region
//   - raster_detect_text_regions: Find text bounding boxes
//   - raster_ocr_info: Tesseract availability
//
// # Buffer Cache
//
// Buffers live in an imaging.BufferCache keyed by client-chosen names for the
// lifetime of the server process. Each tool call holds the buffers it touches
// exclusively, so concurrent clients never mutate one buffer at the same time.
// Tools that derive a new buffer (crop, scale) store it under "dest", or
// replace the source when dest is omitted.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Pixel coordinates supplied by clients are bounds-checked here even though
// the raster package itself does not check them.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
