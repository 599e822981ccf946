package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// bufferNameProperty is the schema of the "name" argument every buffer tool takes.
var bufferNameProperty = map[string]interface{}{
	"type":        "string",
	"description": "Name of the raster buffer in the session cache",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Buffer Lifecycle
		{
			Name:        "raster_new",
			Description: "Create a zero-filled raster buffer of the given size and pixel format and store it under a name. Replaces any buffer with the same name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"luminance", "rgb", "rgba"},
						"description": "Pixel format. Default rgba",
						"default":     "rgba",
					},
					"fill": map[string]interface{}{
						"type":        "string",
						"description": "Optional hex color (#RRGGBB or #RRGGBBAA) to fill the new buffer with",
					},
					"standard": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"default", "ntsc", "pal"},
						"description": "Signal metadata preset. Default uses a 14318180 Hz sample rate with one burst entry",
					},
				},
				"required": []string{"name", "width", "height"},
			},
		},
		{
			Name:        "raster_load",
			Description: "Decode a PNG file or base64 PNG data into a named raster buffer. The format becomes rgba when the image has transparency and rgb otherwise. A failed load leaves an existing buffer unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a PNG file",
					},
					"data": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded PNG data. Mutually exclusive with path",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_info",
			Description: "Get the size, pixel format, row stride and signal metadata of a raster buffer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_list",
			Description: "List the names of all raster buffers in the session.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "raster_free",
			Description: "Remove a raster buffer from the session.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_pixels",
			Description: "Return the raw pixel bytes of a raster buffer as base64. Rows are stored top to bottom without padding.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
				},
				"required": []string{"name"},
			},
		},

		// Storage and Geometry
		{
			Name:        "raster_set_format",
			Description: "Convert every pixel of a raster buffer to another format. Converting to luminance stores the unweighted mean of r, g and b.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"format": map[string]interface{}{
						"type": "string",
						"enum": []string{"luminance", "rgb", "rgba"},
					},
				},
				"required": []string{"name", "format"},
			},
		},
		{
			Name:        "raster_resize",
			Description: "Change the size of a raster buffer. Without fill the buffer is cleared to zero. With fill the existing content stays anchored at the top-left and newly exposed bytes are set to the fill value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"width": map[string]interface{}{
						"type":        "number",
						"description": "New width; fractions are truncated",
					},
					"height": map[string]interface{}{
						"type":        "number",
						"description": "New height; fractions are truncated",
					},
					"fill": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"maximum":     255,
						"description": "Optional byte value for newly exposed storage. Enables content-preserving resize",
					},
				},
				"required": []string{"name", "width", "height"},
			},
		},
		{
			Name:        "raster_crop",
			Description: "Copy a rectangular region of a raster buffer into a new buffer. The region is clamped to the source; format and signal metadata are copied.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name for the result. Default replaces the source",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"name", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "raster_crop_quadrant",
			Description: "Copy a named region (quadrant, half or center) of a raster buffer into a new buffer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name for the result. Default replaces the source",
					},
					"region": map[string]interface{}{
						"type": "string",
						"enum": []string{
							"top-left", "top-right", "bottom-left", "bottom-right",
							"top-half", "bottom-half", "left-half", "right-half", "center",
						},
						"description": "Named region to extract",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"name", "region"},
			},
		},
		{
			Name:        "raster_scale",
			Description: "Resample a raster buffer by a factor using a Lanczos filter. The result keeps the source format and signal metadata.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name for the result. Default replaces the source",
					},
					"factor": map[string]interface{}{
						"type":        "number",
						"description": "Scale factor greater than 0",
					},
				},
				"required": []string{"name", "factor"},
			},
		},

		// Compositing and Pixels
		{
			Name:        "raster_print",
			Description: "Composite one raster buffer onto another at an origin. The destination grows (new area filled white) to cover the placed source, then each channel becomes max(0, dst + src - 255): white leaves the destination unchanged, black makes it black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Name of the buffer to print onto the destination",
					},
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Destination X of the source's top-left corner. Default 0",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Destination Y of the source's top-left corner. Default 0",
					},
				},
				"required": []string{"name", "source"},
			},
		},
		{
			Name:        "raster_fill",
			Description: "Set every pixel of a raster buffer to a color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color (#RRGGBB or #RRGGBBAA)",
					},
				},
				"required": []string{"name", "color"},
			},
		},
		{
			Name:        "raster_get_pixel",
			Description: "Get the color of a pixel as hex, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"name", "x", "y"},
			},
		},
		{
			Name:        "raster_set_pixel",
			Description: "Set the color of a pixel and return the value actually stored for the buffer's format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color (#RRGGBB or #RRGGBBAA)",
					},
				},
				"required": []string{"name", "x", "y", "color"},
			},
		},

		// Color Analysis
		{
			Name:        "raster_sample_colors_multi",
			Description: "Sample colors at multiple points in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"name", "points"},
			},
		},
		{
			Name:        "raster_dominant_colors",
			Description: "Find the most common colors in a raster buffer or a region of it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_compare",
			Description: "Compare two raster buffers over their overlapping top-left extent and report a similarity score.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name1": bufferNameProperty,
					"name2": bufferNameProperty,
				},
				"required": []string{"name1", "name2"},
			},
		},

		// Patterns and Signal
		{
			Name:        "raster_grid_overlay",
			Description: "Draw a coordinate grid onto a raster buffer, optionally labelling intersections.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels between grid lines. Default 50",
						"default":     50,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label grid intersections with coordinates. Default false",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex. Default #FF0000",
						"default":     "#FF0000",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_color_bars",
			Description: "Create a raster buffer holding the SMPTE color bar test pattern.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels. Default 640",
						"default":     640,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels. Default 480",
						"default":     480,
					},
					"format": map[string]interface{}{
						"type":    "string",
						"enum":    []string{"luminance", "rgb", "rgba"},
						"default": "rgb",
					},
					"label": map[string]interface{}{
						"type":        "string",
						"description": "Optional caption drawn near the bottom edge",
					},
					"standard": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"default", "ntsc", "pal"},
						"description": "Signal metadata preset",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_signal",
			Description: "Read the signal metadata of a raster buffer. Supplied fields are updated first; a standard preset is applied before individual fields.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"standard": map[string]interface{}{
						"type": "string",
						"enum": []string{"default", "ntsc", "pal"},
					},
					"sample_rate": map[string]interface{}{"type": "number"},
					"black_level": map[string]interface{}{"type": "number"},
					"white_level": map[string]interface{}{"type": "number"},
					"interlace":   map[string]interface{}{"type": "number"},
					"subcarrier":  map[string]interface{}{"type": "number"},
					"color_burst": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "number"},
					},
					"phase_alternation": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "boolean"},
					},
				},
				"required": []string{"name"},
			},
		},

		// OCR
		{
			Name:        "raster_ocr",
			Description: "Extract text from a raster buffer, or from a region of it, using Tesseract.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Default eng",
						"default":     "eng",
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region; word bounds are reported in buffer coordinates",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_detect_text_regions",
			Description: "Find text blocks in a raster buffer without returning their text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": bufferNameProperty,
					"min_confidence": map[string]interface{}{
						"type":        "number",
						"description": "Minimum confidence threshold (0-1). Default 0.5",
						"default":     0.5,
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_ocr_info",
			Description: "Report whether Tesseract is available and which version is linked.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
