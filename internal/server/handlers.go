package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/raster-tools-mcp/internal/imaging"
	"github.com/ironsheep/raster-tools-mcp/internal/ocr"
	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "raster_load", "raster_print").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors, including a recovered handler panic, return a
// JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.callTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// callTool runs executeTool and turns a panic in a handler into an error,
// leaving the server running.
func (s *Server) callTool(name string, args json.RawMessage) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Tool %s panicked: %v", name, r)
			result, err = nil, fmt.Errorf("tool %s failed: internal error: %v", name, r)
		}
	}()
	return s.executeTool(name, args)
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Looks up buffers in the cache, holding each one exclusively
//  4. Calls the appropriate raster/imaging/ocr function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Buffer Lifecycle
	case "raster_new":
		return s.handleRasterNew(args)
	case "raster_load":
		return s.handleRasterLoad(args)
	case "raster_info":
		return s.handleRasterInfo(args)
	case "raster_list":
		return s.handleRasterList(args)
	case "raster_free":
		return s.handleRasterFree(args)
	case "raster_pixels":
		return s.handleRasterPixels(args)

	// Storage and Geometry
	case "raster_set_format":
		return s.handleRasterSetFormat(args)
	case "raster_resize":
		return s.handleRasterResize(args)
	case "raster_crop":
		return s.handleRasterCrop(args)
	case "raster_crop_quadrant":
		return s.handleRasterCropQuadrant(args)
	case "raster_scale":
		return s.handleRasterScale(args)

	// Compositing and Pixels
	case "raster_print":
		return s.handleRasterPrint(args)
	case "raster_fill":
		return s.handleRasterFill(args)
	case "raster_get_pixel":
		return s.handleRasterGetPixel(args)
	case "raster_set_pixel":
		return s.handleRasterSetPixel(args)

	// Color Analysis
	case "raster_sample_colors_multi":
		return s.handleRasterSampleColorsMulti(args)
	case "raster_dominant_colors":
		return s.handleRasterDominantColors(args)
	case "raster_compare":
		return s.handleRasterCompare(args)

	// Patterns and Signal
	case "raster_grid_overlay":
		return s.handleRasterGridOverlay(args)
	case "raster_color_bars":
		return s.handleRasterColorBars(args)
	case "raster_signal":
		return s.handleRasterSignal(args)

	// OCR
	case "raster_ocr":
		return s.handleRasterOCR(args)
	case "raster_detect_text_regions":
		return s.handleRasterDetectTextRegions(args)
	case "raster_ocr_info":
		return ocr.Info(), nil

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// bufferResult is returned by every tool that creates or reshapes a buffer.
type bufferResult struct {
	Name string `json:"name"`
	*imaging.BufferInfo
}

// info reads the metadata of the named buffer under its lock.
func (s *Server) info(name string) (*bufferResult, error) {
	var result *bufferResult
	err := s.cache.With(name, func(b *raster.Buffer) error {
		result = &bufferResult{Name: name, BufferInfo: imaging.Info(b)}
		return nil
	})
	return result, err
}

// derive runs fn on the named buffer and stores what it returns under dest,
// or under name when dest is empty.
func (s *Server) derive(name, dest string, fn func(*raster.Buffer) (*raster.Buffer, error)) (interface{}, error) {
	if dest == "" {
		dest = name
	}
	var out *raster.Buffer
	err := s.cache.With(name, func(b *raster.Buffer) error {
		var err error
		out, err = fn(b)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.cache.Put(dest, out)
	return &bufferResult{Name: dest, BufferInfo: imaging.Info(out)}, nil
}

// mutate runs fn on the named buffer and reports the buffer's metadata afterwards.
func (s *Server) mutate(name string, fn func(*raster.Buffer) error) (interface{}, error) {
	var result *bufferResult
	err := s.cache.With(name, func(b *raster.Buffer) error {
		if err := fn(b); err != nil {
			return err
		}
		result = &bufferResult{Name: name, BufferInfo: imaging.Info(b)}
		return nil
	})
	return result, err
}

type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r *regionArgs) region() *imaging.Region {
	if r == nil {
		return nil
	}
	return &imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

// === Buffer Lifecycle Handlers ===

type rasterNewArgs struct {
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Fill     string `json:"fill"`
	Standard string `json:"standard"`
}

func (s *Server) handleRasterNew(args json.RawMessage) (interface{}, error) {
	var a rasterNewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, fmt.Errorf("invalid size %dx%d", a.Width, a.Height)
	}
	if a.Format == "" {
		a.Format = "rgba"
	}
	format, err := raster.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	if err := imaging.CheckSize(float64(a.Width), float64(a.Height), format); err != nil {
		return nil, err
	}
	signal, err := imaging.SignalPreset(a.Standard)
	if err != nil {
		return nil, err
	}

	buf := raster.NewSized(raster.Sz(float64(a.Width), float64(a.Height)), format)
	buf.SetSignal(signal)
	if a.Fill != "" {
		c, err := imaging.ParseHexColor(a.Fill)
		if err != nil {
			return nil, err
		}
		buf.Fill(c)
	}

	s.cache.Put(a.Name, buf)
	return &bufferResult{Name: a.Name, BufferInfo: imaging.Info(buf)}, nil
}

type rasterLoadArgs struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Data string `json:"data"`
}

func (s *Server) handleRasterLoad(args json.RawMessage) (interface{}, error) {
	var a rasterLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	var (
		info *imaging.BufferInfo
		err  error
	)
	switch {
	case a.Path != "" && a.Data != "":
		return nil, fmt.Errorf("path and data are mutually exclusive")
	case a.Path != "":
		info, err = s.cache.LoadFile(a.Name, a.Path)
	case a.Data != "":
		data, decErr := base64.StdEncoding.DecodeString(a.Data)
		if decErr != nil {
			return nil, fmt.Errorf("invalid base64 data: %w", decErr)
		}
		info, err = s.cache.LoadBytes(a.Name, data)
	default:
		return nil, fmt.Errorf("either path or data is required")
	}
	if err != nil {
		return nil, err
	}
	return &bufferResult{Name: a.Name, BufferInfo: info}, nil
}

type rasterNameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleRasterInfo(args json.RawMessage) (interface{}, error) {
	var a rasterNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.info(a.Name)
}

func (s *Server) handleRasterList(args json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"names": s.cache.Names(),
	}, nil
}

func (s *Server) handleRasterFree(args json.RawMessage) (interface{}, error) {
	var a rasterNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if !s.cache.Has(a.Name) {
		return nil, fmt.Errorf("no buffer named %q", a.Name)
	}
	s.cache.Evict(a.Name)
	return map[string]interface{}{
		"freed": a.Name,
	}, nil
}

// pixelsResult carries a buffer's raw bytes, base64 encoded.
type pixelsResult struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	BytesPerRow int    `json:"bytes_per_row"`
	Data        string `json:"data"`
}

func (s *Server) handleRasterPixels(args json.RawMessage) (interface{}, error) {
	var a rasterNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *pixelsResult
	err := s.cache.With(a.Name, func(b *raster.Buffer) error {
		result = &pixelsResult{
			Name:        a.Name,
			Width:       b.Width(),
			Height:      b.Height(),
			Format:      b.Format().String(),
			BytesPerRow: b.BytesPerRow(),
			Data:        base64.StdEncoding.EncodeToString(b.Pix()),
		}
		return nil
	})
	return result, err
}

// === Storage and Geometry Handlers ===

type rasterSetFormatArgs struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

func (s *Server) handleRasterSetFormat(args json.RawMessage) (interface{}, error) {
	var a rasterSetFormatArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	format, err := raster.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	return s.mutate(a.Name, func(b *raster.Buffer) error {
		if err := imaging.CheckSize(float64(b.Width()), float64(b.Height()), format); err != nil {
			return err
		}
		b.SetFormat(format)
		return nil
	})
}

type rasterResizeArgs struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   *int    `json:"fill,omitempty"`
}

func (s *Server) handleRasterResize(args json.RawMessage) (interface{}, error) {
	var a rasterResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Fill != nil && (*a.Fill < 0 || *a.Fill > 255) {
		return nil, fmt.Errorf("fill must be a byte value 0-255, got %d", *a.Fill)
	}
	size := raster.Sz(a.Width, a.Height)
	return s.mutate(a.Name, func(b *raster.Buffer) error {
		if err := imaging.CheckSize(size.Width, size.Height, b.Format()); err != nil {
			return err
		}
		if a.Fill == nil {
			b.SetSize(size)
		} else {
			b.Resize(size, byte(*a.Fill))
		}
		return nil
	})
}

type rasterCropArgs struct {
	Name  string  `json:"name"`
	Dest  string  `json:"dest"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleRasterCrop(args json.RawMessage) (interface{}, error) {
	var a rasterCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	return s.derive(a.Name, a.Dest, func(b *raster.Buffer) (*raster.Buffer, error) {
		return imaging.Crop(b, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
	})
}

type rasterCropQuadrantArgs struct {
	Name   string  `json:"name"`
	Dest   string  `json:"dest"`
	Region string  `json:"region"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleRasterCropQuadrant(args json.RawMessage) (interface{}, error) {
	var a rasterCropQuadrantArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	return s.derive(a.Name, a.Dest, func(b *raster.Buffer) (*raster.Buffer, error) {
		return imaging.CropQuadrant(b, a.Region, a.Scale)
	})
}

type rasterScaleArgs struct {
	Name   string  `json:"name"`
	Dest   string  `json:"dest"`
	Factor float64 `json:"factor"`
}

func (s *Server) handleRasterScale(args json.RawMessage) (interface{}, error) {
	var a rasterScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.derive(a.Name, a.Dest, func(b *raster.Buffer) (*raster.Buffer, error) {
		return imaging.Scale(b, a.Factor)
	})
}

// === Compositing and Pixel Handlers ===

type rasterPrintArgs struct {
	Name   string  `json:"name"`
	Source string  `json:"source"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

func (s *Server) handleRasterPrint(args json.RawMessage) (interface{}, error) {
	var a rasterPrintArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *bufferResult
	origin := raster.Pt(a.X, a.Y)
	err := s.cache.WithPair(a.Name, a.Source, func(dst, src *raster.Buffer) error {
		grown := dst.PrintExtent(src, origin)
		if err := imaging.CheckSize(grown.Width, grown.Height, dst.Format()); err != nil {
			return fmt.Errorf("print at (%g, %g): %w", a.X, a.Y, err)
		}
		dst.Print(src, origin)
		result = &bufferResult{Name: a.Name, BufferInfo: imaging.Info(dst)}
		return nil
	})
	return result, err
}

type rasterFillArgs struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) handleRasterFill(args json.RawMessage) (interface{}, error) {
	var a rasterFillArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := imaging.ParseHexColor(a.Color)
	if err != nil {
		return nil, err
	}
	return s.mutate(a.Name, func(b *raster.Buffer) error {
		b.Fill(c)
		return nil
	})
}

type rasterPixelArgs struct {
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

func (s *Server) handleRasterGetPixel(args json.RawMessage) (interface{}, error) {
	var a rasterPixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *imaging.ColorResult
	err := s.cache.With(a.Name, func(b *raster.Buffer) error {
		var err error
		result, err = imaging.SampleColor(b, a.X, a.Y)
		return err
	})
	return result, err
}

func (s *Server) handleRasterSetPixel(args json.RawMessage) (interface{}, error) {
	var a rasterPixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := imaging.ParseHexColor(a.Color)
	if err != nil {
		return nil, err
	}
	var result *imaging.ColorResult
	err = s.cache.With(a.Name, func(b *raster.Buffer) error {
		if err := imaging.SetColor(b, a.X, a.Y, c); err != nil {
			return err
		}
		// Report what was stored, which differs from c for luminance and RGB.
		var err error
		result, err = imaging.SampleColor(b, a.X, a.Y)
		return err
	})
	return result, err
}

// === Color Analysis Handlers ===

type rasterSampleColorsMultiArgs struct {
	Name   string `json:"name"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleRasterSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a rasterSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}

	var result *imaging.MultiColorResult
	err := s.cache.With(a.Name, func(b *raster.Buffer) error {
		var err error
		result, err = imaging.SampleColorsMulti(b, points)
		return err
	})
	return result, err
}

type rasterDominantColorsArgs struct {
	Name   string      `json:"name"`
	Count  int         `json:"count"`
	Region *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleRasterDominantColors(args json.RawMessage) (interface{}, error) {
	var a rasterDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	var result *imaging.DominantColorsResult
	err := s.cache.With(a.Name, func(b *raster.Buffer) error {
		var err error
		result, err = imaging.DominantColors(b, a.Count, a.Region.region())
		return err
	})
	return result, err
}

type rasterCompareArgs struct {
	Name1 string `json:"name1"`
	Name2 string `json:"name2"`
}

func (s *Server) handleRasterCompare(args json.RawMessage) (interface{}, error) {
	var a rasterCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *imaging.CompareResult
	err := s.cache.WithPair(a.Name1, a.Name2, func(b1, b2 *raster.Buffer) error {
		result = imaging.CompareBuffers(b1, b2)
		return nil
	})
	return result, err
}

// === Pattern and Signal Handlers ===

type rasterGridOverlayArgs struct {
	Name            string `json:"name"`
	GridSpacing     int    `json:"grid_spacing"`
	ShowCoordinates bool   `json:"show_coordinates"`
	GridColor       string `json:"grid_color"`
}

func (s *Server) handleRasterGridOverlay(args json.RawMessage) (interface{}, error) {
	var a rasterGridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSpacing == 0 {
		a.GridSpacing = 50
	}
	if a.GridColor == "" {
		a.GridColor = "#FF0000"
	}
	c, err := imaging.ParseHexColor(a.GridColor)
	if err != nil {
		return nil, err
	}
	return s.mutate(a.Name, func(b *raster.Buffer) error {
		return imaging.GridOverlay(b, a.GridSpacing, a.ShowCoordinates, c)
	})
}

type rasterColorBarsArgs struct {
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Label    string `json:"label"`
	Standard string `json:"standard"`
}

func (s *Server) handleRasterColorBars(args json.RawMessage) (interface{}, error) {
	var a rasterColorBarsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if a.Width == 0 {
		a.Width = 640
	}
	if a.Height == 0 {
		a.Height = 480
	}
	if a.Format == "" {
		a.Format = "rgb"
	}
	format, err := raster.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	signal, err := imaging.SignalPreset(a.Standard)
	if err != nil {
		return nil, err
	}

	buf, err := imaging.ColorBars(a.Width, a.Height, format, a.Label)
	if err != nil {
		return nil, err
	}
	buf.SetSignal(signal)

	s.cache.Put(a.Name, buf)
	return &bufferResult{Name: a.Name, BufferInfo: imaging.Info(buf)}, nil
}

// rasterSignalArgs updates only the fields that are present. A standard is
// applied first, so individual fields override it.
type rasterSignalArgs struct {
	Name             string    `json:"name"`
	Standard         string    `json:"standard"`
	SampleRate       *float64  `json:"sample_rate,omitempty"`
	BlackLevel       *float64  `json:"black_level,omitempty"`
	WhiteLevel       *float64  `json:"white_level,omitempty"`
	Interlace        *float64  `json:"interlace,omitempty"`
	Subcarrier       *float64  `json:"subcarrier,omitempty"`
	ColorBurst       []float64 `json:"color_burst,omitempty"`
	PhaseAlternation []bool    `json:"phase_alternation,omitempty"`
}

func (s *Server) handleRasterSignal(args json.RawMessage) (interface{}, error) {
	var a rasterSignalArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var preset *raster.Signal
	if a.Standard != "" {
		p, err := imaging.SignalPreset(a.Standard)
		if err != nil {
			return nil, err
		}
		preset = &p
	}

	var result raster.Signal
	err := s.cache.With(a.Name, func(b *raster.Buffer) error {
		if preset != nil {
			b.SetSignal(*preset)
		}
		if a.SampleRate != nil {
			b.SetSampleRate(*a.SampleRate)
		}
		if a.BlackLevel != nil {
			b.SetBlackLevel(*a.BlackLevel)
		}
		if a.WhiteLevel != nil {
			b.SetWhiteLevel(*a.WhiteLevel)
		}
		if a.Interlace != nil {
			b.SetInterlace(*a.Interlace)
		}
		if a.Subcarrier != nil {
			b.SetSubcarrier(*a.Subcarrier)
		}
		if a.ColorBurst != nil {
			b.SetColorBurst(a.ColorBurst)
		}
		if a.PhaseAlternation != nil {
			b.SetPhaseAlternation(a.PhaseAlternation)
		}
		result = b.Signal()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// === OCR Handlers ===

type rasterOCRArgs struct {
	Name     string      `json:"name"`
	Language string      `json:"language"`
	Region   *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleRasterOCR(args json.RawMessage) (interface{}, error) {
	var a rasterOCRArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}
	var result *ocr.OCRResult
	err := s.cache.With(a.Name, func(b *raster.Buffer) error {
		var err error
		if a.Region != nil {
			result, err = ocr.ExtractTextFromRegion(b, a.Region.X1, a.Region.Y1, a.Region.X2, a.Region.Y2, a.Language)
		} else {
			result, err = ocr.ExtractText(b, a.Language)
		}
		return err
	})
	return result, err
}

type rasterDetectTextRegionsArgs struct {
	Name          string  `json:"name"`
	MinConfidence float64 `json:"min_confidence"`
}

func (s *Server) handleRasterDetectTextRegions(args json.RawMessage) (interface{}, error) {
	var a rasterDetectTextRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MinConfidence == 0 {
		a.MinConfidence = 0.5
	}
	var result *ocr.DetectTextRegionsResult
	err := s.cache.With(a.Name, func(b *raster.Buffer) error {
		var err error
		result, err = ocr.DetectTextRegions(b, a.MinConfidence)
		return err
	})
	return result, err
}
