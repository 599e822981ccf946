package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

// toolCallLine renders a tools/call request as one protocol line.
func toolCallLine(t *testing.T, id int, name string, args map[string]interface{}) string {
	t.Helper()
	line, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params":  map[string]interface{}{"name": name, "arguments": args},
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return string(line)
}

// serve feeds lines through Serve and returns the decoded responses in order.
func serve(t *testing.T, s *Server, lines ...string) []MCPResponse {
	t.Helper()

	var out bytes.Buffer
	if err := s.Serve(strings.NewReader(strings.Join(lines, "\n")), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	var responses []MCPResponse
	dec := json.NewDecoder(&out)
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		responses = append(responses, resp)
	}
	return responses
}

// byID indexes responses by their numeric id.
func byID(t *testing.T, responses []MCPResponse) map[int]MCPResponse {
	t.Helper()
	m := make(map[int]MCPResponse, len(responses))
	for _, r := range responses {
		id, ok := r.ID.(float64)
		if !ok {
			t.Fatalf("response id %v (%T) is not a number", r.ID, r.ID)
		}
		m[int(id)] = r
	}
	return m
}

// toolText extracts the JSON text of a tools/call result decoded off the wire.
func toolText(t *testing.T, resp MCPResponse) string {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("id %v: unexpected error: %s (%v)", resp.ID, resp.Error.Message, resp.Error.Data)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("id %v: result should be an object", resp.ID)
	}
	content, ok := result["content"].([]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("id %v: result should hold one content item", resp.ID)
	}
	item, _ := content[0].(map[string]interface{})
	text, _ := item["text"].(string)
	return text
}

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
}

func TestServe_PrintSession(t *testing.T) {
	s := New()
	responses := serve(t, s,
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		toolCallLine(t, 2, "raster_new", map[string]interface{}{
			"name": "a", "width": 2, "height": 2, "format": "rgba", "fill": "#6496C8",
		}),
		toolCallLine(t, 3, "raster_new", map[string]interface{}{
			"name": "b", "width": 1, "height": 1, "format": "rgba", "fill": "#C89664",
		}),
		toolCallLine(t, 4, "raster_print", map[string]interface{}{"name": "a", "source": "b"}),
		toolCallLine(t, 5, "raster_pixels", map[string]interface{}{"name": "a"}),
		toolCallLine(t, 6, "raster_set_format", map[string]interface{}{"name": "a", "format": "cmyk"}),
		toolCallLine(t, 7, "raster_info", map[string]interface{}{"name": "a"}),
	)

	if len(responses) != 7 {
		t.Fatalf("responses: got %d, want 7 (notification gets none)", len(responses))
	}
	got := byID(t, responses)

	var px pixelsResult
	if err := json.Unmarshal([]byte(toolText(t, got[5])), &px); err != nil {
		t.Fatalf("failed to decode pixels: %v", err)
	}
	data, err := base64.StdEncoding.DecodeString(px.Data)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	want := []byte{
		45, 45, 45, 255, 100, 150, 200, 255,
		100, 150, 200, 255, 100, 150, 200, 255,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("composited bytes:\n got %v\nwant %v", data, want)
	}

	bad := got[6]
	if bad.Error == nil || bad.Error.Code != -32000 {
		t.Fatalf("bad format: got %+v, want a -32000 error", bad.Error)
	}
	if data, _ := bad.Error.Data.(string); !strings.Contains(data, "cmyk") {
		t.Errorf("error data should name the format, got %q", data)
	}

	// The failed conversion left the buffer as it was.
	var info bufferResult
	if err := json.Unmarshal([]byte(toolText(t, got[7])), &info); err != nil {
		t.Fatalf("failed to decode info: %v", err)
	}
	if info.Format != "rgba" || info.ByteLength != 16 {
		t.Errorf("info after failed conversion: %s, %d bytes", info.Format, info.ByteLength)
	}
}

func TestServe_ToolsList(t *testing.T) {
	responses := serve(t, New(), `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if len(responses) != 1 {
		t.Fatalf("responses: got %d, want 1", len(responses))
	}

	result, _ := responses[0].Result.(map[string]interface{})
	tools, _ := result["tools"].([]interface{})
	if len(tools) != len(GetToolDefinitions()) {
		t.Fatalf("tools: got %d, want %d", len(tools), len(GetToolDefinitions()))
	}
	for _, tool := range tools {
		name, _ := tool.(map[string]interface{})["name"].(string)
		if !strings.HasPrefix(name, "raster_") {
			t.Errorf("unexpected tool name %q", name)
		}
	}
}

func TestServe_SkipsNoise(t *testing.T) {
	responses := serve(t, New(),
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	)

	if len(responses) != 2 || responses[0].ID != float64(1) || responses[1].ID != float64(2) {
		t.Errorf("responses: got %+v, want ids [1 2]", responses)
	}
}

func TestServe_EchoesRequestIDs(t *testing.T) {
	responses := serve(t, New(),
		`{"jsonrpc":"2.0","id":"frame-1","method":"ping"}`,
		`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":null,"method":"ping"}`,
	)

	want := []interface{}{"frame-1", float64(42), nil}
	if len(responses) != len(want) {
		t.Fatalf("responses: got %d, want %d", len(responses), len(want))
	}
	for i, r := range responses {
		if r.ID != want[i] {
			t.Errorf("response %d: id %v (%T), want %v", i, r.ID, r.ID, want[i])
		}
		if r.JSONRPC != "2.0" {
			t.Errorf("response %d: jsonrpc %q", i, r.JSONRPC)
		}
	}
}

func TestServe_ErrorCodes(t *testing.T) {
	s := New()
	got := byID(t, serve(t, s,
		`{"jsonrpc":"2.0","id":1,"method":"raster/unknown"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":"not an object"}`,
		toolCallLine(t, 3, "raster_info", map[string]interface{}{"name": "missing"}),
		toolCallLine(t, 4, "raster_blur", map[string]interface{}{"name": "missing"}),
	))

	wantCodes := map[int]int{1: -32601, 2: -32602, 3: -32000, 4: -32000}
	for id, code := range wantCodes {
		resp, ok := got[id]
		if !ok {
			t.Errorf("id %d: no response", id)
			continue
		}
		if resp.Error == nil || resp.Error.Code != code {
			t.Errorf("id %d: got error %+v, want code %d", id, resp.Error, code)
		}
	}
}

func TestServe_SurvivesHandlerPanic(t *testing.T) {
	s := New()
	s.cache.Put("broken", nil)

	got := byID(t, serve(t, s,
		toolCallLine(t, 1, "raster_info", map[string]interface{}{"name": "broken"}),
		toolCallLine(t, 2, "raster_new", map[string]interface{}{"name": "next", "width": 1, "height": 1}),
	))

	if resp := got[1]; resp.Error == nil || resp.Error.Code != -32000 {
		t.Errorf("panicking tool: got %+v, want a -32000 error", resp.Error)
	}
	if !strings.Contains(toolText(t, got[2]), `"next"`) {
		t.Error("the server should keep serving after a handler panic")
	}
}

func TestHandleInitialize(t *testing.T) {
	s := New()
	resp := s.handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	if resp.ID != "init-1" {
		t.Errorf("ID: got %v, want init-1", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "raster-tools-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != "0.1.0" {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}
