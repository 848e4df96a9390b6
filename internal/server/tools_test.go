package server

import (
	"testing"
)

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"image_load",
		"steg_capacity",
		"steg_encode",
		"steg_decode",
		"steg_compare",
	}

	toolMap := toolsByName()
	if len(toolMap) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(toolMap), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			// Every required parameter must be declared
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %q has no property definition", r)
				}
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := map[string][]string{
		"image_load":    {"path"},
		"steg_capacity": {"path"},
		"steg_encode":   {"path", "message"},
		"steg_decode":   {"path"},
		"steg_compare":  {"original_path", "stego_path"},
	}

	toolMap := toolsByName()
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, _ := toolMap[name].InputSchema["required"].([]string)
			if len(got) != len(want) {
				t.Fatalf("required: got %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("required[%d]: got %s, want %s", i, got[i], want[i])
				}
			}
		})
	}
}

func TestToolDefinitions_EncodeFormats(t *testing.T) {
	props := toolsByName()["steg_encode"].InputSchema["properties"].(map[string]interface{})
	format := props["format"].(map[string]interface{})

	enum, ok := format["enum"].([]string)
	if !ok {
		t.Fatal("format enum should be a string slice")
	}
	for _, f := range enum {
		if f == "jpeg" || f == "jpg" || f == "gif" {
			t.Errorf("lossy format %q must not be offered", f)
		}
	}
	if len(enum) != 4 {
		t.Errorf("format enum: got %v, want 4 lossless formats", enum)
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer()
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1})

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
