package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func useAlphaProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": "Also use the alpha channel (4 bits per pixel instead of 3). Must match between encode and decode. Defaults to the server setting.",
	}
}

func compressProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": description,
		"default":     false,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Read an image header and return its dimensions, format, alpha support and hidden-message capacity at the default settings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},

		// Steganography
		{
			Name:        "steg_capacity",
			Description: "Report how many bits and message bytes can be hidden in an image using least-significant-bit embedding.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty("Absolute path to the cover image"),
					"use_alpha": useAlphaProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "steg_encode",
			Description: "Hide a text message in the least significant bits of an image. The result is written losslessly (PNG, BMP, TIFF or QOI) to output_path, or returned as base64 when output_path is omitted. Surrounding whitespace is trimmed from the message.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the cover image (any readable format, including JPEG)"),
					"message": map[string]interface{}{
						"type":        "string",
						"description": "Text to hide",
					},
					"output_path": pathProperty("Optional absolute path for the stego image. Its extension selects the format unless format is given. Existing files are replaced."),
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Output format. Lossy formats are rejected because they destroy hidden bits. bmp and qoi accept only opaque results, so use png or tiff with use_alpha or translucent carriers. Must agree with the output_path extension when both are given.",
						"enum":        []string{"png", "bmp", "tiff", "qoi"},
					},
					"use_alpha": useAlphaProperty(),
					"compress":  compressProperty("zstd-compress the message before embedding. Must match between encode and decode."),
				},
				"required": []string{"path", "message"},
			},
		},
		{
			Name:        "steg_decode",
			Description: "Recover a message hidden by steg_encode. Returns found=false with a reason when the image carries no recognizable message.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty("Absolute path to the stego image"),
					"use_alpha": useAlphaProperty(),
					"compress":  compressProperty("Set if the message was encoded with compress=true"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "steg_compare",
			Description: "Measure the difference between a cover image and its stego version: changed pixels and channels, PSNR and CIEDE2000 color difference. Optionally renders a map of flipped bits.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"original_path": pathProperty("Absolute path to the original cover image"),
					"stego_path":    pathProperty("Absolute path to the encoded image"),
					"include_diff_map": map[string]interface{}{
						"type":        "boolean",
						"description": "Return a base64 PNG where every flipped least significant bit is a saturated channel",
						"default":     false,
					},
				},
				"required": []string{"original_path", "stego_path"},
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
