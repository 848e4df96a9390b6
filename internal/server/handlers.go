package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ironsheep/steg-mcp/internal/analysis"
	"github.com/ironsheep/steg-mcp/internal/carrier"
	"github.com/ironsheep/steg-mcp/internal/steg"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "steg_encode", "steg_decode").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	logger := log.WithField("tool", params.Name)
	logger.Debug("Tool call")

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		logger.WithError(err).Warn("Tool execution failed")
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

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies server defaults for omitted options
//  3. Loads carrier bytes through the cache
//  4. Calls into the steg, carrier or analysis package
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)

	case "steg_capacity":
		return s.handleStegCapacity(args)
	case "steg_encode":
		return s.handleStegEncode(args)
	case "steg_decode":
		return s.handleStegDecode(args)
	case "steg_compare":
		return s.handleStegCompare(args)

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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating a missing object as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// loadCarrier reads and decodes the image at path.
func (s *Server) loadCarrier(path string) (*carrier.PixelGrid, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	data, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	grid, err := carrier.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

func (s *Server) useAlpha(v *bool) bool {
	if v == nil {
		return s.cfg.UseAlpha
	}
	return *v
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

type imageLoadResult struct {
	Path string `json:"path"`
	carrier.Info
	CapacityBits    int `json:"capacity_bits"`
	MaxMessageBytes int `json:"max_message_bytes"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	data, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	info, err := carrier.Inspect(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Path, err)
	}

	opts := steg.Options{UseAlpha: s.cfg.UseAlpha}
	return &imageLoadResult{
		Path:            a.Path,
		Info:            *info,
		CapacityBits:    steg.CapacityBitsFor(info.Width, info.Height, opts),
		MaxMessageBytes: steg.MaxMessageBytesFor(info.Width, info.Height, opts),
	}, nil
}

// === Steganography ===

type stegCapacityArgs struct {
	Path     string `json:"path"`
	UseAlpha *bool  `json:"use_alpha"`
}

type stegCapacityResult struct {
	Width            int  `json:"width"`
	Height           int  `json:"height"`
	UseAlpha         bool `json:"use_alpha"`
	ChannelsPerPixel int  `json:"channels_per_pixel"`
	CapacityBits     int  `json:"capacity_bits"`
	MaxMessageBytes  int  `json:"max_message_bytes"`
}

func (s *Server) handleStegCapacity(args json.RawMessage) (interface{}, error) {
	var a stegCapacityArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.loadCarrier(a.Path)
	if err != nil {
		return nil, err
	}

	opts := steg.Options{UseAlpha: s.useAlpha(a.UseAlpha)}
	return &stegCapacityResult{
		Width:            grid.Width(),
		Height:           grid.Height(),
		UseAlpha:         opts.UseAlpha,
		ChannelsPerPixel: steg.ChannelsPerPixel(opts),
		CapacityBits:     steg.CapacityBits(grid, opts),
		MaxMessageBytes:  steg.MaxMessageBytes(grid, opts),
	}, nil
}

type stegEncodeArgs struct {
	Path       string  `json:"path"`
	Message    *string `json:"message"`
	OutputPath string  `json:"output_path"`
	Format     string  `json:"format"`
	UseAlpha   *bool   `json:"use_alpha"`
	Compress   bool    `json:"compress"`
}

type stegEncodeResult struct {
	OutputPath    string `json:"output_path,omitempty"`
	ImageBase64   string `json:"image_base64,omitempty"`
	Format        string `json:"format"`
	MimeType      string `json:"mime_type"`
	MessageBytes  int    `json:"message_bytes"`
	PayloadBytes  int    `json:"payload_bytes"`
	BitsUsed      int    `json:"bits_used"`
	BitsAvailable int    `json:"bits_available"`
	UseAlpha      bool   `json:"use_alpha"`
	Compressed    bool   `json:"compressed"`
}

func (s *Server) handleStegEncode(args json.RawMessage) (interface{}, error) {
	var a stegEncodeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Message == nil {
		return nil, errors.New("message is required")
	}
	message := strings.TrimSpace(*a.Message)

	format, err := s.outputFormat(a.Format, a.OutputPath)
	if err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	data, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := steg.Options{
		UseAlpha: s.useAlpha(a.UseAlpha),
		Format:   format,
		Compress: a.Compress,
	}
	out, stats, err := steg.EncodeWithStats(data, []byte(message), opts)
	if err != nil {
		var tooLarge *steg.PayloadTooLargeError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("message does not fit in %s: %w", a.Path, err)
		}
		return nil, fmt.Errorf("%s: %w", a.Path, err)
	}

	result := &stegEncodeResult{
		Format:        format.String(),
		MimeType:      format.MimeType(),
		MessageBytes:  len(message),
		PayloadBytes:  stats.PayloadBytes,
		BitsUsed:      stats.RequiredBits,
		BitsAvailable: stats.AvailableBits,
		UseAlpha:      opts.UseAlpha,
		Compressed:    opts.Compress,
	}

	if a.OutputPath == "" {
		result.ImageBase64 = base64.StdEncoding.EncodeToString(out)
		return result, nil
	}

	if err := writeFileAtomic(a.OutputPath, out); err != nil {
		return nil, err
	}
	s.cache.Evict(a.OutputPath)
	log.WithFields(log.Fields{
		"path":      a.OutputPath,
		"format":    format,
		"bits_used": stats.RequiredBits,
	}).Info("Wrote stego image")

	result.OutputPath = a.OutputPath
	return result, nil
}

// outputFormat picks the encode target: an explicit format name first, then
// the extension of outputPath, then the configured default. A format name that
// disagrees with a recognized outputPath extension is rejected so the bytes
// written always match the file name.
func (s *Server) outputFormat(name, outputPath string) (carrier.Format, error) {
	switch {
	case name != "":
		f, err := carrier.ParseFormat(name)
		if err != nil || outputPath == "" {
			return f, err
		}
		if ext, err := carrier.FormatFromFilename(outputPath); err == nil && ext != f {
			return f, fmt.Errorf("format %s does not match output path extension %q", f, filepath.Ext(outputPath))
		}
		return f, nil
	case outputPath != "":
		return carrier.FormatFromFilename(outputPath)
	default:
		return s.cfg.OutputFormat, nil
	}
}

type stegDecodeArgs struct {
	Path     string `json:"path"`
	UseAlpha *bool  `json:"use_alpha"`
	Compress bool   `json:"compress"`
}

type stegDecodeResult struct {
	Found   bool    `json:"found"`
	Message *string `json:"message,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

func (s *Server) handleStegDecode(args json.RawMessage) (interface{}, error) {
	var a stegDecodeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	data, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := steg.Options{UseAlpha: s.useAlpha(a.UseAlpha), Compress: a.Compress}
	outcome, err := steg.Decode(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Path, err)
	}
	if !outcome.Found {
		return &stegDecodeResult{Reason: "No hidden message found: " + outcome.Reason}, nil
	}
	return &stegDecodeResult{Found: true, Message: &outcome.Message}, nil
}

type stegCompareArgs struct {
	OriginalPath   string `json:"original_path"`
	StegoPath      string `json:"stego_path"`
	IncludeDiffMap bool   `json:"include_diff_map"`
}

type stegCompareResult struct {
	*analysis.Report
	DiffMap *analysis.DiffMapResult `json:"diff_map,omitempty"`
}

func (s *Server) handleStegCompare(args json.RawMessage) (interface{}, error) {
	var a stegCompareArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	original, err := s.loadCarrier(a.OriginalPath)
	if err != nil {
		return nil, fmt.Errorf("original: %w", err)
	}
	stego, err := s.loadCarrier(a.StegoPath)
	if err != nil {
		return nil, fmt.Errorf("stego: %w", err)
	}

	report, err := analysis.Compare(original.Image(), stego.Image())
	if err != nil {
		return nil, err
	}
	result := &stegCompareResult{Report: report}

	if a.IncludeDiffMap {
		diff, err := analysis.RenderDiffMap(original.Image(), stego.Image())
		if err != nil {
			return nil, err
		}
		result.DiffMap = diff
	}
	return result, nil
}

// writeFileAtomic writes data to a uniquely named temporary file next to path
// and renames it into place. The temporary file is removed on every failure.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}
