// Package server implements the MCP (Model Context Protocol) server for the
// steganography tools.
//
// This package provides a JSON-RPC 2.0 server that exposes LSB message hiding
// and recovery through the MCP protocol, so MCP-compatible clients can embed
// text in images, read it back and check how much an image was altered.
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
//   - image_load: Image metadata plus hidden-message capacity
//   - steg_capacity: Capacity in bits and message bytes
//   - steg_encode: Hide a message, write or return the stego image
//   - steg_decode: Recover a hidden message
//   - steg_compare: Distortion report and optional bit-flip map
//
// # Configuration
//
// Defaults come from the environment (see ConfigFromEnv):
//   - STEG_MCP_MAX_CARRIER_BYTES: largest image file accepted (16 MiB)
//   - STEG_MCP_USE_ALPHA: default for use_alpha (false)
//   - STEG_MCP_OUTPUT_FORMAT: default output format (png)
//
// # Image Caching
//
// Image files are cached by path and reused across tool calls until their
// size or modification time changes. Files written by steg_encode are
// evicted immediately.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// An image without a hidden message is not an error: steg_decode returns
// found=false with a reason.
//
// # Usage
//
//	srv := server.New(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
