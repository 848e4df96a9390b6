package steg

import "github.com/ironsheep/steg-mcp/internal/carrier"

// Options configures an encode or decode call. The zero value uses R, G, B
// only, writes PNG and stores the payload uncompressed.
type Options struct {
	// UseAlpha also embeds bits in the alpha channel. It raises capacity by a
	// third but can make transparent areas visibly change. Decode must use the
	// same setting as Encode.
	UseAlpha bool

	// Format is the output container for Encode. It must be lossless.
	// Ignored by Decode.
	Format carrier.Format

	// Compress zstd-compresses the payload before embedding. Decode must use
	// the same setting as Encode.
	Compress bool
}
