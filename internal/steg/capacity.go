package steg

import "github.com/ironsheep/steg-mcp/internal/carrier"

// PrefixBits is the width of the big-endian length prefix in front of every payload.
const PrefixBits = 32

// ChannelsPerPixel returns the number of channels that carry payload bits:
// R, G, B, plus A when opts.UseAlpha is set.
func ChannelsPerPixel(opts Options) int {
	if opts.UseAlpha {
		return 4
	}
	return 3
}

// CapacityBits returns the number of payload bits grid can hold, including
// the length prefix.
func CapacityBits(grid *carrier.PixelGrid, opts Options) int {
	return CapacityBitsFor(grid.Width(), grid.Height(), opts)
}

// CapacityBitsFor is CapacityBits for a carrier of the given dimensions.
func CapacityBitsFor(width, height int, opts Options) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return ChannelsPerPixel(opts) * width * height
}

// RequiredBits returns the number of bits needed to embed a payload of n bytes.
func RequiredBits(n int) int {
	return PrefixBits + 8*n
}

// Fits reports whether payloadBits, which must include the length prefix,
// fit in grid.
func Fits(payloadBits int, grid *carrier.PixelGrid, opts Options) bool {
	return payloadBits <= CapacityBits(grid, opts)
}

// MaxMessageBytes returns the largest payload, in bytes, grid can hold.
func MaxMessageBytes(grid *carrier.PixelGrid, opts Options) int {
	return maxPayloadBytes(CapacityBits(grid, opts))
}

// MaxMessageBytesFor is MaxMessageBytes for a carrier of the given dimensions.
func MaxMessageBytesFor(width, height int, opts Options) int {
	return maxPayloadBytes(CapacityBitsFor(width, height, opts))
}

func maxPayloadBytes(capacity int) int {
	if capacity < PrefixBits {
		return 0
	}
	return (capacity - PrefixBits) / 8
}
