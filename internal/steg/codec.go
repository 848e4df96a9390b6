package steg

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ironsheep/steg-mcp/internal/carrier"
)

// Reasons reported by an Outcome that is not Found.
const (
	ReasonCarrierTooSmall  = "carrier too small to hold a length prefix"
	ReasonLengthOutOfRange = "length prefix exceeds carrier capacity"
	ReasonNotUTF8          = "payload is not valid UTF-8"
	ReasonNotCompressed    = "payload is not zstd compressed"
)

// Stats describes a completed Embed.
type Stats struct {
	// PayloadBytes is the number of payload bytes after the length prefix.
	PayloadBytes int

	// RequiredBits is the number of channels modified: prefix plus payload bits.
	RequiredBits int

	// AvailableBits is the carrier capacity under the options used.
	AvailableBits int
}

// Frame builds the bitstream for payload: the 32-bit big-endian length
// followed by the payload bits.
func Frame(payload []byte) ([]uint8, error) {
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes cannot be described by a 32-bit length", ErrPayloadTooLarge, len(payload))
	}
	framed := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(framed, uint32(len(payload)))
	copy(framed[4:], payload)
	return ToBits(framed), nil
}

// Embed writes payload into the LSBs of grid in traversal order.
//
// The capacity check happens before any channel is modified: on error grid is
// left exactly as it was.
//
// Returns:
//   - Stats: bit and byte counts for the embedded payload.
//   - error: *PayloadTooLargeError if the framed payload does not fit.
func Embed(grid *carrier.PixelGrid, payload []byte, opts Options) (Stats, error) {
	stats := Stats{
		PayloadBytes:  len(payload),
		RequiredBits:  RequiredBits(len(payload)),
		AvailableBits: CapacityBits(grid, opts),
	}
	if !Fits(stats.RequiredBits, grid, opts) {
		return stats, &PayloadTooLargeError{Required: stats.RequiredBits, Available: stats.AvailableBits}
	}

	bits, err := Frame(payload)
	if err != nil {
		return stats, err
	}

	w := newWalker(grid, opts)
	for _, bit := range bits {
		x, y, c := w.next()
		grid.SetChannel(x, y, c, grid.Channel(x, y, c)&^1 | bit)
	}
	return stats, nil
}

// Extract reads a length-prefixed payload from the LSBs of grid.
//
// A prefix that claims more bytes than the carrier can hold after the prefix
// is treated as the absence of a message, not as an error. The returned
// Outcome carries the raw payload; Message is left empty.
func Extract(grid *carrier.PixelGrid, opts Options) Outcome {
	capacity := CapacityBits(grid, opts)
	if capacity < PrefixBits {
		return notFound(ReasonCarrierTooSmall)
	}

	w := newWalker(grid, opts)
	header, err := FromBits(w.read(PrefixBits))
	if err != nil {
		return notFound(err.Error())
	}

	n := binary.BigEndian.Uint32(header)
	if uint64(n) > uint64(maxPayloadBytes(capacity)) {
		return notFound(ReasonLengthOutOfRange)
	}

	payload, err := FromBits(w.read(int(n) * 8))
	if err != nil {
		return notFound(err.Error())
	}
	return Outcome{Found: true, Payload: payload}
}

// walker visits channels in traversal order: row-major pixels, then
// R, G, B[, A] within each pixel.
type walker struct {
	grid     *carrier.PixelGrid
	channels int
	x, y, c  int
}

func newWalker(grid *carrier.PixelGrid, opts Options) *walker {
	return &walker{grid: grid, channels: ChannelsPerPixel(opts)}
}

// next returns the coordinates of the next channel. Callers must not step
// past CapacityBits.
func (w *walker) next() (x, y, c int) {
	x, y, c = w.x, w.y, w.c
	w.c++
	if w.c == w.channels {
		w.c = 0
		w.x++
		if w.x == w.grid.Width() {
			w.x = 0
			w.y++
		}
	}
	return x, y, c
}

// read returns the LSBs of the next n channels.
func (w *walker) read(n int) []uint8 {
	bits := make([]uint8, n)
	for i := range bits {
		x, y, c := w.next()
		bits[i] = w.grid.Channel(x, y, c) & 1
	}
	return bits
}
