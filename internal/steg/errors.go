package steg

import (
	"errors"
	"fmt"

	"github.com/ironsheep/steg-mcp/internal/carrier"
)

var (
	// ErrPayloadTooLarge is matched by every *PayloadTooLargeError.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrMalformedBitstream is returned by FromBits for a bit count that is
	// not a multiple of 8 or for values other than 0 and 1.
	ErrMalformedBitstream = errors.New("malformed bitstream")

	// ErrCarrierUnreadable is returned when carrier bytes are not a decodable image.
	ErrCarrierUnreadable = carrier.ErrCarrierUnreadable

	// ErrUnsupportedOutputFormat is returned when the output format would not
	// reproduce the stego pixels exactly.
	ErrUnsupportedOutputFormat = carrier.ErrUnsupportedOutputFormat
)

// PayloadTooLargeError reports a payload that does not fit in a carrier.
// Both counts are in bits and include the 32-bit length prefix.
type PayloadTooLargeError struct {
	Required  int
	Available int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload too large: requires %d bits, carrier holds %d", e.Required, e.Available)
}

// Is reports whether target is ErrPayloadTooLarge.
func (e *PayloadTooLargeError) Is(target error) bool {
	return target == ErrPayloadTooLarge
}
