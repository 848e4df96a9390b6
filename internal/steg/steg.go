package steg

import (
	"fmt"
	"unicode/utf8"

	"github.com/ironsheep/steg-mcp/internal/carrier"
)

// Outcome is the result of probing a carrier for a hidden message.
//
// Found is false for carriers that were never encoded, were encoded with
// different Options, or were damaged. Reason then says why; it is meant for
// humans and may change.
type Outcome struct {
	Found   bool
	Message string
	Payload []byte
	Reason  string
}

func notFound(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Encode hides message in the carrier image and returns the re-encoded image.
//
// Parameters:
//   - carrierBytes: The encoded cover image in any decodable format.
//   - message: The text to hide. It is embedded byte for byte.
//   - opts: Channel, output format and compression options.
//
// Returns:
//   - []byte: The stego image in opts.Format. Output is deterministic: the
//     same carrier, message and options always produce the same bytes.
//   - error: ErrCarrierUnreadable, *PayloadTooLargeError or
//     ErrUnsupportedOutputFormat. Match with errors.Is / errors.As.
func Encode(carrierBytes []byte, message string, opts Options) ([]byte, error) {
	return EncodeBytes(carrierBytes, []byte(message), opts)
}

// EncodeBytes is Encode for an arbitrary binary message.
func EncodeBytes(carrierBytes []byte, message []byte, opts Options) ([]byte, error) {
	out, _, err := EncodeWithStats(carrierBytes, message, opts)
	return out, err
}

// EncodeWithStats is EncodeBytes that also reports how much of the carrier
// the message used.
func EncodeWithStats(carrierBytes []byte, message []byte, opts Options) ([]byte, Stats, error) {
	if !opts.Format.Lossless() {
		return nil, Stats{}, fmt.Errorf("%w: %s is not lossless", ErrUnsupportedOutputFormat, opts.Format)
	}
	if opts.UseAlpha && !opts.Format.KeepsAlpha() {
		return nil, Stats{}, fmt.Errorf("%w: %s cannot carry bits in the alpha channel", ErrUnsupportedOutputFormat, opts.Format)
	}

	grid, err := carrier.Decode(carrierBytes)
	if err != nil {
		return nil, Stats{}, err
	}

	payload, err := Pack(message, opts)
	if err != nil {
		return nil, Stats{}, err
	}

	stats, err := Embed(grid, payload, opts)
	if err != nil {
		return nil, stats, err
	}

	out, err := carrier.Encode(grid, opts.Format)
	if err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

// Decode looks for a message hidden by Encode.
//
// A carrier without a recognizable message is a normal Outcome with Found
// false. The only error is ErrCarrierUnreadable, returned when carrierBytes
// is not an image at all.
func Decode(carrierBytes []byte, opts Options) (Outcome, error) {
	outcome, err := DecodeBytes(carrierBytes, opts)
	if err != nil || !outcome.Found {
		return outcome, err
	}
	if !utf8.Valid(outcome.Payload) {
		return notFound(ReasonNotUTF8), nil
	}
	outcome.Message = string(outcome.Payload)
	return outcome, nil
}

// DecodeBytes is Decode for binary messages: Payload holds the recovered
// message and no UTF-8 validation is performed.
func DecodeBytes(carrierBytes []byte, opts Options) (Outcome, error) {
	grid, err := carrier.Decode(carrierBytes)
	if err != nil {
		return Outcome{}, err
	}
	return ExtractMessage(grid, opts), nil
}

// ExtractMessage is Extract followed by Unpack.
func ExtractMessage(grid *carrier.PixelGrid, opts Options) Outcome {
	outcome := Extract(grid, opts)
	if !outcome.Found {
		return outcome
	}
	message, err := Unpack(outcome.Payload, opts)
	if err != nil {
		return notFound(ReasonNotCompressed)
	}
	outcome.Payload = message
	return outcome
}
