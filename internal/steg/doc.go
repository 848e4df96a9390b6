// Package steg hides a message in the least significant bits of a carrier
// image's pixel channels and recovers it.
//
// # Bitstream Layout
//
// A hidden payload is framed as a 32-bit big-endian byte count followed by the
// payload bytes, each byte written most significant bit first:
//
//	| length (32 bits, big-endian) | payload byte 0 | payload byte 1 | ... |
//
// The length prefix makes extraction independent of payload content: binary
// data and text containing any delimiter round-trip unchanged.
//
// # Traversal Order
//
// Bits are written one per channel, replacing only bit 0. Pixels are visited
// in row-major order from the top-left corner; within a pixel, channels are
// visited R, G, B and then A when Options.UseAlpha is set. Channels after the
// last payload bit are never touched.
//
// # Capacity
//
// A carrier of width W and height H holds C*W*H bits, where C is 3, or 4 with
// UseAlpha. The largest message is (C*W*H - 32) / 8 bytes.
//
// # Compression
//
// With Options.Compress the message is zstd-compressed before framing, so the
// length prefix counts compressed bytes. Decoding with Compress set rejects a
// payload that is not a zstd frame as not found.
//
// # Outcomes and Errors
//
// Encode fails only when the carrier cannot be decoded (ErrCarrierUnreadable),
// the payload does not fit (*PayloadTooLargeError) or the output format is not
// lossless (ErrUnsupportedOutputFormat).
//
// Decode reports a missing message as an Outcome with Found == false, never as
// an error. The only error Decode returns is ErrCarrierUnreadable.
//
// Nothing in this package logs, retries or keeps state between calls; every
// call decodes and owns its own pixel grid, so calls may run concurrently.
//
// # Example
//
//	out, err := steg.Encode(coverPNG, "meet at dawn", steg.Options{})
//	if err != nil {
//	    return err
//	}
//	outcome, err := steg.Decode(out, steg.Options{})
//	if err != nil {
//	    return err
//	}
//	if outcome.Found {
//	    fmt.Println(outcome.Message)
//	}
package steg
