package steg

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// maxUnpackedBytes bounds the decompressed size of a payload read from an
// untrusted carrier.
const maxUnpackedBytes = 64 << 20

// Pack turns a message into the payload that is embedded in the carrier.
// Without opts.Compress it returns message unchanged.
func Pack(message []byte, opts Options) ([]byte, error) {
	if !opts.Compress {
		return message, nil
	}
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(message, nil), nil
}

// Unpack reverses Pack.
func Unpack(payload []byte, opts Options) ([]byte, error) {
	if !opts.Compress {
		return payload, nil
	}
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(maxUnpackedBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer dec.Close()
	message, err := dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return message, nil
}
