package steg

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	messages := [][]byte{
		{},
		[]byte("HELLO"),
		bytes.Repeat([]byte("abc"), 400),
		{0x00, 0xFF, 0x28, 0xB5, 0x2F, 0xFD},
	}

	for _, compress := range []bool{false, true} {
		opts := Options{Compress: compress}
		for _, msg := range messages {
			packed, err := Pack(msg, opts)
			if err != nil {
				t.Fatalf("Pack(compress=%v) failed: %v", compress, err)
			}
			got, err := Unpack(packed, opts)
			if err != nil {
				t.Fatalf("Unpack(compress=%v) failed: %v", compress, err)
			}
			if !bytes.Equal(got, msg) {
				t.Errorf("compress=%v: got %d bytes, want %d", compress, len(got), len(msg))
			}
		}
	}
}

func TestPack_ShrinksRepetitiveMessages(t *testing.T) {
	msg := bytes.Repeat([]byte("a"), 500)

	packed, err := Pack(msg, Options{Compress: true})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if len(packed) >= len(msg)/4 {
		t.Errorf("packed size %d is not much smaller than %d", len(packed), len(msg))
	}
}

func TestPack_Uncompressed(t *testing.T) {
	msg := []byte("as is")
	packed, err := Pack(msg, Options{})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if !bytes.Equal(packed, msg) {
		t.Errorf("got %q, want %q", packed, msg)
	}
}

func TestUnpack_NotCompressed(t *testing.T) {
	if _, err := Unpack([]byte("plain text payload"), Options{Compress: true}); err == nil {
		t.Error("Unpack should fail on data that is not a zstd frame")
	}
}

func TestEncodeDecode_Compressed(t *testing.T) {
	// 16x16 RGB holds 92 message bytes.
	cover := encodePNG(t, createPatternImage(16, 16))
	msg := strings.Repeat("a", 500)

	_, err := Encode(cover, msg, Options{})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("uncompressed: got %v, want ErrPayloadTooLarge", err)
	}

	opts := Options{Compress: true}
	out, err := Encode(cover, msg, opts)
	if err != nil {
		t.Fatalf("compressed Encode failed: %v", err)
	}
	outcome := mustDecode(t, out, opts)
	if !outcome.Found || outcome.Message != msg {
		t.Errorf("got found=%v, %d bytes; want the %d-byte message", outcome.Found, len(outcome.Message), len(msg))
	}
}

func TestDecode_CompressionMismatch(t *testing.T) {
	cover := encodePNG(t, createPatternImage(16, 16))

	out, err := Encode(cover, "stored plain", Options{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	outcome := mustDecode(t, out, Options{Compress: true})
	if outcome.Found {
		t.Fatal("Decode with Compress should not accept an uncompressed payload")
	}
	if outcome.Reason != ReasonNotCompressed {
		t.Errorf("Reason: got %q, want %q", outcome.Reason, ReasonNotCompressed)
	}
}
