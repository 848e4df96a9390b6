package steg

import "fmt"

// ToBits expands data into one element per bit, most significant bit first.
// Every element is 0 or 1.
func ToBits(data []byte) []uint8 {
	bits := make([]uint8, len(data)*8)
	for i, b := range data {
		for j := 0; j < 8; j++ {
			bits[i*8+j] = (b >> (7 - j)) & 1
		}
	}
	return bits
}

// FromBits packs bits produced by ToBits back into bytes.
func FromBits(bits []uint8) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits is not a whole number of bytes", ErrMalformedBitstream, len(bits))
	}
	data := make([]byte, len(bits)/8)
	for i, bit := range bits {
		if bit > 1 {
			return nil, fmt.Errorf("%w: bit %d has value %d", ErrMalformedBitstream, i, bit)
		}
		data[i/8] |= bit << (7 - i%8)
	}
	return data, nil
}
