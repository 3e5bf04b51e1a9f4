// Copyright 2025 Certen Protocol
//
// Byte codec for bridging the gnark prover's wire encoding to the
// canonical uncompressed form the verifier consumes: endianness flips and
// compressed-point flag remapping. Kept as pure, separately testable
// functions so a future third encoding can reuse one step without the
// other (see DESIGN.md).

package sp1groth16

import "fmt"

// Flag bit layouts for a compressed point's leading byte. gnark packs the
// sign/infinity flag into the top two bits; ark-style consumers use a
// different bit pattern for the same three cases.
const (
	gnarkMask               byte = 0b11 << 6
	gnarkCompressedPositive byte = 0b10 << 6
	gnarkCompressedNegative byte = 0b11 << 6
	gnarkCompressedInfinity byte = 0b01 << 6

	arkMask               byte = 0b11 << 6
	arkCompressedPositive byte = 0b00 << 6
	arkCompressedNegative byte = 0b10 << 6
	arkCompressedInfinity byte = 0b01 << 6
)

// convertEndianness partitions buf into chunkSize-byte windows and reverses
// the bytes within each window in place, returning a new slice. len(buf)
// must be divisible by chunkSize.
func convertEndianness(buf []byte, chunkSize int) ([]byte, error) {
	if chunkSize <= 0 || len(buf)%chunkSize != 0 {
		return nil, fmt.Errorf("%w: buffer length %d not divisible by chunk size %d", ErrInvalidInput, len(buf), chunkSize)
	}
	out := make([]byte, len(buf))
	for start := 0; start < len(buf); start += chunkSize {
		chunk := buf[start : start+chunkSize]
		for i, b := range chunk {
			out[start+chunkSize-1-i] = b
		}
	}
	return out, nil
}

// gnarkFlagToArkFlag remaps the top two bits of a compressed point's
// leading byte from gnark's convention to ark's, preserving the low six
// bits. Any other top-bit combination is rejected.
func gnarkFlagToArkFlag(msb byte) (byte, error) {
	var arkFlag byte
	switch msb & gnarkMask {
	case gnarkCompressedPositive:
		arkFlag = arkCompressedPositive
	case gnarkCompressedNegative:
		arkFlag = arkCompressedNegative
	case gnarkCompressedInfinity:
		arkFlag = arkCompressedInfinity
	default:
		return 0, fmt.Errorf("%w: unrecognized gnark compression flag %#08b", ErrInvalidInput, msb)
	}
	return (msb &^ arkMask) | arkFlag, nil
}

// gnarkCompressedXToArkCompressedX remaps the leading byte's flag bits and
// reverses the whole buffer, turning a gnark-wire compressed x-coordinate
// (big-endian, gnark flag) into the canonical ark-style encoding
// (little-endian, ark flag packed into the final byte). x must be 32 bytes
// (compressed G1) or 64 bytes (compressed G2).
func gnarkCompressedXToArkCompressedX(x []byte) ([]byte, error) {
	if len(x) != 32 && len(x) != 64 {
		return nil, fmt.Errorf("%w: compressed x-coordinate must be 32 or 64 bytes, got %d", ErrInvalidInput, len(x))
	}
	remapped := make([]byte, len(x))
	copy(remapped, x)
	msb, err := gnarkFlagToArkFlag(remapped[0])
	if err != nil {
		return nil, err
	}
	remapped[0] = msb
	for i, j := 0, len(remapped)-1; i < j; i, j = i+1, j-1 {
		remapped[i], remapped[j] = remapped[j], remapped[i]
	}
	return remapped, nil
}
