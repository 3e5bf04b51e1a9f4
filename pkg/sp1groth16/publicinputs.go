// Copyright 2025 Certen Protocol
//
// Public-input builder: derives the two BN254 scalar field elements the
// verifier engine checks from an SP1 program's vkey hash and its raw
// public-output byte stream.

package sp1groth16

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// PublicInputsLen is the number of public scalars an SP1 Groth16 proof
// commits to: the program vkey hash and the committed-values digest.
const PublicInputsLen = 2

// PublicInputs is the ordered pair of 32-byte big-endian field-element
// encodings fed to the verifier engine.
type PublicInputs [PublicInputsLen][32]byte

// HashPublicInputs computes SHA-256 over b and clears the top 3 bits of
// the leading byte so the result fits the BN254 scalar field. This mask
// must match the SP1 Ethereum verifier's in-circuit hashing; see the Open
// Questions note in DESIGN.md for why it is & 0x1F and not & 0x3F.
func HashPublicInputs(b []byte) [32]byte {
	digest := sha256.Sum256(b)
	digest[0] &= 0x1F
	return digest
}

// Groth16PublicValues concatenates the low 31 bytes of the SP1 program
// vkey hash with the masked hash of its public outputs, producing the
// 63-byte buffer the verifier splits into two 32-byte scalars, left-padding
// the first with a leading zero byte (see LoadPublicInputsFromValues).
func Groth16PublicValues(sp1VkeyHash [32]byte, sp1PublicInputs []byte) []byte {
	out := make([]byte, 0, 64)
	out = append(out, sp1VkeyHash[1:]...)
	digest := HashPublicInputs(sp1PublicInputs)
	out = append(out, digest[:]...)
	return out
}

// DecodeSP1VkeyHash decodes a "0x"-prefixed, 64-hex-character SP1 program
// vkey hash into 32 raw bytes.
func DecodeSP1VkeyHash(s string) ([32]byte, error) {
	var out [32]byte
	trimmed := strings.TrimPrefix(s, "0x")
	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidProgramVkeyHash, err)
	}
	if len(decoded) != 32 {
		return out, fmt.Errorf("%w: decoded vkey hash must be 32 bytes, got %d", ErrInvalidProgramVkeyHash, len(decoded))
	}
	copy(out[:], decoded)
	return out, nil
}

// LoadPublicInputsFromValues splits a 63-byte groth16 public-values buffer
// (31-byte vkey hash tail || 32-byte masked digest) into the two 32-byte
// scalars the verifier engine consumes, left-padding the vkey hash tail
// with a leading zero byte.
func LoadPublicInputsFromValues(values []byte) (PublicInputs, error) {
	var pi PublicInputs
	if len(values) != 63 {
		return pi, fmt.Errorf("%w: groth16 public values must be 63 bytes, got %d", ErrInvalidInput, len(values))
	}
	// values[0:31] is the vkey hash tail; left-pad with a zero byte.
	copy(pi[0][1:], values[0:31])
	copy(pi[1][:], values[31:63])
	return pi, nil
}
