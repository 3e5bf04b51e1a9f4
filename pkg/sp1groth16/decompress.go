// Copyright 2025 Certen Protocol
//
// Point decompression: wires the pure byte-codec transforms in codec.go to
// the BN254 primitive black box in internal/bn254prim.

package sp1groth16

import (
	"fmt"

	"github.com/certen/sp1-groth16-verifier/internal/bn254prim"
)

// DecompressG1 turns a 32-byte gnark-wire compressed G1 x-coordinate into a
// 64-byte uncompressed (X||Y) point.
func DecompressG1(compressed [32]byte) ([64]byte, error) {
	ark, err := gnarkCompressedXToArkCompressedX(compressed[:])
	if err != nil {
		return [64]byte{}, fmt.Errorf("%w: %v", ErrG1Compression, err)
	}
	var arkArr [32]byte
	copy(arkArr[:], ark)
	out, err := bn254prim.DecompressG1(arkArr)
	if err != nil {
		return [64]byte{}, fmt.Errorf("%w: %v", ErrG1Compression, err)
	}
	return out, nil
}

// DecompressG2 turns a 64-byte gnark-wire compressed G2 x-coordinate into a
// 128-byte uncompressed (X0||X1||Y0||Y1) point.
func DecompressG2(compressed [64]byte) ([128]byte, error) {
	ark, err := gnarkCompressedXToArkCompressedX(compressed[:])
	if err != nil {
		return [128]byte{}, fmt.Errorf("%w: %v", ErrG2Compression, err)
	}
	var arkArr [64]byte
	copy(arkArr[:], ark)
	out, err := bn254prim.DecompressG2(arkArr)
	if err != nil {
		return [128]byte{}, fmt.Errorf("%w: %v", ErrG2Compression, err)
	}
	return out, nil
}

// NegateG1 negates an uncompressed G1 point, used to fold proof.A's pairing
// term into the product-equals-one form of the Groth16 check.
func NegateG1(point [64]byte) ([64]byte, error) {
	out, err := bn254prim.NegateG1(point)
	if err != nil {
		return [64]byte{}, fmt.Errorf("%w: %v", ErrArithmetic, err)
	}
	return out, nil
}
