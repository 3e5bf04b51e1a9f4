// Copyright 2025 Certen Protocol

package bn254prim

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// gnarkCompressedToArk mirrors the flag remap + byte reversal the codec
// layer in package sp1groth16 performs, duplicated here so this package's
// tests don't need to depend on that package.
func gnarkCompressedToArk(buf []byte) []byte {
	n := len(buf)
	out := make([]byte, n)
	copy(out, buf)
	switch out[0] & 0b11000000 {
	case 0b10000000: // gnark positive -> ark positive
		out[0] &^= 0b11000000
	case 0b11000000: // gnark negative -> ark negative
		out[0] = (out[0] &^ 0b11000000) | 0b10000000
	case 0b01000000: // infinity -> infinity, unchanged
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func TestDecompressG1MatchesGenerator(t *testing.T) {
	_, _, g1Aff, _ := bn254.Generators()

	gnarkCompressed := g1Aff.Bytes()
	ark := gnarkCompressedToArk(gnarkCompressed[:])
	var arkArr [32]byte
	copy(arkArr[:], ark)

	got, err := DecompressG1(arkArr)
	if err != nil {
		t.Fatalf("DecompressG1: %v", err)
	}
	want := g1Aff.RawBytes()
	if got != want {
		t.Fatalf("DecompressG1 mismatch:\ngot  %x\nwant %x", got, want)
	}
}

func TestDecompressG2MatchesGenerator(t *testing.T) {
	_, _, _, g2Aff := bn254.Generators()

	gnarkCompressed := g2Aff.Bytes()
	ark := gnarkCompressedToArk(gnarkCompressed[:])
	var arkArr [64]byte
	copy(arkArr[:], ark)

	got, err := DecompressG2(arkArr)
	if err != nil {
		t.Fatalf("DecompressG2: %v", err)
	}
	// gnark's RawBytes puts the A1 limbs first; DecompressG2 emits
	// X0||X1||Y0||Y1.
	x0, x1 := g2Aff.X.A0.Bytes(), g2Aff.X.A1.Bytes()
	y0, y1 := g2Aff.Y.A0.Bytes(), g2Aff.Y.A1.Bytes()
	var want [128]byte
	copy(want[0:32], x0[:])
	copy(want[32:64], x1[:])
	copy(want[64:96], y0[:])
	copy(want[96:128], y1[:])
	if got != want {
		t.Fatalf("DecompressG2 mismatch:\ngot  %x\nwant %x", got, want)
	}
}

func TestNegateG1ThenAddIsInfinity(t *testing.T) {
	_, _, g1Aff, _ := bn254.Generators()
	raw := g1Aff.RawBytes()

	neg, err := NegateG1(raw)
	if err != nil {
		t.Fatalf("NegateG1: %v", err)
	}

	sum, err := AddG1(raw, neg)
	if err != nil {
		t.Fatalf("AddG1: %v", err)
	}

	var infinity [64]byte // gnark-crypto's zero-value G1Affine encodes the point at infinity as (0, 0)
	if sum != infinity {
		t.Fatalf("g + (-g) did not reduce to infinity, got %x", sum)
	}
}

func TestScalarMulG1MatchesRepeatedAddition(t *testing.T) {
	_, _, g1Aff, _ := bn254.Generators()
	raw := g1Aff.RawBytes()

	doubled, err := ScalarMulG1(raw, big.NewInt(2))
	if err != nil {
		t.Fatalf("ScalarMulG1: %v", err)
	}
	added, err := AddG1(raw, raw)
	if err != nil {
		t.Fatalf("AddG1: %v", err)
	}
	if doubled != added {
		t.Fatalf("2*g != g+g: %x vs %x", doubled, added)
	}
}

func TestPairingCheckAcceptsInverseProduct(t *testing.T) {
	_, _, g1Aff, g2Aff := bn254.Generators()
	g1Raw := g1Aff.RawBytes()
	g2Raw := g2Aff.RawBytes()

	negG1, err := NegateG1(g1Raw)
	if err != nil {
		t.Fatalf("NegateG1: %v", err)
	}

	ok, err := PairingCheck([][64]byte{g1Raw, negG1}, [][128]byte{g2Raw, g2Raw})
	if err != nil {
		t.Fatalf("PairingCheck: %v", err)
	}
	if !ok {
		t.Fatal("expected e(g1,g2)*e(-g1,g2) = 1")
	}
}

func TestPairingCheckRejectsMismatchedLengths(t *testing.T) {
	_, err := PairingCheck([][64]byte{{}}, [][128]byte{{}, {}})
	if err == nil {
		t.Fatal("expected an error for mismatched pairing input lengths")
	}
}
