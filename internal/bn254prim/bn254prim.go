// Copyright 2025 Certen Protocol
//
// bn254prim wraps github.com/consensys/gnark-crypto's BN254 field and
// group arithmetic behind the small primitive surface the verifier treats
// as an external black box (point decompression, addition, scalar
// multiplication, and the multi-pairing product check). In a Solana BPF
// program this surface would be the alt_bn128_* syscalls; here it is
// backed directly by the curve library the rest of this module's domain
// stack already depends on.
//
// Compressed-point inputs are expected in the canonical "ark" convention
// (little-endian field bytes, sign/infinity flag packed into the top two
// bits of the final byte) produced by the codec layer in package
// sp1groth16. gnark-crypto's own compressed encoding uses a different bit
// layout (big-endian, flag in the leading byte, uncompressed marked by
// 0b00 rather than "positive"), so this package re-maps back to gnark's
// native layout before delegating the actual square-root/Legendre-symbol
// work to gnark-crypto — deriving BN254's field square root by hand here
// would just be re-implementing what the library already does correctly.
package bn254prim

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

const (
	arkMask               byte = 0b11 << 6
	arkCompressedPositive byte = 0b00 << 6
	arkCompressedNegative byte = 0b10 << 6
	arkCompressedInfinity byte = 0b01 << 6

	gnarkCompressedPositive byte = 0b10 << 6
	gnarkCompressedNegative byte = 0b11 << 6
	gnarkCompressedInfinity byte = 0b01 << 6
)

// arkCompressedXToGnark undoes the codec layer's gnark->ark remap: reverse
// the byte order back to big-endian and translate the flag bits packed in
// what is now the leading byte back to gnark-crypto's native scheme.
func arkCompressedXToGnark(x []byte) ([]byte, error) {
	n := len(x)
	if n != 32 && n != 64 {
		return nil, fmt.Errorf("compressed x-coordinate must be 32 or 64 bytes, got %d", n)
	}
	reversed := make([]byte, n)
	for i, b := range x {
		reversed[n-1-i] = b
	}
	var gnarkFlag byte
	switch reversed[0] & arkMask {
	case arkCompressedPositive:
		gnarkFlag = gnarkCompressedPositive
	case arkCompressedNegative:
		gnarkFlag = gnarkCompressedNegative
	case arkCompressedInfinity:
		gnarkFlag = gnarkCompressedInfinity
	default:
		return nil, fmt.Errorf("unrecognized ark compression flag %#08b", reversed[0])
	}
	reversed[0] = (reversed[0] &^ arkMask) | gnarkFlag
	return reversed, nil
}

// DecompressG1 decompresses a 32-byte ark-convention compressed x-
// coordinate into a 64-byte uncompressed (X||Y) big-endian point.
func DecompressG1(ark [32]byte) ([64]byte, error) {
	var out [64]byte
	gnarkBytes, err := arkCompressedXToGnark(ark[:])
	if err != nil {
		return out, err
	}
	var p bn254.G1Affine
	if _, err := p.SetBytes(gnarkBytes); err != nil {
		return out, fmt.Errorf("g1 decompression: %w", err)
	}
	return g1ToUncompressed(&p), nil
}

// DecompressG2 decompresses a 64-byte ark-convention compressed
// x-coordinate into a 128-byte uncompressed (X0||X1||Y0||Y1) big-endian
// point.
func DecompressG2(ark [64]byte) ([128]byte, error) {
	var out [128]byte
	gnarkBytes, err := arkCompressedXToGnark(ark[:])
	if err != nil {
		return out, err
	}
	var p bn254.G2Affine
	if _, err := p.SetBytes(gnarkBytes); err != nil {
		return out, fmt.Errorf("g2 decompression: %w", err)
	}
	return g2ToUncompressed(&p), nil
}

// NegateG1 negates an uncompressed G1 point: (x, y) -> (x, -y mod p).
func NegateG1(raw [64]byte) ([64]byte, error) {
	p, err := g1FromUncompressed(raw[:])
	if err != nil {
		return [64]byte{}, err
	}
	p.Neg(&p)
	return g1ToUncompressed(&p), nil
}

// AddG1 adds two uncompressed G1 points.
func AddG1(a, b [64]byte) ([64]byte, error) {
	pa, err := g1FromUncompressed(a[:])
	if err != nil {
		return [64]byte{}, err
	}
	pb, err := g1FromUncompressed(b[:])
	if err != nil {
		return [64]byte{}, err
	}
	var acc bn254.G1Jac
	acc.FromAffine(&pa)
	acc.AddMixed(&pb)
	var sum bn254.G1Affine
	sum.FromJacobian(&acc)
	return g1ToUncompressed(&sum), nil
}

// ScalarMulG1 multiplies an uncompressed G1 point by a scalar.
func ScalarMulG1(p [64]byte, scalar *big.Int) ([64]byte, error) {
	base, err := g1FromUncompressed(p[:])
	if err != nil {
		return [64]byte{}, err
	}
	var res bn254.G1Affine
	res.ScalarMultiplication(&base, scalar)
	return g1ToUncompressed(&res), nil
}

// PairingCheck reports whether the product of e(g1s[i], g2s[i]) over all i
// equals 1 in the target group. len(g1s) must equal len(g2s).
func PairingCheck(g1s [][64]byte, g2s [][128]byte) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, fmt.Errorf("mismatched pairing input lengths: %d G1 points, %d G2 points", len(g1s), len(g2s))
	}
	ps := make([]bn254.G1Affine, len(g1s))
	qs := make([]bn254.G2Affine, len(g2s))
	for i := range g1s {
		p, err := g1FromUncompressed(g1s[i][:])
		if err != nil {
			return false, err
		}
		ps[i] = p
	}
	for i := range g2s {
		q, err := g2FromUncompressed(g2s[i][:])
		if err != nil {
			return false, err
		}
		qs[i] = q
	}
	ok, err := bn254.PairingCheck(ps, qs)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func g1FromUncompressed(buf []byte) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if len(buf) != 64 {
		return p, fmt.Errorf("uncompressed g1 point must be 64 bytes, got %d", len(buf))
	}
	p.X.SetBytes(buf[:32])
	p.Y.SetBytes(buf[32:64])
	return p, nil
}

func g1ToUncompressed(p *bn254.G1Affine) [64]byte {
	var out [64]byte
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	copy(out[:32], xb[:])
	copy(out[32:], yb[:])
	return out
}

func g2FromUncompressed(buf []byte) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	if len(buf) != 128 {
		return p, fmt.Errorf("uncompressed g2 point must be 128 bytes, got %d", len(buf))
	}
	p.X.A0.SetBytes(buf[0:32])
	p.X.A1.SetBytes(buf[32:64])
	p.Y.A0.SetBytes(buf[64:96])
	p.Y.A1.SetBytes(buf[96:128])
	return p, nil
}

func g2ToUncompressed(p *bn254.G2Affine) [128]byte {
	var out [128]byte
	x0 := p.X.A0.Bytes()
	x1 := p.X.A1.Bytes()
	y0 := p.Y.A0.Bytes()
	y1 := p.Y.A1.Bytes()
	copy(out[0:32], x0[:])
	copy(out[32:64], x1[:])
	copy(out[64:96], y0[:])
	copy(out[96:128], y1[:])
	return out
}
