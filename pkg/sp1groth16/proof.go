// Copyright 2025 Certen Protocol
//
// Proof loader: parses the 256-byte (A||B||C) uncompressed proof buffer
// and pre-negates A, the cached form the pairing check in verify.go
// expects.

package sp1groth16

import "fmt"

// ProofWireLen is the length in bytes of an uncompressed Groth16 proof
// buffer: A (64) || B (128) || C (64).
const ProofWireLen = 64 + 128 + 64

// Proof is the decompressed, in-memory form of a Groth16 proof. NegA holds
// the negation of the prover's A point, folded in at load time so the
// verifier engine can run a single product-equals-one pairing check
// instead of inverting a pairing at verification time.
type Proof struct {
	NegA [64]byte
	B    [128]byte
	C    [64]byte
}

// LoadProofFromBytes parses a 256-byte uncompressed proof buffer and
// negates A.
func LoadProofFromBytes(buf []byte) (*Proof, error) {
	if len(buf) != ProofWireLen {
		return nil, fmt.Errorf("%w: proof buffer must be %d bytes, got %d", ErrInvalidInput, ProofWireLen, len(buf))
	}
	var a [64]byte
	copy(a[:], buf[0:64])
	var b [128]byte
	copy(b[:], buf[64:192])
	var c [64]byte
	copy(c[:], buf[192:256])

	negA, err := NegateG1(a)
	if err != nil {
		return nil, err
	}

	return &Proof{NegA: negA, B: b, C: c}, nil
}
