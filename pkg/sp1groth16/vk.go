// Copyright 2025 Certen Protocol
//
// VK loader: parses the on-wire Groth16 verification key buffer produced by
// the SP1/gnark toolchain into the in-memory VerificationKey this package's
// verifier engine consumes.

package sp1groth16

import (
	"encoding/binary"
	"fmt"
)

// VerificationKey is the decompressed, in-memory form of a Groth16
// verification key. NrPubInputs is retained as metadata only, per the
// wire format's num_commitment_groups field; it is never used to size
// anything downstream.
type VerificationKey struct {
	NrPubInputs uint32
	AlphaG1     [64]byte
	BetaG2      [128]byte
	GammaG2     [128]byte
	DeltaG2     [128]byte
	IC          [][64]byte
}

const (
	vkAlphaG1Offset = 0
	vkBetaG1Offset  = 32 // present on the wire, unused by the verifier
	vkBetaG2Offset  = 64
	vkGammaG2Offset = 128
	vkDeltaG1Offset = 192 // present on the wire, unused by the verifier
	vkDeltaG2Offset = 224
	vkNumKOffset    = 288
	vkICOffset      = 292
)

// LoadVerificationKeyFromBytes parses buf per the wire layout: compressed
// alpha(G1), beta(G1, skipped), beta(G2), gamma(G2), delta(G1, skipped),
// delta(G2), num_k, num_k compressed G1 IC points, num_commitment_groups,
// and num_commitment_groups variable-length index groups (skipped). maxIC
// bounds num_k against resource exhaustion on adversarial buffers; pass 0
// to use DefaultMaxVkICPoints.
func LoadVerificationKeyFromBytes(buf []byte, maxIC uint32) (*VerificationKey, error) {
	if maxIC == 0 {
		maxIC = DefaultMaxVkICPoints
	}
	if len(buf) < vkICOffset {
		return nil, fmt.Errorf("%w: vk buffer too short for fixed header (%d bytes)", ErrInvalidInput, len(buf))
	}

	var alphaCompressed [32]byte
	copy(alphaCompressed[:], buf[vkAlphaG1Offset:vkAlphaG1Offset+32])
	alphaG1, err := DecompressG1(alphaCompressed)
	if err != nil {
		return nil, err
	}

	// vk_beta_g1 at vkBetaG1Offset is present on the wire and unused.

	var betaG2Compressed [64]byte
	copy(betaG2Compressed[:], buf[vkBetaG2Offset:vkBetaG2Offset+64])
	betaG2, err := DecompressG2(betaG2Compressed)
	if err != nil {
		return nil, err
	}

	var gammaG2Compressed [64]byte
	copy(gammaG2Compressed[:], buf[vkGammaG2Offset:vkGammaG2Offset+64])
	gammaG2, err := DecompressG2(gammaG2Compressed)
	if err != nil {
		return nil, err
	}

	// vk_delta_g1 at vkDeltaG1Offset is present on the wire and unused.

	var deltaG2Compressed [64]byte
	copy(deltaG2Compressed[:], buf[vkDeltaG2Offset:vkDeltaG2Offset+64])
	deltaG2, err := DecompressG2(deltaG2Compressed)
	if err != nil {
		return nil, err
	}

	numK := binary.BigEndian.Uint32(buf[vkNumKOffset : vkNumKOffset+4])
	if numK > maxIC {
		return nil, fmt.Errorf("%w: num_k %d exceeds limit %d", ErrResourceLimit, numK, maxIC)
	}

	icEnd := vkICOffset + 32*int(numK)
	if len(buf) < icEnd {
		return nil, fmt.Errorf("%w: vk buffer too short for %d ic points", ErrInvalidInput, numK)
	}

	ic := make([][64]byte, numK)
	for i := 0; i < int(numK); i++ {
		var compressed [32]byte
		start := vkICOffset + 32*i
		copy(compressed[:], buf[start:start+32])
		point, err := DecompressG1(compressed)
		if err != nil {
			return nil, err
		}
		ic[i] = point
	}

	if len(buf) < icEnd+4 {
		return nil, fmt.Errorf("%w: vk buffer too short for num_commitment_groups", ErrInvalidInput)
	}
	numGroups := binary.BigEndian.Uint32(buf[icEnd : icEnd+4])

	cursor := icEnd + 4
	for g := 0; g < int(numGroups); g++ {
		if len(buf) < cursor+4 {
			return nil, fmt.Errorf("%w: vk buffer too short for commitment group %d header", ErrInvalidInput, g)
		}
		m := binary.BigEndian.Uint32(buf[cursor : cursor+4])
		cursor += 4
		groupEnd := cursor + 4*int(m)
		if len(buf) < groupEnd {
			return nil, fmt.Errorf("%w: vk buffer too short for commitment group %d indices", ErrInvalidInput, g)
		}
		cursor = groupEnd
	}

	return &VerificationKey{
		NrPubInputs: numGroups,
		AlphaG1:     alphaG1,
		BetaG2:      betaG2,
		GammaG2:     gammaG2,
		DeltaG2:     deltaG2,
		IC:          ic,
	}, nil
}
