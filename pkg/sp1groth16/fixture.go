// Copyright 2025 Certen Protocol
//
// Fixture codec: a deterministic binary envelope bundling a proof, its
// public inputs, and a short vk fingerprint, for shipping proofs into an
// execution environment without recomputing derivations there. No Borsh
// library is available in this module's dependency stack, so the codec is
// a hand-rolled fixed-layout binary serializer (see DESIGN.md); the wire
// layout and fingerprint semantics are unchanged from the canonical
// format this module targets.

package sp1groth16

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
)

// ProofFixture bundles everything a caller needs to verify a proof
// without recomputing its derivations: the raw proof bytes, the SP1
// program's raw public outputs, the SP1 program vkey hash, and a 4-byte
// fingerprint of the Groth16 verification key the proof was produced
// against.
type ProofFixture struct {
	Proof             [ProofWireLen]byte
	SP1PublicInputs   []byte
	SP1VkeyHash       [32]byte
	Groth16VkeyHash   [4]byte
}

// groth16VkeyFingerprint returns the first 4 bytes of SHA-256(vkBytes),
// the cheap circuit-version tag a fixture carries.
func groth16VkeyFingerprint(vkBytes []byte) [4]byte {
	digest := sha256.Sum256(vkBytes)
	var out [4]byte
	copy(out[:], digest[:4])
	return out
}

// CheckVkeyFingerprint compares SHA-256(vkBytes)[0:4] against the
// fixture's stored fingerprint, failing before any curve arithmetic runs
// (P4).
func (f *ProofFixture) CheckVkeyFingerprint(vkBytes []byte) error {
	if groth16VkeyFingerprint(vkBytes) != f.Groth16VkeyHash {
		return ErrGroth16VkeyHashMismatch
	}
	return nil
}

// NewProofFixture builds a fixture from its constituent parts, computing
// the vk fingerprint from vkBytes.
func NewProofFixture(proof [ProofWireLen]byte, sp1PublicInputs []byte, sp1VkeyHash [32]byte, vkBytes []byte) *ProofFixture {
	return &ProofFixture{
		Proof:           proof,
		SP1PublicInputs: sp1PublicInputs,
		SP1VkeyHash:     sp1VkeyHash,
		Groth16VkeyHash: groth16VkeyFingerprint(vkBytes),
	}
}

// Save writes the fixture to w in its canonical layout: proof (256 bytes)
// || sp1_public_inputs (little-endian u32 length, then bytes) ||
// sp1_vkey_hash (32 bytes) || groth16_vkey_hash (4 bytes).
func (f *ProofFixture) Save(w io.Writer) error {
	if _, err := w.Write(f.Proof[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(f.SP1PublicInputs)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := w.Write(f.SP1PublicInputs); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := w.Write(f.SP1VkeyHash[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := w.Write(f.Groth16VkeyHash[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// LoadProofFixture reads a fixture from r in the layout Save writes.
// maxPublicInputBytes bounds the variable-length sp1_public_inputs field
// against allocation-denial; pass 0 to use DefaultMaxPublicInputBytes.
func LoadProofFixture(r io.Reader, maxPublicInputBytes uint32) (*ProofFixture, error) {
	if maxPublicInputBytes == 0 {
		maxPublicInputBytes = DefaultMaxPublicInputBytes
	}

	var f ProofFixture
	if _, err := io.ReadFull(r, f.Proof[:]); err != nil {
		return nil, fmt.Errorf("%w: reading proof: %v", ErrFixtureDecode, err)
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: reading sp1_public_inputs length: %v", ErrFixtureDecode, err)
	}
	piLen := binary.LittleEndian.Uint32(lenBuf[:])
	if piLen > maxPublicInputBytes {
		return nil, fmt.Errorf("%w: sp1_public_inputs length %d exceeds limit %d", ErrResourceLimit, piLen, maxPublicInputBytes)
	}
	f.SP1PublicInputs = make([]byte, piLen)
	if _, err := io.ReadFull(r, f.SP1PublicInputs); err != nil {
		return nil, fmt.Errorf("%w: reading sp1_public_inputs: %v", ErrFixtureDecode, err)
	}

	if _, err := io.ReadFull(r, f.SP1VkeyHash[:]); err != nil {
		return nil, fmt.Errorf("%w: reading sp1_vkey_hash: %v", ErrFixtureDecode, err)
	}
	if _, err := io.ReadFull(r, f.Groth16VkeyHash[:]); err != nil {
		return nil, fmt.Errorf("%w: reading groth16_vkey_hash: %v", ErrFixtureDecode, err)
	}

	return &f, nil
}
