// Copyright 2025 Certen Protocol
//
// Error taxonomy for the SP1 Groth16/BN254 verifier.
//
// Every failure surfaces as one of these sentinel values, wrapped with
// fmt.Errorf("%w: ...") for context. Callers distinguish kinds with
// errors.Is; "bad inputs" and "valid inputs that don't satisfy the
// equation" are both rejections and never change accept/reject semantics.

package sp1groth16

import "errors"

var (
	// ErrG1Compression is returned when decompressing or re-serializing a
	// G1 element fails.
	ErrG1Compression = errors.New("sp1groth16: g1 compression error")

	// ErrG2Compression is returned when decompressing or re-serializing a
	// G2 element fails.
	ErrG2Compression = errors.New("sp1groth16: g2 compression error")

	// ErrArithmetic is returned when a BN254 addition/scalar-multiplication
	// step fails.
	ErrArithmetic = errors.New("sp1groth16: arithmetic error")

	// ErrPairing is returned when the pairing primitive invocation fails
	// (malformed input length, degenerate point, etc).
	ErrPairing = errors.New("sp1groth16: pairing error")

	// ErrVerification is returned when the pairing check ran to completion
	// but rejected the proof.
	ErrVerification = errors.New("sp1groth16: verification error")

	// ErrInvalidInput is returned for malformed buffer lengths and bad flag
	// bits. Field-element ranges are not checked under this error.
	ErrInvalidInput = errors.New("sp1groth16: invalid input")

	// ErrInvalidPublicInput is returned when the verification key's IC
	// vector length is inconsistent with the number of public inputs.
	ErrInvalidPublicInput = errors.New("sp1groth16: invalid public input")

	// ErrInvalidInstructionData is returned when a caller-supplied envelope
	// fails to deserialize at the boundary.
	ErrInvalidInstructionData = errors.New("sp1groth16: invalid instruction data")

	// ErrGroth16VkeyHashMismatch is returned when a fixture's short vk
	// fingerprint does not match the caller-supplied vk buffer.
	ErrGroth16VkeyHashMismatch = errors.New("sp1groth16: groth16 vkey hash mismatch")

	// ErrInvalidProgramVkeyHash is returned when decoding the SP1 program
	// vkey hash hex string fails.
	ErrInvalidProgramVkeyHash = errors.New("sp1groth16: invalid program vkey hash")

	// ErrFixtureEncode is returned when serializing a ProofFixture fails.
	ErrFixtureEncode = errors.New("sp1groth16: fixture encode error")

	// ErrFixtureDecode is returned when deserializing a ProofFixture fails.
	ErrFixtureDecode = errors.New("sp1groth16: fixture decode error")

	// ErrIO is returned when loading or saving a fixture from/to a byte
	// sink fails.
	ErrIO = errors.New("sp1groth16: io error")

	// ErrResourceLimit is returned when an adversarial-sized input (vk IC
	// vector or sp1 public input stream) exceeds the configured bound.
	ErrResourceLimit = errors.New("sp1groth16: resource limit exceeded")
)
