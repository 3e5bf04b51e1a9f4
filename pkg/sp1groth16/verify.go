// Copyright 2025 Certen Protocol
//
// Groth16 verifier engine (C6) and the high-level entry points (C8):
// prepare the public-input linear combination, run the 4-pair pairing
// check, and wire the whole pipeline together for callers that only have
// raw wire bytes.

package sp1groth16

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/certen/sp1-groth16-verifier/internal/bn254prim"
	"github.com/certen/sp1-groth16-verifier/internal/metrics"
	"github.com/google/uuid"
)

// prepareL computes the linear combination L = vk_ic[0] + sum(input[i] *
// vk_ic[i+1]) that binds the proof to the public inputs. Iterates vk_ic in
// index order; the order is not observable (the operation is commutative)
// but is kept deterministic for reproducible tests.
func prepareL(vk *VerificationKey, inputs PublicInputs) ([64]byte, error) {
	if len(vk.IC) != len(inputs)+1 {
		return [64]byte{}, fmt.Errorf("%w: vk_ic has %d points, want %d", ErrInvalidPublicInput, len(vk.IC), len(inputs)+1)
	}

	acc := vk.IC[0]
	for i, input := range inputs {
		scalar := new(big.Int).SetBytes(input[:])
		term, err := bn254prim.ScalarMulG1(vk.IC[i+1], scalar)
		if err != nil {
			return [64]byte{}, fmt.Errorf("%w: %v", ErrArithmetic, err)
		}
		acc, err = bn254prim.AddG1(acc, term)
		if err != nil {
			return [64]byte{}, fmt.Errorf("%w: %v", ErrArithmetic, err)
		}
	}
	return acc, nil
}

// verifyGroth16 runs the 4-pair pairing check over (-A, B), (L, gamma),
// (C, delta), (alpha, beta), in that order, and reports whether their
// product is 1 in Gt.
func verifyGroth16(proof *Proof, inputs PublicInputs, vk *VerificationKey) error {
	l, err := prepareL(vk, inputs)
	if err != nil {
		return err
	}

	g1s := [][64]byte{proof.NegA, l, proof.C, vk.AlphaG1}
	g2s := [][128]byte{proof.B, vk.GammaG2, vk.DeltaG2, vk.BetaG2}

	ok, err := bn254prim.PairingCheck(g1s, g2s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPairing, err)
	}
	if !ok {
		return ErrVerification
	}
	return nil
}

// verifyProofWithLimit is the shared implementation behind VerifyProof and
// (*Verifier).VerifyProof; maxIC of 0 selects DefaultMaxVkICPoints and
// maxPublicInputBytes of 0 selects DefaultMaxPublicInputBytes.
func verifyProofWithLimit(proofBytes []byte, sp1PublicInputs []byte, sp1VkeyHashHex string, vkBytes []byte, maxIC uint32, maxPublicInputBytes uint32) error {
	if maxPublicInputBytes == 0 {
		maxPublicInputBytes = DefaultMaxPublicInputBytes
	}
	if uint32(len(sp1PublicInputs)) > maxPublicInputBytes {
		return fmt.Errorf("%w: sp1_public_inputs length %d exceeds limit %d", ErrResourceLimit, len(sp1PublicInputs), maxPublicInputBytes)
	}

	sp1VkeyHash, err := DecodeSP1VkeyHash(sp1VkeyHashHex)
	if err != nil {
		return err
	}
	values := Groth16PublicValues(sp1VkeyHash, sp1PublicInputs)
	inputs, err := LoadPublicInputsFromValues(values)
	if err != nil {
		return err
	}
	proof, err := LoadProofFromBytes(proofBytes)
	if err != nil {
		return err
	}
	vk, err := LoadVerificationKeyFromBytes(vkBytes, maxIC)
	if err != nil {
		return err
	}
	return verifyGroth16(proof, inputs, vk)
}

// VerifyProof runs the full pipeline against raw wire bytes: decode the
// SP1 vkey hash, build the public-values pair, parse proof and vk, and run
// the pairing check.
func VerifyProof(proofBytes []byte, sp1PublicInputs []byte, sp1VkeyHashHex string, vkBytes []byte) error {
	return verifyProofWithLimit(proofBytes, sp1PublicInputs, sp1VkeyHashHex, vkBytes, 0, 0)
}

// VerifyProofFixture checks the fixture's vk fingerprint against vkBytes
// before running the verification pipeline against the fixture's embedded
// fields (P4: the fingerprint check happens before any curve arithmetic).
func VerifyProofFixture(fixture *ProofFixture, vkBytes []byte) error {
	if err := fixture.CheckVkeyFingerprint(vkBytes); err != nil {
		return err
	}
	vkeyHashHex := "0x" + hex.EncodeToString(fixture.SP1VkeyHash[:])
	return VerifyProof(fixture.Proof[:], fixture.SP1PublicInputs, vkeyHashHex, vkBytes)
}

// Verifier wraps the pure verification pipeline with config, metrics, and
// structured logging, matching the teacher's New<Thing>(cfg) constructor
// convention used throughout pkg/verification and pkg/anchor.
type Verifier struct {
	cfg     Config
	metrics *metrics.VerifierMetrics
	log     *log.Logger
}

// NewVerifier constructs a reusable Verifier instance. m may be nil to
// disable instrumentation.
func NewVerifier(cfg Config, m *metrics.VerifierMetrics) *Verifier {
	return &Verifier{
		cfg:     cfg,
		metrics: m,
		log:     log.New(os.Stderr, "[sp1groth16] ", log.LstdFlags),
	}
}

// VerifyProof runs the verification pipeline with the verifier's
// configured resource limits, recording metrics and a structured log line
// for the outcome.
func (v *Verifier) VerifyProof(proofBytes []byte, sp1PublicInputs []byte, sp1VkeyHashHex string, vkBytes []byte) error {
	attemptID := uuid.NewString()
	done := v.metrics.ObserveAttempt()

	err := verifyProofWithLimit(proofBytes, sp1PublicInputs, sp1VkeyHashHex, vkBytes, v.cfg.MaxVkICPoints, v.cfg.MaxPublicInputBytes)
	done(reasonTag(err))
	if err != nil {
		v.log.Printf("attempt=%s verification rejected: %v", attemptID, err)
		return err
	}
	v.log.Printf("attempt=%s verification accepted", attemptID)
	return nil
}

// VerifyProofFixture runs the fixture pipeline with the verifier's
// configured resource limits, recording metrics and a structured log line
// for the outcome.
func (v *Verifier) VerifyProofFixture(fixture *ProofFixture, vkBytes []byte) error {
	attemptID := uuid.NewString()
	done := v.metrics.ObserveAttempt()

	if err := fixture.CheckVkeyFingerprint(vkBytes); err != nil {
		done(reasonTag(err))
		v.log.Printf("attempt=%s fixture verification rejected: %v", attemptID, err)
		return err
	}

	vkeyHashHex := "0x" + hex.EncodeToString(fixture.SP1VkeyHash[:])
	err := verifyProofWithLimit(fixture.Proof[:], fixture.SP1PublicInputs, vkeyHashHex, vkBytes, v.cfg.MaxVkICPoints, v.cfg.MaxPublicInputBytes)
	done(reasonTag(err))
	if err != nil {
		v.log.Printf("attempt=%s fixture verification rejected: %v", attemptID, err)
		return err
	}
	v.log.Printf("attempt=%s fixture verification accepted", attemptID)
	return nil
}

// reasonTag maps err to a Prometheus label bounded by the sentinel taxonomy
// in errors.go, never by caller-controlled message content: every wrapped
// error in this package wraps exactly one sentinel, so unwrapping once
// recovers it. Bare sentinel returns have no dynamic content to begin with.
func reasonTag(err error) string {
	if err == nil {
		return ""
	}
	if sentinel := errors.Unwrap(err); sentinel != nil {
		return sentinel.Error()
	}
	return err.Error()
}
