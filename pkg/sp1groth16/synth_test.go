// Copyright 2025 Certen Protocol
//
// Test fixture synthesis: no real SP1-published Groth16 fixtures are
// available inside this module, so the test suite proves a toy relation
// with gnark itself and converts the resulting gnark-native proof/vk into
// this package's wire format. This exercises the full gnark-wire ->
// canonical adaptation layer (C1/C2) against genuine BN254 points instead
// of opaque binary blobs.

package sp1groth16

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	groth16bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// toyCircuit is a minimal Groth16 relation with exactly two public inputs,
// matching SP1's Groth16 proofs (program vkey hash, committed-values
// digest). It does not constrain the public inputs against anything
// beyond themselves, so any pair of scalars derived by the public-input
// builder can be proven against, the way an SP1 proof's public inputs are
// opaque hash outputs rather than small integers.
type toyCircuit struct {
	PublicA frontend.Variable `gnark:",public"`
	PublicB frontend.Variable `gnark:",public"`
	Secret  frontend.Variable
}

func (c *toyCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.PublicA, c.PublicA)
	api.AssertIsEqual(c.PublicB, c.PublicB)
	api.AssertIsDifferent(c.Secret, 0)
	return nil
}

// toyProofMaterial holds a genuine gnark-wire proof and vk, plus the
// public scalars it was proven against, ready to feed through this
// package's loaders.
type toyProofMaterial struct {
	ProofBytes []byte // 256-byte (A||B||C) uncompressed wire proof
	VkBytes    []byte // wire-format verification key
	PublicA    *big.Int
	PublicB    *big.Int
}

// buildToyProofMaterial compiles toyCircuit, runs a fresh Groth16 setup,
// and proves it against the given public scalars, returning everything in
// this package's wire formats.
func buildToyProofMaterial(t *testing.T, publicA, publicB *big.Int) *toyProofMaterial {
	t.Helper()

	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &toyCircuit{})
	if err != nil {
		t.Fatalf("compile toy circuit: %v", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		t.Fatalf("groth16 setup: %v", err)
	}

	assignment := &toyCircuit{
		PublicA: publicA,
		PublicB: publicB,
		Secret:  big.NewInt(7),
	}
	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		t.Fatalf("build witness: %v", err)
	}

	proof, err := groth16.Prove(cs, pk, witness)
	if err != nil {
		t.Fatalf("groth16 prove: %v", err)
	}

	proofBN254, ok := proof.(*groth16bn254.Proof)
	if !ok {
		t.Fatalf("proof is not BN254 type")
	}
	vkBN254, ok := vk.(*groth16bn254.VerifyingKey)
	if !ok {
		t.Fatalf("vk is not BN254 type")
	}

	return &toyProofMaterial{
		ProofBytes: proofWireBytes(proofBN254),
		VkBytes:    vkWireBytes(vkBN254),
		PublicA:    publicA,
		PublicB:    publicB,
	}
}

// proofWireBytes serializes a gnark-native BN254 proof into this
// package's 256-byte (A||B||C) uncompressed wire layout. B is written as
// X0||X1||Y0||Y1; gnark's own RawBytes would put the A1 limbs first.
func proofWireBytes(proof *groth16bn254.Proof) []byte {
	a := proof.Ar.RawBytes()
	bx0, bx1 := proof.Bs.X.A0.Bytes(), proof.Bs.X.A1.Bytes()
	by0, by1 := proof.Bs.Y.A0.Bytes(), proof.Bs.Y.A1.Bytes()
	c := proof.Krs.RawBytes()
	buf := make([]byte, 0, ProofWireLen)
	buf = append(buf, a[:]...)
	buf = append(buf, bx0[:]...)
	buf = append(buf, bx1[:]...)
	buf = append(buf, by0[:]...)
	buf = append(buf, by1[:]...)
	buf = append(buf, c[:]...)
	return buf
}

// vkWireBytes serializes a gnark-native BN254 verifying key into this
// package's wire layout (§4.3): compressed alpha/beta(G1, unused)/beta(G2)
// /gamma(G2)/delta(G1, unused)/delta(G2), num_k, num_k compressed IC
// points, and a zero commitment-group count (this module's toy circuit
// uses no Pedersen commitments on public inputs).
func vkWireBytes(vk *groth16bn254.VerifyingKey) []byte {
	buf := make([]byte, 0, vkICOffset+32*len(vk.G1.K)+4)

	alpha := vk.G1.Alpha.Bytes()
	buf = append(buf, alpha[:]...)

	betaG1 := vk.G1.Beta.Bytes()
	buf = append(buf, betaG1[:]...)

	betaG2 := vk.G2.Beta.Bytes()
	buf = append(buf, betaG2[:]...)

	gammaG2 := vk.G2.Gamma.Bytes()
	buf = append(buf, gammaG2[:]...)

	deltaG1 := vk.G1.Delta.Bytes()
	buf = append(buf, deltaG1[:]...)

	deltaG2 := vk.G2.Delta.Bytes()
	buf = append(buf, deltaG2[:]...)

	var numK [4]byte
	binary.BigEndian.PutUint32(numK[:], uint32(len(vk.G1.K)))
	buf = append(buf, numK[:]...)

	for _, k := range vk.G1.K {
		kc := k.Bytes()
		buf = append(buf, kc[:]...)
	}

	var numGroups [4]byte // no commitment groups in the toy relation
	buf = append(buf, numGroups[:]...)

	return buf
}
