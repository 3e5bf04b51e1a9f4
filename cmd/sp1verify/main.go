// Copyright 2025 Certen Protocol
//
// sp1verify is a thin operator CLI around package sp1groth16: verify a
// Groth16 proof either from raw wire files or from a ProofFixture
// envelope.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/certen/sp1-groth16-verifier/internal/metrics"
	"github.com/certen/sp1-groth16-verifier/pkg/sp1groth16"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[sp1verify] ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "verify":
		runVerify(os.Args[2:])
	case "verify-fixture":
		runVerifyFixture(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  sp1verify verify --proof p.bin --public-inputs pi.bin --vkey-hash 0x... --vk vk.bin")
	fmt.Fprintln(os.Stderr, "  sp1verify verify-fixture --fixture f.bin --vk vk.bin")
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	proofPath := fs.String("proof", "", "path to a 256-byte uncompressed proof buffer")
	publicInputsPath := fs.String("public-inputs", "", "path to the raw sp1 public-output bytes")
	vkeyHash := fs.String("vkey-hash", "", "0x-prefixed, 64-hex-character SP1 program vkey hash")
	vkPath := fs.String("vk", "", "path to the Groth16 verification key buffer")
	fs.Parse(args)

	if *proofPath == "" || *publicInputsPath == "" || *vkeyHash == "" || *vkPath == "" {
		usage()
		os.Exit(2)
	}

	proofBytes := mustReadFile(*proofPath)
	publicInputs := mustReadFile(*publicInputsPath)
	vkBytes := mustReadFile(*vkPath)

	verifier := sp1groth16.NewVerifier(sp1groth16.LoadConfigFromEnv(), metrics.NewVerifierMetrics())
	if err := verifier.VerifyProof(proofBytes, publicInputs, *vkeyHash, vkBytes); err != nil {
		log.Printf("verification failed: %v", err)
		os.Exit(1)
	}
	log.Println("verification succeeded")
}

func runVerifyFixture(args []string) {
	fs := flag.NewFlagSet("verify-fixture", flag.ExitOnError)
	fixturePath := fs.String("fixture", "", "path to a ProofFixture envelope")
	vkPath := fs.String("vk", "", "path to the Groth16 verification key buffer")
	fs.Parse(args)

	if *fixturePath == "" || *vkPath == "" {
		usage()
		os.Exit(2)
	}

	f, err := os.Open(*fixturePath)
	if err != nil {
		log.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	cfg := sp1groth16.LoadConfigFromEnv()
	fixture, err := sp1groth16.LoadProofFixture(f, cfg.MaxPublicInputBytes)
	if err != nil {
		log.Fatalf("load fixture: %v", err)
	}
	vkBytes := mustReadFile(*vkPath)

	verifier := sp1groth16.NewVerifier(cfg, metrics.NewVerifierMetrics())
	if err := verifier.VerifyProofFixture(fixture, vkBytes); err != nil {
		log.Printf("fixture verification failed: %v", err)
		os.Exit(1)
	}
	log.Println("fixture verification succeeded")
}

func mustReadFile(path string) []byte {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	return b
}
