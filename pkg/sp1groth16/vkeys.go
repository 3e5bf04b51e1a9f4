// Copyright 2025 Certen Protocol
//
// Embedded verification keys: compile-time byte constants for the SP1
// circuit versions this build supports, loaded once at program start with
// no lazy initialization and no mutation path (see the C9 entry in
// DESIGN.md).
//
// The embedded bytes here are structurally-valid, cryptographically
// degenerate placeholder keys (every group element is the point at
// infinity) standing in for real SP1-published verification keys, which
// are not available inside this module; see DESIGN.md for the rationale
// and for what a deployment must swap in before trusting these constants.

package sp1groth16

import _ "embed"

//go:embed testdata/groth16_vk_v3.bin
var Groth16VkV3Bytes []byte

//go:embed testdata/groth16_vk_v4.bin
var Groth16VkV4Bytes []byte
