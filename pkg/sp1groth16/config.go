// Copyright 2025 Certen Protocol
//
// Resource-limit configuration. Plain os.Getenv + strconv, no external
// config library, following the teacher's pkg/config getEnv* convention.

package sp1groth16

import (
	"os"
	"strconv"
)

const (
	// DefaultMaxVkICPoints is the default cap on a verification key's
	// vk_ic vector length, guarding against allocation-denial on an
	// adversarial num_k field.
	DefaultMaxVkICPoints uint32 = 1 << 16

	// DefaultMaxPublicInputBytes is the default cap on a fixture's
	// sp1_public_inputs length.
	DefaultMaxPublicInputBytes uint32 = 1 << 20
)

// Config holds the resource limits the verifier enforces against
// adversarially-sized input. A zero field selects the corresponding
// package default, so a zero-value Config behaves like NewConfig().
type Config struct {
	MaxVkICPoints       uint32
	MaxPublicInputBytes uint32
}

// NewConfig returns a Config with the package defaults.
func NewConfig() Config {
	return Config{
		MaxVkICPoints:       DefaultMaxVkICPoints,
		MaxPublicInputBytes: DefaultMaxPublicInputBytes,
	}
}

// LoadConfigFromEnv builds a Config from SP1VERIFY_MAX_VK_IC and
// SP1VERIFY_MAX_PUBLIC_INPUT_BYTES, falling back to package defaults for
// unset or unparseable values.
func LoadConfigFromEnv() Config {
	cfg := NewConfig()
	cfg.MaxVkICPoints = getEnvUint32("SP1VERIFY_MAX_VK_IC", cfg.MaxVkICPoints)
	cfg.MaxPublicInputBytes = getEnvUint32("SP1VERIFY_MAX_PUBLIC_INPUT_BYTES", cfg.MaxPublicInputBytes)
	return cfg
}

func getEnvUint32(key string, fallback uint32) uint32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(parsed)
}
