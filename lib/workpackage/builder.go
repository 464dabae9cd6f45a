// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package workpackage

import "fmt"

// DefaultGas is the gas budget applied to both execution phases when
// the caller does not choose one. Generous enough for any program the
// client submits to a testnet.
const DefaultGas uint64 = 1_000_000_000

// CodeHashLengthError reports a code-reference hash of the wrong
// size. Only 32-byte hashes are valid on the wire.
type CodeHashLengthError struct {
	Len int
}

func (e *CodeHashLengthError) Error() string {
	return fmt.Sprintf("code hash is %d bytes, want 32", e.Len)
}

// BuilderConfig holds everything needed to assemble a single-item
// bootstrap package. It is a plain immutable value: fill in the
// fields (or take them from [NewBuilderConfig]) and call [Build];
// there is no staged mutation, so a config can be shared freely
// between goroutines.
type BuilderConfig struct {
	// Service is the id of the target service.
	Service uint32

	// CodeHash is the 32-byte reference to the service code.
	CodeHash Hash

	// RefineGas and AccumulateGas are the per-phase budgets. Zero
	// means [DefaultGas].
	RefineGas     uint64
	AccumulateGas uint64
}

// NewBuilderConfig validates codeHash and returns a config with
// default gas budgets. The only validation performed anywhere in the
// builder is the hash length; gas values and payload sizes are
// accepted as given.
func NewBuilderConfig(service uint32, codeHash []byte) (BuilderConfig, error) {
	if len(codeHash) != 32 {
		return BuilderConfig{}, &CodeHashLengthError{Len: len(codeHash)}
	}
	cfg := BuilderConfig{
		Service:       service,
		RefineGas:     DefaultGas,
		AccumulateGas: DefaultGas,
	}
	copy(cfg.CodeHash[:], codeHash)
	return cfg, nil
}

// Build assembles a work package containing a single item whose
// payload is the given bytes (for the BLC client, an encoded term).
// The package uses a minimal context and bootstrap authorization.
// The payload is copied, so the caller may reuse its buffer.
func (cfg BuilderConfig) Build(payload []byte) *WorkPackage {
	refineGas := cfg.RefineGas
	if refineGas == 0 {
		refineGas = DefaultGas
	}
	accumulateGas := cfg.AccumulateGas
	if accumulateGas == 0 {
		accumulateGas = DefaultGas
	}

	item := WorkItem{
		Service:       cfg.Service,
		CodeHash:      cfg.CodeHash,
		Payload:       append([]byte(nil), payload...),
		RefineGas:     refineGas,
		AccumulateGas: accumulateGas,
	}
	return NewBootstrap([]WorkItem{item})
}
