// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package workpackage

import (
	"encoding/binary"

	"github.com/blc-foundation/blc/lib/compact"
)

// WorkContext is the chain-execution context a work package is
// evaluated against: the block anchors the refine phase may read
// from and the prerequisite packages that must accumulate first.
type WorkContext struct {
	// Anchor is the header hash of the anchor block.
	Anchor Hash

	// StateRoot is the posterior state root of the anchor block.
	StateRoot Hash

	// AccumulationRoot is the posterior accumulation-output root of
	// the anchor block.
	AccumulationRoot Hash

	// LookupAnchor is the header hash of the lookup-anchor block.
	LookupAnchor Hash

	// LookupHash is the second hash consulted during preimage lookup.
	LookupHash Hash

	// LookupSlot is the timeslot of the lookup-anchor block.
	LookupSlot uint32

	// Prerequisites are hashes of work packages that must be
	// accumulated before this one, in order.
	Prerequisites []Hash
}

// MinimalContext returns the all-zero context used for bootstrap
// submissions on a fresh testnet: zero anchors, slot zero, no
// prerequisites.
func MinimalContext() WorkContext {
	return WorkContext{}
}

// Encode returns the canonical byte encoding: the five hash fields in
// declaration order, the lookup slot little-endian, then the
// compact-prefixed prerequisite sequence.
func (c *WorkContext) Encode() []byte {
	return c.appendTo(nil)
}

func (c *WorkContext) appendTo(buf []byte) []byte {
	buf = append(buf, c.Anchor[:]...)
	buf = append(buf, c.StateRoot[:]...)
	buf = append(buf, c.AccumulationRoot[:]...)
	buf = append(buf, c.LookupAnchor[:]...)
	buf = append(buf, c.LookupHash[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, c.LookupSlot)
	buf = compact.Append(buf, uint64(len(c.Prerequisites)))
	for _, prereq := range c.Prerequisites {
		buf = append(buf, prereq[:]...)
	}
	return buf
}
