// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package workpackage

import (
	"encoding/binary"

	"github.com/blc-foundation/blc/lib/compact"
)

// ImportRef is a (segment-root hash, length) pair referencing data a
// work item imports or an extrinsic it carries.
type ImportRef struct {
	Hash   Hash
	Length uint32
}

// WorkItem is a single unit of execution within a work package. The
// payload is opaque at this layer; for the BLC client it is the
// binary encoding of a lambda term, but nothing here inspects it.
type WorkItem struct {
	// Service is the id of the service that refines this item.
	Service uint32

	// CodeHash is the hash of the service code expected to run.
	CodeHash Hash

	// Payload is the refine-phase input, owned by this item.
	Payload []byte

	// RefineGas and AccumulateGas are the gas budgets for the two
	// execution phases.
	RefineGas     uint64
	AccumulateGas uint64

	// ExportCount is the number of data segments the item exports.
	ExportCount uint16

	// Imports and Extrinsics are ordered reference sequences, each a
	// hash plus a byte length.
	Imports    []ImportRef
	Extrinsics []ImportRef
}

// Encode returns the canonical byte encoding: fixed fields first
// (service id, code hash, both gas budgets, export count), then the
// compact-length-prefixed payload, then the compact-prefixed import
// and extrinsic sequences.
func (w *WorkItem) Encode() []byte {
	return w.appendTo(nil)
}

func (w *WorkItem) appendTo(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, w.Service)
	buf = append(buf, w.CodeHash[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, w.RefineGas)
	buf = binary.LittleEndian.AppendUint64(buf, w.AccumulateGas)
	buf = binary.LittleEndian.AppendUint16(buf, w.ExportCount)

	buf = compact.Append(buf, uint64(len(w.Payload)))
	buf = append(buf, w.Payload...)

	buf = appendRefs(buf, w.Imports)
	buf = appendRefs(buf, w.Extrinsics)
	return buf
}

func appendRefs(buf []byte, refs []ImportRef) []byte {
	buf = compact.Append(buf, uint64(len(refs)))
	for _, ref := range refs {
		buf = append(buf, ref.Hash[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, ref.Length)
	}
	return buf
}
