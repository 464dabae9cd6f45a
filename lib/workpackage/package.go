// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package workpackage

import (
	"encoding/binary"

	"github.com/blc-foundation/blc/lib/compact"
)

// WorkPackage is an ordered collection of work items plus the shared
// execution context and authorization material. Construct it once,
// encode it, hash it; nothing mutates it afterwards.
type WorkPackage struct {
	// AuthToken is the authorization token presented to the
	// authorizer. Empty for bootstrap authorization.
	AuthToken []byte

	// AuthService is the id of the authorizing service.
	AuthService uint32

	// AuthCodeHash is the hash of the authorizer code.
	AuthCodeHash Hash

	// AuthConfig is the authorizer's configuration blob.
	AuthConfig []byte

	// Context is the chain-execution context.
	Context WorkContext

	// Items are the package's work items, in order.
	Items []WorkItem
}

// NewBootstrap returns a package with the given items, a minimal
// (all-zero) context, and bootstrap authorization: no token, service
// zero, zero code hash, no configuration.
func NewBootstrap(items []WorkItem) *WorkPackage {
	return &WorkPackage{
		Context: MinimalContext(),
		Items:   items,
	}
}

// Encode returns the canonical byte encoding. Field order is fixed:
// authorizing service id, authorizer code hash, the encoded context,
// then compact-length-prefixed token and config bytes, then the
// compact-prefixed item sequence. Items are concatenated whole — the
// outer count is the only per-sequence prefix, since each item's
// encoding is self-delimiting.
func (p *WorkPackage) Encode() []byte {
	buf := binary.LittleEndian.AppendUint32(nil, p.AuthService)
	buf = append(buf, p.AuthCodeHash[:]...)
	buf = p.Context.appendTo(buf)

	buf = compact.Append(buf, uint64(len(p.AuthToken)))
	buf = append(buf, p.AuthToken...)

	buf = compact.Append(buf, uint64(len(p.AuthConfig)))
	buf = append(buf, p.AuthConfig...)

	buf = compact.Append(buf, uint64(len(p.Items)))
	for i := range p.Items {
		buf = p.Items[i].appendTo(buf)
	}
	return buf
}

// ContentHash returns the BLAKE2b-256 digest of the package's
// canonical encoding. The digest is the package's content identifier
// on chain; it is recomputed from the encoding on every call, never
// cached.
func (p *WorkPackage) ContentHash() Hash {
	return Sum256(p.Encode())
}
