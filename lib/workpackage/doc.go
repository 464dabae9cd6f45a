// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

// Package workpackage models JAM work packages and their canonical
// byte encoding.
//
// A work package carries one or more work items — each an opaque
// payload (here, an encoded BLC program) plus gas budgets and data
// references — together with the chain-execution context and
// authorization material. The encoding is a fixed field order with
// little-endian integers and compact length prefixes (lib/compact)
// for every variable-length field; it must be reproduced bit-for-bit,
// because the package's content identifier is the BLAKE2b-256 digest
// of exactly these bytes.
//
// Values in this package are treated as immutable once constructed.
// [WorkPackage.ContentHash] recomputes the digest from the current
// encoding on every call rather than caching it.
//
// [BuilderConfig] assembles the single-item bootstrap package the BLC
// client submits: minimal (zeroed) context, no authorization token or
// configuration, caller-supplied service id, code hash, and gas.
package workpackage
