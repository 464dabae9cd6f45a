// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package workpackage

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Hash is a 32-byte BLAKE2b-256 digest. All content identifiers in
// the work-package format (code hashes, anchors, import and extrinsic
// references) are this size.
type Hash [32]byte

// Sum256 computes the BLAKE2b-256 digest of data. Pure and
// deterministic; this is the content-hash primitive the package
// identifier is built on.
func Sum256(data []byte) Hash {
	return blake2b.Sum256(data)
}

// FormatHash returns the hex-encoded string representation of a hash,
// the canonical form used in RPC parameters, logs, and CLI output.
func FormatHash(h Hash) string {
	return hex.EncodeToString(h[:])
}

// ParseHash parses a 64-character hex string (optionally prefixed
// "0x") into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var h Hash
	if len(hexString) >= 2 && hexString[0] == '0' && (hexString[1] == 'x' || hexString[1] == 'X') {
		hexString = hexString[2:]
	}
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return h, fmt.Errorf("parsing hash: %w", err)
	}
	if len(decoded) != 32 {
		return h, fmt.Errorf("hash is %d bytes, want 32", len(decoded))
	}
	copy(h[:], decoded)
	return h, nil
}
