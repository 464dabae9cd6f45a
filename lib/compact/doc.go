// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

// Package compact implements the JAM compact natural-number encoding,
// byte-compatible with SCALE compact integers.
//
// A uint64 is encoded in the shortest of four representations, tagged
// in the low two bits of the first byte:
//
//	[0, 2^6)    1 byte:  value<<2 | 0b00
//	[2^6, 2^14) 2 bytes: value<<2 | 0b01, little-endian
//	[2^14,2^30) 4 bytes: value<<2 | 0b10, little-endian
//	[2^30,2^64) 9 bytes: mode byte 0b11, then the raw value
//	            little-endian, unshifted
//
// The encoding is used for every variable-length field in the
// work-package wire format: payload lengths, sequence counts, and the
// byte counts of authorization material.
package compact
