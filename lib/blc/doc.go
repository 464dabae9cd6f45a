// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

// Package blc implements the binary lambda calculus term model and its
// bit-exact binary codec.
//
// The binary format is a self-delimiting bitstream, read MSB-first:
//
//	00        abstraction, followed by the body's encoding
//	01        application, followed by function then argument
//	1^(n+1) 0 de Bruijn variable n (n+1 one-bits, then a zero-bit)
//
// No term's encoding is a prefix of another's, so a term carries its
// own length and trailing padding bits are ignored on decode. The
// canonical example is the identity abstraction λ.0, which encodes to
// the single byte 0x20 (bits 0010 0000).
//
// Three entry points cover the format:
//
//   - [Encode] -- term tree to bytes, always byte-aligned, never fails
//   - [Decode] / [DecodeDepth] -- bytes to term tree, with a bounded
//     work stack so hostile input cannot exhaust the native stack
//   - [ParseText] -- human-readable input, either hex ("0x20") or
//     lambda notation ("λ.0", "\.0", "(λx.x 1)")
//
// Terms are immutable once built. Variable indices are not validated
// against the enclosing abstraction depth: an open term such as Var(7)
// under a single abstraction is legal syntax and round-trips unchanged.
package blc
