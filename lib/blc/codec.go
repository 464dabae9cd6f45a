// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package blc

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is reported when the bitstream ends in the middle
// of a term. Compare with errors.Is; the wrapping error carries the
// bit offset where input ran out.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrDepthExceeded is reported when decoding would nest deeper than
// the configured limit. Deep nesting is cheap to produce (two bits per
// level), so the limit converts hostile input into a clean error
// instead of unbounded memory growth.
var ErrDepthExceeded = errors.New("term nesting too deep")

// DefaultMaxDepth is the nesting limit used by [Decode]. The deepest
// term it admits needs over a kilobyte of input to express, far beyond
// anything a legitimate program encodes.
const DefaultMaxDepth = 4096

// Decode parses one term from the start of data using
// [DefaultMaxDepth]. Bits after the term's self-delimited end are
// ignored; they are the byte-alignment padding Encode produces.
func Decode(data []byte) (Term, error) {
	return DecodeDepth(data, DefaultMaxDepth)
}

// frameKind tags a pending composite node on the decode stack.
type frameKind uint8

const (
	frameAbs frameKind = iota
	frameApp
)

// frame is a composite term whose children are still being decoded.
// An App frame first collects its function child into fn, then waits
// for the argument.
type frame struct {
	kind frameKind
	fn   Term
}

// DecodeDepth parses one term from the start of data, failing with
// [ErrDepthExceeded] once more than maxDepth composite nodes are
// open at once. The decoder is iterative — an explicit frame stack
// holds partially-built abstractions and applications — so input
// depth never translates into native stack depth.
func DecodeDepth(data []byte, maxDepth int) (Term, error) {
	r := newBitReader(data)
	var stack []frame

	for {
		bit, ok := r.readBit()
		if !ok {
			return nil, fmt.Errorf("decoding term at bit %d: %w", r.bitsRead(), ErrUnexpectedEOF)
		}

		var done Term
		if !bit {
			second, ok := r.readBit()
			if !ok {
				return nil, fmt.Errorf("decoding term at bit %d: %w", r.bitsRead(), ErrUnexpectedEOF)
			}
			if len(stack) >= maxDepth {
				return nil, fmt.Errorf("decoding term at bit %d: %w (limit %d)", r.bitsRead(), ErrDepthExceeded, maxDepth)
			}
			if !second {
				stack = append(stack, frame{kind: frameAbs})
			} else {
				stack = append(stack, frame{kind: frameApp})
			}
			continue
		}

		// Variable: count the remaining one-bits. The leading one-bit
		// is already consumed, so index starts at zero.
		var index uint64
		for {
			bit, ok := r.readBit()
			if !ok {
				return nil, fmt.Errorf("decoding variable at bit %d: %w", r.bitsRead(), ErrUnexpectedEOF)
			}
			if !bit {
				break
			}
			index++
		}
		done = Var{Index: index}

		// Unwind: hand the completed term to enclosing frames until
		// one still needs another child or the stack empties.
		for {
			if len(stack) == 0 {
				return done, nil
			}
			top := &stack[len(stack)-1]
			if top.kind == frameApp && top.fn == nil {
				top.fn = done
				break // argument comes next
			}
			if top.kind == frameAbs {
				done = Abs{Body: done}
			} else {
				done = App{Fn: top.fn, Arg: done}
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// Encode serializes a term to its binary form. The result is byte
// aligned: exactly ceil(bits/8) bytes, with zero padding in the final
// byte. Encoding cannot fail; it panics only on a nil (malformed)
// term, which indicates a construction bug in the caller.
func Encode(t Term) []byte {
	w := newBitWriter()

	// Pre-order traversal with an explicit stack, mirroring the
	// decoder: children are pushed in reverse so the function of an
	// application is emitted before its argument.
	stack := []Term{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := cur.(type) {
		case Abs:
			w.writeBit(false)
			w.writeBit(false)
			stack = append(stack, v.Body)
		case App:
			w.writeBit(false)
			w.writeBit(true)
			stack = append(stack, v.Arg, v.Fn)
		case Var:
			for i := uint64(0); i <= v.Index; i++ {
				w.writeBit(true)
			}
			w.writeBit(false)
		default:
			panic("blc: Encode called on nil term")
		}
	}
	return w.finish()
}
