// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package blc

import "strings"

// bitReader consumes bits MSB-first from a byte slice. Running past
// the last byte is reported through the ok return, not an error —
// callers turn it into a decode failure with positional context.
type bitReader struct {
	data    []byte
	byteOff int
	bitOff  uint8
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

// readBit returns the next bit and whether one was available.
func (r *bitReader) readBit() (bit bool, ok bool) {
	if r.byteOff >= len(r.data) {
		return false, false
	}
	bit = (r.data[r.byteOff]>>(7-r.bitOff))&1 == 1
	r.bitOff++
	if r.bitOff == 8 {
		r.bitOff = 0
		r.byteOff++
	}
	return bit, true
}

// bitsRead returns how many bits have been consumed so far. Used for
// error positions.
func (r *bitReader) bitsRead() int {
	return r.byteOff*8 + int(r.bitOff)
}

// bitWriter accumulates bits MSB-first into a growing byte buffer.
// A zero byte is appended speculatively whenever the current byte
// fills, so writeBit never allocates mid-bit.
type bitWriter struct {
	data   []byte
	bitOff uint8
}

func newBitWriter() *bitWriter {
	return &bitWriter{data: []byte{0}}
}

func (w *bitWriter) writeBit(bit bool) {
	if bit {
		w.data[len(w.data)-1] |= 1 << (7 - w.bitOff)
	}
	w.bitOff++
	if w.bitOff == 8 {
		w.bitOff = 0
		w.data = append(w.data, 0)
	}
}

// finish returns the written bytes. The speculative trailing byte is
// dropped only when it received no bits, so the result is exactly
// ceil(bits written / 8) bytes: zero bits the caller wrote explicitly
// stay, only the unused pre-allocated byte is trimmed.
func (w *bitWriter) finish() []byte {
	if w.bitOff == 0 {
		return w.data[:len(w.data)-1]
	}
	return w.data
}

// FormatBits renders data as space-separated 8-bit binary groups, the
// form used in CLI output to show a term's exact bit layout.
func FormatBits(data []byte) string {
	var b strings.Builder
	for i, by := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		for bit := 7; bit >= 0; bit-- {
			if by>>uint(bit)&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}
