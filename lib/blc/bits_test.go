// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package blc

import "testing"

func TestBitWriterAlignment(t *testing.T) {
	// For any number of bits written, finish() yields exactly
	// ceil(n/8) bytes, and reading them back reproduces the original
	// bits with only zero padding after.
	for n := 0; n <= 64; n++ {
		w := newBitWriter()
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = i%3 == 0
			w.writeBit(bits[i])
		}
		out := w.finish()

		wantLen := (n + 7) / 8
		if len(out) != wantLen {
			t.Fatalf("%d bits produced %d bytes, want %d", n, len(out), wantLen)
		}

		r := newBitReader(out)
		for i, want := range bits {
			got, ok := r.readBit()
			if !ok {
				t.Fatalf("n=%d: reader ran out at bit %d", n, i)
			}
			if got != want {
				t.Fatalf("n=%d: bit %d = %v, want %v", n, i, got, want)
			}
		}
		// Remaining bits are padding and must all be zero.
		for {
			got, ok := r.readBit()
			if !ok {
				break
			}
			if got {
				t.Fatalf("n=%d: non-zero padding bit", n)
			}
		}
	}
}

func TestBitWriterPreservesExplicitZeros(t *testing.T) {
	// Trailing zeros the caller wrote are part of the output; only
	// the speculative unused byte is trimmed.
	w := newBitWriter()
	w.writeBit(true)
	for i := 0; i < 8; i++ {
		w.writeBit(false)
	}
	out := w.finish()
	if len(out) != 2 {
		t.Fatalf("9 bits produced %d bytes, want 2", len(out))
	}
	if out[0] != 0x80 || out[1] != 0x00 {
		t.Errorf("output = %x, want 8000", out)
	}
}

func TestBitReaderEndOfInput(t *testing.T) {
	r := newBitReader([]byte{0xFF})
	for i := 0; i < 8; i++ {
		if _, ok := r.readBit(); !ok {
			t.Fatalf("reader ended early at bit %d", i)
		}
	}
	if _, ok := r.readBit(); ok {
		t.Error("reader produced a ninth bit from a single byte")
	}
	if got := r.bitsRead(); got != 8 {
		t.Errorf("bitsRead() = %d, want 8", got)
	}
}

func TestFormatBits(t *testing.T) {
	if got, want := FormatBits([]byte{0x20}), "00100000"; got != want {
		t.Errorf("FormatBits(0x20) = %q, want %q", got, want)
	}
	if got, want := FormatBits([]byte{0x48, 0x80}), "01001000 10000000"; got != want {
		t.Errorf("FormatBits(0x48, 0x80) = %q, want %q", got, want)
	}
	if got := FormatBits(nil); got != "" {
		t.Errorf("FormatBits(nil) = %q, want empty", got)
	}
}
