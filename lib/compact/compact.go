// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package compact

import (
	"encoding/binary"
	"fmt"
)

// Mode range boundaries. A value encodes in the first mode whose
// range contains it.
const (
	max1Byte = 1 << 6
	max2Byte = 1 << 14
	max4Byte = 1 << 30
)

// ShortBufferError reports a decode buffer shorter than the length
// its mode byte demands.
type ShortBufferError struct {
	// Need is the total encoded length selected by the mode byte.
	Need int
	// Have is the number of bytes that were available.
	Have int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("compact integer needs %d bytes, have %d", e.Need, e.Have)
}

// Encode returns the compact encoding of v: 1, 2, 4, or 9 bytes
// depending on magnitude.
func Encode(v uint64) []byte {
	return Append(nil, v)
}

// Append appends the compact encoding of v to dst and returns the
// extended slice. This is the allocation-friendly form used by the
// work-package encoder, which builds one contiguous buffer.
func Append(dst []byte, v uint64) []byte {
	switch {
	case v < max1Byte:
		return append(dst, byte(v)<<2)
	case v < max2Byte:
		return binary.LittleEndian.AppendUint16(dst, uint16(v)<<2|0b01)
	case v < max4Byte:
		return binary.LittleEndian.AppendUint32(dst, uint32(v)<<2|0b10)
	default:
		dst = append(dst, 0b11)
		return binary.LittleEndian.AppendUint64(dst, v)
	}
}

// Decode reads one compact integer from the start of data, returning
// the value and the number of bytes consumed. Fails with a
// [*ShortBufferError] when data is shorter than the mode requires.
func Decode(data []byte) (value uint64, n int, err error) {
	if len(data) == 0 {
		return 0, 0, &ShortBufferError{Need: 1, Have: 0}
	}
	switch data[0] & 0b11 {
	case 0b00:
		return uint64(data[0] >> 2), 1, nil
	case 0b01:
		if len(data) < 2 {
			return 0, 0, &ShortBufferError{Need: 2, Have: len(data)}
		}
		return uint64(binary.LittleEndian.Uint16(data) >> 2), 2, nil
	case 0b10:
		if len(data) < 4 {
			return 0, 0, &ShortBufferError{Need: 4, Have: len(data)}
		}
		return uint64(binary.LittleEndian.Uint32(data) >> 2), 4, nil
	default:
		if len(data) < 9 {
			return 0, 0, &ShortBufferError{Need: 9, Have: len(data)}
		}
		return binary.LittleEndian.Uint64(data[1:9]), 9, nil
	}
}
