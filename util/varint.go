// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in a Varint64
const Varint64MaximumBytes = 9

// AppendVarint64 - append a 64 bit unsigned integer in Varint64 form
//
// seven value bits per byte, high bit set on all but the final byte;
// the ninth byte, if present, carries a full eight value bits
func AppendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value&0x7f|0x80))
		value >>= 7
	}
	return append(buffer, byte(value))
}

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
func ToVarint64(value uint64) []byte {
	return AppendVarint64(make([]byte, 0, Varint64MaximumBytes), value)
}

// FromVarint64 - decode a Varint64 from the start of a buffer
//
// also returns the number of bytes used as second value
// returns 0, 0 if the varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	shift := uint(0)

	for n, b := range buffer {
		if Varint64MaximumBytes-1 == n {
			return value | uint64(b)<<shift, n + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, n + 1
		}
		shift += 7
	}
	return 0, 0
}
