// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

// symbol length limits
const (
	minSymbolLength = 3
	maxSymbolLength = 16
)

// IsValidSymbol - ticker symbol admission check
//
// 3..16 characters from [A-Z0-9.], first and last must be letters,
// at most a single dot and never two dots in a row (the latter is
// vacuous while only one dot is allowed; retained so relaxing the
// dot count does not silently admit "A..B")
func IsValidSymbol(symbol string) bool {
	if len(symbol) < minSymbolLength || len(symbol) > maxSymbolLength {
		return false
	}

	dots := 0
	previousDot := false
	for i := 0; i < len(symbol); i += 1 {
		c := symbol[i]
		switch {
		case c >= 'A' && c <= 'Z':
			previousDot = false

		case c >= '0' && c <= '9':
			if 0 == i || len(symbol)-1 == i {
				return false
			}
			previousDot = false

		case '.' == c:
			if 0 == i || len(symbol)-1 == i {
				return false
			}
			if previousDot {
				return false
			}
			dots += 1
			if dots > 1 {
				return false
			}
			previousDot = true

		default:
			return false
		}
	}
	return true
}
