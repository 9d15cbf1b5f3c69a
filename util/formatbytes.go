// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// FormatBytes - dump a byte slice as Go source for use by test
// routines when regenerating expected data
func FormatBytes(name string, data []byte) string {
	s := strings.Builder{}
	s.WriteString(name + " := []byte{")
	for i, b := range data {
		if 0 == i%8 {
			s.WriteString("\n\t")
		}
		s.WriteString(fmt.Sprintf("0x%02x, ", b))
	}
	s.WriteString("\n}")
	return s.String()
}
