// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectid

// ordered-unique set checks
//
// wherever the wire format carries a "set" the elements must be in
// strictly ascending numeric order; a decoder or validator treats
// anything else as an invariant violation

// AccountSetIsOrdered - true if strictly ascending, no duplicates
func AccountSetIsOrdered(ids []AccountID) bool {
	for i := 1; i < len(ids); i += 1 {
		if ids[i-1] >= ids[i] {
			return false
		}
	}
	return true
}

// AssetSetIsOrdered - true if strictly ascending, no duplicates
func AssetSetIsOrdered(ids []AssetID) bool {
	for i := 1; i < len(ids); i += 1 {
		if ids[i-1] >= ids[i] {
			return false
		}
	}
	return true
}

// AssetSetsOverlap - true if the two ordered sets share any element
func AssetSetsOverlap(a []AssetID, b []AssetID) bool {
	i := 0
	j := 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i += 1
		case a[i] > b[j]:
			j += 1
		default:
			return true
		}
	}
	return false
}
