// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"strconv"

	"github.com/openledger/openledgerd/fault"
)

// chain wide limits
const (
	// MaxShareSupply - no asset supply may ever exceed this count of
	// its smallest unit
	MaxShareSupply Share = 1000000000000000

	// BlockchainPrecision - smallest units in one whole core asset,
	// fee defaults are expressed as multiples of this
	BlockchainPrecision Share = 100000
)

// Share - a signed count of the smallest unit of an asset
type Share int64

// CheckSupply - valid wherever the value denotes a supply or a
// non-negative amount bounded by the global share limit
func (share Share) CheckSupply() error {
	if share < 0 || share > MaxShareSupply {
		return fault.ShareSupplyOutOfRange
	}
	return nil
}

// MarshalText - 64 bit amounts ride as quoted integers in JSON to
// survive decoders that read numbers as floats
func (share Share) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(share), 10)), nil
}

// UnmarshalText - convert a quoted integer back to a share amount
func (share *Share) UnmarshalText(s []byte) error {
	value, err := strconv.ParseInt(string(s), 10, 64)
	if nil != err {
		return err
	}
	*share = Share(value)
	return nil
}
