// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectid

import (
	"strconv"
	"strings"

	"github.com/openledger/openledgerd/fault"
)

// AccountID - handle of an account object (space 1.2)
type AccountID uint64

// AssetID - handle of an asset object (space 1.3)
type AssetID uint64

// ForceSettlementID - handle of a pending force settlement (space 1.4)
type ForceSettlementID uint64

// object reference prefixes
const (
	accountPrefix         = "1.2."
	assetPrefix           = "1.3."
	forceSettlementPrefix = "1.4."
)

// distinguished asset instances
const (
	// CoreAsset - the native currency of the chain, prices all fees
	CoreAsset AssetID = 0

	// PlaceholderAsset - stands in for a not yet allocated asset id in
	// a create operation; rewritten by the evaluator after allocation
	PlaceholderAsset AssetID = 1
)

// internal conversion
func fromString(prefix string, s string) (uint64, error) {
	if !strings.HasPrefix(s, prefix) {
		return 0, fault.NotObjectId
	}
	value, err := strconv.ParseUint(s[len(prefix):], 10, 64)
	if nil != err {
		return 0, fault.NotObjectId
	}
	return value, nil
}

// String - object reference for use by the fmt package (for %s)
func (id AccountID) String() string {
	return accountPrefix + strconv.FormatUint(uint64(id), 10)
}

// GoString - object reference for use by the fmt package (for %#v)
func (id AccountID) GoString() string {
	return "<account:" + id.String() + ">"
}

// MarshalText - convert an account id to its object reference
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert an object reference back to an account id
func (id *AccountID) UnmarshalText(s []byte) error {
	value, err := fromString(accountPrefix, string(s))
	if nil != err {
		return err
	}
	*id = AccountID(value)
	return nil
}

// String - object reference for use by the fmt package (for %s)
func (id AssetID) String() string {
	return assetPrefix + strconv.FormatUint(uint64(id), 10)
}

// GoString - object reference for use by the fmt package (for %#v)
func (id AssetID) GoString() string {
	return "<asset:" + id.String() + ">"
}

// MarshalText - convert an asset id to its object reference
func (id AssetID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert an object reference back to an asset id
func (id *AssetID) UnmarshalText(s []byte) error {
	value, err := fromString(assetPrefix, string(s))
	if nil != err {
		return err
	}
	*id = AssetID(value)
	return nil
}

// String - object reference for use by the fmt package (for %s)
func (id ForceSettlementID) String() string {
	return forceSettlementPrefix + strconv.FormatUint(uint64(id), 10)
}

// GoString - object reference for use by the fmt package (for %#v)
func (id ForceSettlementID) GoString() string {
	return "<settlement:" + id.String() + ">"
}

// MarshalText - convert a settlement id to its object reference
func (id ForceSettlementID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert an object reference back to a settlement id
func (id *ForceSettlementID) UnmarshalText(s []byte) error {
	value, err := fromString(forceSettlementPrefix, string(s))
	if nil != err {
		return err
	}
	*id = ForceSettlementID(value)
	return nil
}
