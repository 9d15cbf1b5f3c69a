// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/objectid"
)

// Asset - a share amount denominated in a specific asset
type Asset struct {
	Amount  Share            `json:"amount"`
	AssetId objectid.AssetID `json:"assetId"`
}

// CheckPositive - amounts that move value must be greater than zero
func (asset Asset) CheckPositive() error {
	if asset.Amount <= 0 {
		return fault.AmountNotPositive
	}
	return nil
}

// CheckFee - a fee may be zero but never negative
func (asset Asset) CheckFee() error {
	if asset.Amount < 0 {
		return fault.NegativeFee
	}
	return nil
}
