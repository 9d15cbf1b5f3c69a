// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/objectid"
)

// Price - the ratio base/quote between two assets
type Price struct {
	Base  Asset `json:"base"`
	Quote Asset `json:"quote"`
}

// Validate - both legs positive and denominated in different assets
func (price Price) Validate() error {
	if price.Base.Amount <= 0 || price.Quote.Amount <= 0 {
		return fault.InvalidPriceAmounts
	}
	if price.Base.AssetId == price.Quote.AssetId {
		return fault.SameAssetInPrice
	}
	return nil
}

// References - true if one of the legs is denominated in the asset
func (price Price) References(id objectid.AssetID) bool {
	return price.Base.AssetId == id || price.Quote.AssetId == id
}

// SamePair - true if the other price is a ratio between the same two
// assets, in either direction
func (price Price) SamePair(other Price) bool {
	if price.Base.AssetId == other.Base.AssetId {
		return price.Quote.AssetId == other.Quote.AssetId
	}
	return price.Base.AssetId == other.Quote.AssetId &&
		price.Quote.AssetId == other.Base.AssetId
}

// InversePair - true if the other price is denominated in the same two
// assets with base and quote swapped
func (price Price) InversePair(other Price) bool {
	return price.Base.AssetId == other.Quote.AssetId &&
		price.Quote.AssetId == other.Base.AssetId
}
