// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/fault"
)

// PriceFeed - one producer's view of a market issued asset
//
// the call limit is quoted collateral/debt and the short limit
// debt/collateral, so their asset pairs run in opposite directions;
// the settlement price may be quoted either way around as long as it
// is a ratio between the same two assets
type PriceFeed struct {
	CallLimit       amount.Price `json:"callLimit"`
	ShortLimit      amount.Price `json:"shortLimit"`
	SettlementPrice amount.Price `json:"settlementPrice"`
}

// Validate - every leg well formed and all three prices quoting the
// same asset pair in the documented directions
func (feed *PriceFeed) Validate() error {
	err := feed.CallLimit.Validate()
	if nil != err {
		return err
	}
	err = feed.ShortLimit.Validate()
	if nil != err {
		return err
	}
	err = feed.SettlementPrice.Validate()
	if nil != err {
		return err
	}

	if !feed.CallLimit.InversePair(feed.ShortLimit) {
		return fault.WrongFeedPair
	}
	if !feed.SettlementPrice.SamePair(feed.CallLimit) {
		return fault.WrongFeedPair
	}
	return nil
}
