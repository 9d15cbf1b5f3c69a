// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/objectid"
)

// Validate - static record checks, no chain state
//
// a market issued asset carries bitasset options, any other asset must
// not; a prediction market additionally needs matching precision with
// its backing asset, but only the structural part (options present) is
// checkable here - precision matching is left to the evaluator, as is
// the rewrite of the placeholder id in the core exchange rate
func (create *AssetCreate) Validate() error {
	err := create.Fee.CheckFee()
	if nil != err {
		return err
	}

	if !IsValidSymbol(create.Symbol) {
		return fault.InvalidAssetSymbol
	}
	if create.Precision > MaxAssetPrecision {
		return fault.InvalidPrecision
	}

	err = create.CommonOptions.Validate()
	if nil != err {
		return err
	}

	if 0 != create.CommonOptions.Flags&MarketIssued {
		if nil == create.BitassetOpts {
			return fault.BitassetOptionsRequired
		}
	} else if nil != create.BitassetOpts {
		return fault.BitassetOptionsNotAllowed
	}

	if nil != create.BitassetOpts {
		err = create.BitassetOpts.Validate()
		if nil != err {
			return err
		}
	}

	if create.IsPredictionMarket && nil == create.BitassetOpts {
		return fault.BitassetOptionsRequired
	}

	return nil
}

// Validate - static record checks, no chain state
func (update *AssetUpdate) Validate() error {
	err := update.Fee.CheckFee()
	if nil != err {
		return err
	}

	if nil != update.NewIssuer && *update.NewIssuer == update.Issuer {
		return fault.IssuerUnchanged
	}

	return update.NewOptions.Validate()
}

// Validate - static record checks, no chain state
func (update *AssetUpdateBitasset) Validate() error {
	err := update.Fee.CheckFee()
	if nil != err {
		return err
	}

	if update.NewOptions.ShortBackingAsset == update.AssetToUpdate {
		return fault.BackingAssetIsSelf
	}

	return update.NewOptions.Validate()
}

// Validate - static record checks, no chain state
//
// the ceiling on the number of producers is a chain parameter and so
// an evaluator check; only non-emptiness and set form are static
func (update *AssetUpdateFeedProducers) Validate() error {
	err := update.Fee.CheckFee()
	if nil != err {
		return err
	}

	if 0 == len(update.NewFeedProducers) {
		return fault.NoFeedProducers
	}
	if len(update.NewFeedProducers) > MaxPayloadLength {
		return fault.PayloadTooLong
	}
	if !objectid.AccountSetIsOrdered(update.NewFeedProducers) {
		return fault.SetNotSorted
	}
	return nil
}

// Validate - static record checks, no chain state
func (publish *AssetPublishFeed) Validate() error {
	err := publish.Fee.CheckFee()
	if nil != err {
		return err
	}
	return publish.Feed.Validate()
}

// Validate - static record checks, no chain state
//
// issuing to the issuer's own account is allowed
func (issue *AssetIssue) Validate() error {
	err := issue.Fee.CheckFee()
	if nil != err {
		return err
	}

	err = issue.AssetToIssue.CheckPositive()
	if nil != err {
		return err
	}

	if nil != issue.Memo {
		return issue.Memo.Validate()
	}
	return nil
}

// Validate - static record checks, no chain state
func (reserve *AssetReserve) Validate() error {
	err := reserve.Fee.CheckFee()
	if nil != err {
		return err
	}
	return reserve.AmountToReserve.CheckPositive()
}

// Validate - static record checks, no chain state
func (fund *AssetFundFeePool) Validate() error {
	err := fund.Fee.CheckFee()
	if nil != err {
		return err
	}

	if fund.Amount <= 0 {
		return fault.AmountNotPositive
	}
	if objectid.CoreAsset == fund.AssetId {
		return fault.CoreAssetFeePool
	}
	return nil
}

// Validate - static record checks, no chain state
func (settle *AssetSettle) Validate() error {
	err := settle.Fee.CheckFee()
	if nil != err {
		return err
	}
	return settle.Amount.CheckPositive()
}

// Validate - static record checks, no chain state
func (settle *AssetGlobalSettle) Validate() error {
	err := settle.Fee.CheckFee()
	if nil != err {
		return err
	}

	err = settle.SettlePrice.Validate()
	if nil != err {
		return err
	}

	if !settle.SettlePrice.References(settle.AssetToSettle) {
		return fault.SettleAssetNotInPrice
	}
	return nil
}

// Validate - no checks: the record is only ever produced by the
// evaluator itself and never enters a transaction from outside
func (cancel *AssetSettleCancel) Validate() error {
	return nil
}
