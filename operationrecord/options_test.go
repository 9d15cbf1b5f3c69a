// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord_test

import (
	"strings"
	"testing"

	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/objectid"
	"github.com/openledger/openledgerd/operationrecord"
)

// the default option blocks must pass their own validation
func TestDefaultOptions(t *testing.T) {

	options := operationrecord.DefaultAssetOptions()
	err := options.Validate()
	if nil != err {
		t.Errorf("default asset options: %s", err)
	}

	bitasset := operationrecord.DefaultBitassetOptions()
	err = bitasset.Validate()
	if nil != err {
		t.Errorf("default bitasset options: %s", err)
	}
}

// invalid asset option blocks must be rejected with the right error
func TestAssetOptionsValidate(t *testing.T) {

	testData := []struct {
		name   string
		modify func(options *operationrecord.AssetOptions)
		err    error
	}{
		{
			name:   "zero max supply",
			modify: func(options *operationrecord.AssetOptions) { options.MaxSupply = 0 },
			err:    fault.MaxSupplyOutOfRange,
		},
		{
			name: "max supply above the share ceiling",
			modify: func(options *operationrecord.AssetOptions) {
				options.MaxSupply = amount.MaxShareSupply + 1
			},
			err: fault.MaxSupplyOutOfRange,
		},
		{
			name: "market fee percent above one hundred percent",
			modify: func(options *operationrecord.AssetOptions) {
				options.MarketFeePercent = 10001
			},
			err: fault.PercentOutOfRange,
		},
		{
			name: "negative max market fee",
			modify: func(options *operationrecord.AssetOptions) {
				options.MaxMarketFee = -1
			},
			err: fault.MaxMarketFeeOutOfRange,
		},
		{
			name: "permissions outside the mask",
			modify: func(options *operationrecord.AssetOptions) {
				options.IssuerPermissions = 0x0400
			},
			err: fault.PermissionsOutsideMask,
		},
		{
			name: "flags outside the permissions",
			modify: func(options *operationrecord.AssetOptions) {
				options.IssuerPermissions = operationrecord.ChargeMarketFee
				options.Flags = operationrecord.WhiteList
			},
			err: fault.FlagsOutsidePermissions,
		},
		{
			name: "core exchange rate with a zero leg",
			modify: func(options *operationrecord.AssetOptions) {
				options.CoreExchangeRate.Base.Amount = 0
			},
			err: fault.InvalidPriceAmounts,
		},
		{
			name: "oversize whitelist authorities",
			modify: func(options *operationrecord.AssetOptions) {
				ids := make([]objectid.AccountID, operationrecord.MaxPayloadLength+1)
				for i := range ids {
					ids[i] = objectid.AccountID(i + 1)
				}
				options.WhitelistAuthorities = ids
			},
			err: fault.PayloadTooLong,
		},
		{
			name: "unsorted whitelist authorities",
			modify: func(options *operationrecord.AssetOptions) {
				options.WhitelistAuthorities = []objectid.AccountID{20, 10}
			},
			err: fault.SetNotSorted,
		},
		{
			name: "overlapping market lists",
			modify: func(options *operationrecord.AssetOptions) {
				options.WhitelistMarkets = []objectid.AssetID{1, 2, 3}
				options.BlacklistMarkets = []objectid.AssetID{3, 4}
			},
			err: fault.MarketListsOverlap,
		},
		{
			name: "oversize description",
			modify: func(options *operationrecord.AssetOptions) {
				options.Description = strings.Repeat("x", 8193)
			},
			err: fault.DescriptionTooLong,
		},
	}

	for _, item := range testData {
		options := makeOptions()
		item.modify(&options)
		err := options.Validate()
		if item.err != err {
			t.Errorf("%s: error: %v  expected: %v", item.name, err, item.err)
		}
	}
}

// invalid bitasset option blocks must be rejected with the right error
func TestBitassetOptionsValidate(t *testing.T) {

	testData := []struct {
		name   string
		modify func(options *operationrecord.BitassetOptions)
		err    error
	}{
		{
			name: "feed lifetime below the floor",
			modify: func(options *operationrecord.BitassetOptions) {
				options.FeedLifetimeSec = 59
			},
			err: fault.FeedLifetimeTooShort,
		},
		{
			name: "zero minimum feeds",
			modify: func(options *operationrecord.BitassetOptions) {
				options.MinimumFeeds = 0
			},
			err: fault.ZeroMinimumFeeds,
		},
		{
			name: "settlement offset above one hundred percent",
			modify: func(options *operationrecord.BitassetOptions) {
				options.ForceSettlementOffsetPercent = 10001
			},
			err: fault.PercentOutOfRange,
		},
		{
			name: "settlement volume above one hundred percent",
			modify: func(options *operationrecord.BitassetOptions) {
				options.MaximumForceSettlementVolume = 10001
			},
			err: fault.PercentOutOfRange,
		},
	}

	for _, item := range testData {
		options := operationrecord.DefaultBitassetOptions()
		item.modify(&options)
		err := options.Validate()
		if item.err != err {
			t.Errorf("%s: error: %v  expected: %v", item.name, err, item.err)
		}
	}
}
