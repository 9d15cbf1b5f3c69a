// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord_test

import (
	"bytes"

	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/objectid"
	"github.com/openledger/openledgerd/operationrecord"
)

// shared fixtures for the record tests

// a plain user issued asset option block used by several pack tests
func makeOptions() operationrecord.AssetOptions {
	return operationrecord.AssetOptions{
		MaxSupply:         1000000000,
		MarketFeePercent:  30,
		MaxMarketFee:      1000000,
		IssuerPermissions: 0x00ff,
		Flags:             operationrecord.ChargeMarketFee,
		CoreExchangeRate: amount.Price{
			Base:  amount.Asset{Amount: 1, AssetId: objectid.CoreAsset},
			Quote: amount.Asset{Amount: 10, AssetId: objectid.PlaceholderAsset},
		},
	}
}

// the packed form of makeOptions
var packedOptions = []byte{
	0x00, 0xca, 0x9a, 0x3b, 0x00, 0x00, 0x00, 0x00, // max supply
	0x1e, 0x00, // market fee percent
	0x40, 0x42, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, // max market fee
	0xff, 0x00, // issuer permissions
	0x01, 0x00, // flags
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // core exchange rate
	0x00,
	0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x01,
	0x00, 0x00, 0x00, 0x00, // empty authority and market sets
	0x00, // description
	0x00, // extensions
}

func coreAmount(value amount.Share) amount.Asset {
	return amount.Asset{Amount: value, AssetId: objectid.CoreAsset}
}

func joinBytes(chunks ...[]byte) []byte {
	return bytes.Join(chunks, nil)
}
