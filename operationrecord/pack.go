// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/memo"
	"github.com/openledger/openledgerd/objectid"
	"github.com/openledger/openledgerd/util"
)

// low level append primitives
//
// integers are little endian fixed width, object ids and lengths are
// Varint64, a pointer field is a presence byte followed by the value

func appendUint16(buffer []byte, value uint16) []byte {
	return append(buffer, byte(value), byte(value>>8))
}

func appendUint32(buffer []byte, value uint32) []byte {
	return append(buffer,
		byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
}

func appendShare(buffer []byte, value amount.Share) []byte {
	v := uint64(value)
	return append(buffer,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

func appendBool(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

func appendString(buffer []byte, s string) ([]byte, error) {
	if len(s) > MaxPayloadLength {
		return nil, fault.PayloadTooLong
	}
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...), nil
}

func appendBytes(buffer []byte, b []byte) ([]byte, error) {
	if len(b) > MaxPayloadLength {
		return nil, fault.PayloadTooLong
	}
	buffer = util.AppendVarint64(buffer, uint64(len(b)))
	return append(buffer, b...), nil
}

func appendAsset(buffer []byte, asset amount.Asset) []byte {
	buffer = appendShare(buffer, asset.Amount)
	return util.AppendVarint64(buffer, uint64(asset.AssetId))
}

func appendPrice(buffer []byte, price amount.Price) []byte {
	buffer = appendAsset(buffer, price.Base)
	return appendAsset(buffer, price.Quote)
}

func appendAccountSet(buffer []byte, ids []objectid.AccountID) ([]byte, error) {
	if len(ids) > MaxPayloadLength {
		return nil, fault.PayloadTooLong
	}
	buffer = util.AppendVarint64(buffer, uint64(len(ids)))
	for _, id := range ids {
		buffer = util.AppendVarint64(buffer, uint64(id))
	}
	return buffer, nil
}

func appendAssetSet(buffer []byte, ids []objectid.AssetID) ([]byte, error) {
	if len(ids) > MaxPayloadLength {
		return nil, fault.PayloadTooLong
	}
	buffer = util.AppendVarint64(buffer, uint64(len(ids)))
	for _, id := range ids {
		buffer = util.AppendVarint64(buffer, uint64(id))
	}
	return buffer, nil
}

func appendMemo(buffer []byte, m *memo.Memo) []byte {
	if nil == m {
		return append(buffer, 0x00)
	}
	buffer = append(buffer, 0x01)
	return append(buffer, m.Pack()...)
}

// a union member is tag, payload length, payload - the length lets a
// tolerant decoder step over members it does not recognise
func appendExtensionMember(buffer []byte, tag uint64, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadLength {
		return nil, fault.PayloadTooLong
	}
	buffer = util.AppendVarint64(buffer, tag)
	buffer = util.AppendVarint64(buffer, uint64(len(payload)))
	return append(buffer, payload...), nil
}

func appendExtensions(buffer []byte, extensions Extensions) ([]byte, error) {
	buffer = util.AppendVarint64(buffer, uint64(len(extensions)))
	for _, extension := range extensions {
		var err error
		buffer, err = appendExtensionMember(buffer, extension.Tag, extension.Data)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

func (maker *MakerAssetOptions) pack() []byte {
	buffer := appendBool(nil, maker.IsMakerIssuedAsset)
	buffer = appendUint16(buffer, maker.MakerFeePercent)
	buffer = appendUint16(buffer, maker.MakerRewardPercent)
	if nil == maker.MakerRewardAsset {
		buffer = append(buffer, 0x00)
	} else {
		buffer = append(buffer, 0x01)
		buffer = util.AppendVarint64(buffer, uint64(*maker.MakerRewardAsset))
	}
	return appendUint16(buffer, maker.DailyRewardDecayRate)
}

func appendOptionsExtensions(buffer []byte, extensions OptionsExtensions) ([]byte, error) {
	buffer = util.AppendVarint64(buffer, uint64(len(extensions)))
	for _, extension := range extensions {
		var payload []byte
		switch extension.Tag {
		case EmptyExtensionTag:
			// no payload
		case MakerExtensionTag:
			if nil == extension.Maker {
				return nil, fault.NotOperationRecord
			}
			payload = extension.Maker.pack()
		default:
			payload = extension.Data
		}
		var err error
		buffer, err = appendExtensionMember(buffer, extension.Tag, payload)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

func appendAssetOptions(buffer []byte, options *AssetOptions) ([]byte, error) {
	buffer = appendShare(buffer, options.MaxSupply)
	buffer = appendUint16(buffer, options.MarketFeePercent)
	buffer = appendShare(buffer, options.MaxMarketFee)
	buffer = appendUint16(buffer, options.IssuerPermissions)
	buffer = appendUint16(buffer, options.Flags)
	buffer = appendPrice(buffer, options.CoreExchangeRate)
	buffer, err := appendAccountSet(buffer, options.WhitelistAuthorities)
	if nil != err {
		return nil, err
	}
	buffer, err = appendAccountSet(buffer, options.BlacklistAuthorities)
	if nil != err {
		return nil, err
	}
	buffer, err = appendAssetSet(buffer, options.WhitelistMarkets)
	if nil != err {
		return nil, err
	}
	buffer, err = appendAssetSet(buffer, options.BlacklistMarkets)
	if nil != err {
		return nil, err
	}
	buffer, err = appendString(buffer, options.Description)
	if nil != err {
		return nil, err
	}
	return appendOptionsExtensions(buffer, options.Extensions)
}

func appendBitassetOptions(buffer []byte, options *BitassetOptions) ([]byte, error) {
	buffer = appendUint32(buffer, options.FeedLifetimeSec)
	buffer = append(buffer, options.MinimumFeeds)
	buffer = appendUint32(buffer, options.ForceSettlementDelaySec)
	buffer = appendUint16(buffer, options.ForceSettlementOffsetPercent)
	buffer = appendUint16(buffer, options.MaximumForceSettlementVolume)
	buffer = util.AppendVarint64(buffer, uint64(options.ShortBackingAsset))
	return appendExtensions(buffer, options.Extensions)
}

func appendFeed(buffer []byte, feed *PriceFeed) []byte {
	buffer = appendPrice(buffer, feed.CallLimit)
	buffer = appendPrice(buffer, feed.ShortLimit)
	return appendPrice(buffer, feed.SettlementPrice)
}

// Pack - validate the record and pack it to its canonical byte form
//
// returns a Packed structure on success, an invariant error otherwise
func (create *AssetCreate) Pack() (Packed, error) {
	err := create.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetCreateTag))
	packed = appendAsset(packed, create.Fee)
	packed = util.AppendVarint64(packed, uint64(create.Issuer))
	packed, err = appendString(packed, create.Symbol)
	if nil != err {
		return nil, err
	}
	packed = append(packed, create.Precision)
	packed, err = appendAssetOptions(packed, &create.CommonOptions)
	if nil != err {
		return nil, err
	}
	if nil == create.BitassetOpts {
		packed = append(packed, 0x00)
	} else {
		packed = append(packed, 0x01)
		packed, err = appendBitassetOptions(packed, create.BitassetOpts)
		if nil != err {
			return nil, err
		}
	}
	packed = appendBool(packed, create.IsPredictionMarket)
	return appendExtensions(packed, create.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (update *AssetUpdate) Pack() (Packed, error) {
	err := update.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetUpdateTag))
	packed = appendAsset(packed, update.Fee)
	packed = util.AppendVarint64(packed, uint64(update.Issuer))
	packed = util.AppendVarint64(packed, uint64(update.AssetToUpdate))
	if nil == update.NewIssuer {
		packed = append(packed, 0x00)
	} else {
		packed = append(packed, 0x01)
		packed = util.AppendVarint64(packed, uint64(*update.NewIssuer))
	}
	packed, err = appendAssetOptions(packed, &update.NewOptions)
	if nil != err {
		return nil, err
	}
	return appendExtensions(packed, update.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (update *AssetUpdateBitasset) Pack() (Packed, error) {
	err := update.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetUpdateBitassetTag))
	packed = appendAsset(packed, update.Fee)
	packed = util.AppendVarint64(packed, uint64(update.Issuer))
	packed = util.AppendVarint64(packed, uint64(update.AssetToUpdate))
	packed, err = appendBitassetOptions(packed, &update.NewOptions)
	if nil != err {
		return nil, err
	}
	return appendExtensions(packed, update.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (update *AssetUpdateFeedProducers) Pack() (Packed, error) {
	err := update.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetUpdateFeedProducersTag))
	packed = appendAsset(packed, update.Fee)
	packed = util.AppendVarint64(packed, uint64(update.Issuer))
	packed = util.AppendVarint64(packed, uint64(update.AssetToUpdate))
	packed, err = appendAccountSet(packed, update.NewFeedProducers)
	if nil != err {
		return nil, err
	}
	return appendExtensions(packed, update.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (publish *AssetPublishFeed) Pack() (Packed, error) {
	err := publish.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetPublishFeedTag))
	packed = appendAsset(packed, publish.Fee)
	packed = util.AppendVarint64(packed, uint64(publish.Publisher))
	packed = util.AppendVarint64(packed, uint64(publish.AssetId))
	packed = appendFeed(packed, &publish.Feed)
	return appendExtensions(packed, publish.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (issue *AssetIssue) Pack() (Packed, error) {
	err := issue.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetIssueTag))
	packed = appendAsset(packed, issue.Fee)
	packed = util.AppendVarint64(packed, uint64(issue.Issuer))
	packed = appendAsset(packed, issue.AssetToIssue)
	packed = util.AppendVarint64(packed, uint64(issue.IssueToAccount))
	packed = appendMemo(packed, issue.Memo)
	return appendExtensions(packed, issue.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (reserve *AssetReserve) Pack() (Packed, error) {
	err := reserve.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetReserveTag))
	packed = appendAsset(packed, reserve.Fee)
	packed = util.AppendVarint64(packed, uint64(reserve.Payer))
	packed = appendAsset(packed, reserve.AmountToReserve)
	return appendExtensions(packed, reserve.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (fund *AssetFundFeePool) Pack() (Packed, error) {
	err := fund.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetFundFeePoolTag))
	packed = appendAsset(packed, fund.Fee)
	packed = util.AppendVarint64(packed, uint64(fund.FromAccount))
	packed = util.AppendVarint64(packed, uint64(fund.AssetId))
	packed = appendShare(packed, fund.Amount)
	return appendExtensions(packed, fund.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (settle *AssetSettle) Pack() (Packed, error) {
	err := settle.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetSettleTag))
	packed = appendAsset(packed, settle.Fee)
	packed = util.AppendVarint64(packed, uint64(settle.Account))
	packed = appendAsset(packed, settle.Amount)
	return appendExtensions(packed, settle.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (settle *AssetGlobalSettle) Pack() (Packed, error) {
	err := settle.Validate()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetGlobalSettleTag))
	packed = appendAsset(packed, settle.Fee)
	packed = util.AppendVarint64(packed, uint64(settle.Issuer))
	packed = util.AppendVarint64(packed, uint64(settle.AssetToSettle))
	packed = appendPrice(packed, settle.SettlePrice)
	return appendExtensions(packed, settle.Extensions)
}

// Pack - validate the record and pack it to its canonical byte form
func (cancel *AssetSettleCancel) Pack() (Packed, error) {
	err := cancel.Fee.CheckFee()
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(AssetSettleCancelTag))
	packed = appendAsset(packed, cancel.Fee)
	packed = util.AppendVarint64(packed, uint64(cancel.Settlement))
	packed = util.AppendVarint64(packed, uint64(cancel.Account))
	packed = appendAsset(packed, cancel.Amount)
	return appendExtensions(packed, cancel.Extensions)
}
