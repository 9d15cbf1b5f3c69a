// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"encoding/binary"

	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/memo"
	"github.com/openledger/openledgerd/objectid"
	"github.com/openledger/openledgerd/util"
)

// unpacker - cursor over a packed record with a sticky error
//
// every read method is a no-op once the error is set, so a decode is a
// straight sequence of reads followed by a single error check
type unpacker struct {
	buffer   []byte
	n        int
	err      error
	tolerant bool
}

func (u *unpacker) fail(err error) {
	if nil == u.err {
		u.err = err
	}
}

func (u *unpacker) take(size int) []byte {
	if nil != u.err {
		return nil
	}
	if u.n+size > len(u.buffer) {
		u.fail(fault.NotOperationRecord)
		return nil
	}
	b := u.buffer[u.n : u.n+size]
	u.n += size
	return b
}

func (u *unpacker) uint8() uint8 {
	b := u.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

func (u *unpacker) uint16() uint16 {
	b := u.take(2)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (u *unpacker) uint32() uint32 {
	b := u.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (u *unpacker) share() amount.Share {
	b := u.take(8)
	if nil == b {
		return 0
	}
	return amount.Share(binary.LittleEndian.Uint64(b))
}

func (u *unpacker) bool() bool {
	switch u.uint8() {
	case 0x00:
		return false
	case 0x01:
		return true
	default:
		u.fail(fault.NotOperationRecord)
		return false
	}
}

func (u *unpacker) varint() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := util.FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.fail(fault.NotOperationRecord)
		return 0
	}
	u.n += count
	return value
}

// length - a count or size clipped to the payload ceiling
func (u *unpacker) length() int {
	if nil != u.err {
		return 0
	}
	value, count := util.FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.fail(fault.NotOperationRecord)
		return 0
	}
	if value > MaxPayloadLength {
		u.fail(fault.PayloadTooLong)
		return 0
	}
	u.n += count
	return int(value)
}

func (u *unpacker) string() string {
	size := u.length()
	b := u.take(size)
	if nil == b {
		return ""
	}
	return string(b)
}

func (u *unpacker) bytes() []byte {
	size := u.length()
	b := u.take(size)
	if nil == b || 0 == size {
		return nil
	}
	data := make([]byte, size)
	copy(data, b)
	return data
}

func (u *unpacker) accountId() objectid.AccountID {
	return objectid.AccountID(u.varint())
}

func (u *unpacker) assetId() objectid.AssetID {
	return objectid.AssetID(u.varint())
}

func (u *unpacker) asset() amount.Asset {
	return amount.Asset{
		Amount:  u.share(),
		AssetId: u.assetId(),
	}
}

func (u *unpacker) price() amount.Price {
	return amount.Price{
		Base:  u.asset(),
		Quote: u.asset(),
	}
}

func (u *unpacker) accountSet() []objectid.AccountID {
	count := u.length()
	if 0 == count {
		return nil
	}
	ids := make([]objectid.AccountID, count)
	for i := 0; i < count; i += 1 {
		ids[i] = u.accountId()
		if i > 0 && nil == u.err && ids[i-1] >= ids[i] {
			u.fail(fault.SetNotSorted)
		}
	}
	if nil != u.err {
		return nil
	}
	return ids
}

func (u *unpacker) assetSet() []objectid.AssetID {
	count := u.length()
	if 0 == count {
		return nil
	}
	ids := make([]objectid.AssetID, count)
	for i := 0; i < count; i += 1 {
		ids[i] = u.assetId()
		if i > 0 && nil == u.err && ids[i-1] >= ids[i] {
			u.fail(fault.SetNotSorted)
		}
	}
	if nil != u.err {
		return nil
	}
	return ids
}

func (u *unpacker) memo() *memo.Memo {
	if !u.bool() {
		return nil
	}
	m := &memo.Memo{
		From: memo.PublicKey(u.bytes()),
		To:   memo.PublicKey(u.bytes()),
	}
	b := u.take(8)
	if nil != b {
		m.Nonce = binary.LittleEndian.Uint64(b)
	}
	m.Message = memo.Ciphertext(u.bytes())
	if nil != u.err {
		return nil
	}
	return m
}

// extensions - operation level extension set
//
// no member tags are defined, so a strict decode rejects any member;
// a tolerant decode keeps the raw payloads
func (u *unpacker) extensions() Extensions {
	count := u.length()
	if 0 == count {
		return nil
	}
	if !u.tolerant {
		u.fail(fault.UnrecognisedExtension)
		return nil
	}
	extensions := make(Extensions, count)
	previous := uint64(0)
	for i := 0; i < count; i += 1 {
		extensions[i].Tag = u.varint()
		if i > 0 && nil == u.err && previous >= extensions[i].Tag {
			u.fail(fault.DuplicateExtension)
		}
		previous = extensions[i].Tag
		extensions[i].Data = u.bytes()
	}
	if nil != u.err {
		return nil
	}
	return extensions
}

func (u *unpacker) makerOptions(payload []byte) *MakerAssetOptions {
	inner := &unpacker{buffer: payload, tolerant: u.tolerant}
	maker := &MakerAssetOptions{
		IsMakerIssuedAsset: inner.bool(),
		MakerFeePercent:    inner.uint16(),
		MakerRewardPercent: inner.uint16(),
	}
	if inner.bool() {
		id := inner.assetId()
		maker.MakerRewardAsset = &id
	}
	maker.DailyRewardDecayRate = inner.uint16()
	if nil == inner.err && inner.n != len(payload) {
		inner.fail(fault.NotOperationRecord)
	}
	if nil != inner.err {
		u.fail(inner.err)
		return nil
	}
	return maker
}

func (u *unpacker) optionsExtensions() OptionsExtensions {
	count := u.length()
	if 0 == count {
		return nil
	}
	extensions := make(OptionsExtensions, count)
	previous := uint64(0)
	for i := 0; i < count; i += 1 {
		tag := u.varint()
		if i > 0 && nil == u.err && previous >= tag {
			u.fail(fault.DuplicateExtension)
		}
		previous = tag
		payload := u.bytes()
		if nil != u.err {
			return nil
		}

		extensions[i].Tag = tag
		switch tag {
		case EmptyExtensionTag:
			if 0 != len(payload) {
				u.fail(fault.NotOperationRecord)
				return nil
			}
		case MakerExtensionTag:
			extensions[i].Maker = u.makerOptions(payload)
			if nil != u.err {
				return nil
			}
		default:
			if !u.tolerant {
				u.fail(fault.UnrecognisedExtension)
				return nil
			}
			extensions[i].Data = payload
		}
	}
	return extensions
}

func (u *unpacker) assetOptions() AssetOptions {
	options := AssetOptions{
		MaxSupply:            u.share(),
		MarketFeePercent:     u.uint16(),
		MaxMarketFee:         u.share(),
		IssuerPermissions:    u.uint16(),
		Flags:                u.uint16(),
		CoreExchangeRate:     u.price(),
		WhitelistAuthorities: u.accountSet(),
		BlacklistAuthorities: u.accountSet(),
		WhitelistMarkets:     u.assetSet(),
		BlacklistMarkets:     u.assetSet(),
		Description:          u.string(),
	}
	options.Extensions = u.optionsExtensions()
	return options
}

func (u *unpacker) bitassetOptions() BitassetOptions {
	return BitassetOptions{
		FeedLifetimeSec:              u.uint32(),
		MinimumFeeds:                 u.uint8(),
		ForceSettlementDelaySec:      u.uint32(),
		ForceSettlementOffsetPercent: u.uint16(),
		MaximumForceSettlementVolume: u.uint16(),
		ShortBackingAsset:            u.assetId(),
		Extensions:                   u.extensions(),
	}
}

func (u *unpacker) feed() PriceFeed {
	return PriceFeed{
		CallLimit:       u.price(),
		ShortLimit:      u.price(),
		SettlementPrice: u.price(),
	}
}

// Unpack - turn a packed record into an operation structure
//
// also returns the number of bytes consumed so records can be read
// from a concatenated stream
//
// a strict decode (tolerant false) rejects any extension member it
// does not recognise; a tolerant decode keeps unknown members as
// opaque bytes so the record survives a re-pack unchanged
func (record Packed) Unpack(tolerant bool) (Operation, int, error) {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.NotOperationRecord
	}

	u := &unpacker{buffer: record, n: n, tolerant: tolerant}

	var operation Operation

	switch TagType(recordType) {

	case AssetCreateTag:
		create := &AssetCreate{
			Fee:       u.asset(),
			Issuer:    u.accountId(),
			Symbol:    u.string(),
			Precision: u.uint8(),
		}
		create.CommonOptions = u.assetOptions()
		if u.bool() {
			options := u.bitassetOptions()
			create.BitassetOpts = &options
		}
		create.IsPredictionMarket = u.bool()
		create.Extensions = u.extensions()
		operation = create

	case AssetUpdateTag:
		update := &AssetUpdate{
			Fee:           u.asset(),
			Issuer:        u.accountId(),
			AssetToUpdate: u.assetId(),
		}
		if u.bool() {
			id := u.accountId()
			update.NewIssuer = &id
		}
		update.NewOptions = u.assetOptions()
		update.Extensions = u.extensions()
		operation = update

	case AssetUpdateBitassetTag:
		operation = &AssetUpdateBitasset{
			Fee:           u.asset(),
			Issuer:        u.accountId(),
			AssetToUpdate: u.assetId(),
			NewOptions:    u.bitassetOptions(),
			Extensions:    u.extensions(),
		}

	case AssetUpdateFeedProducersTag:
		operation = &AssetUpdateFeedProducers{
			Fee:              u.asset(),
			Issuer:           u.accountId(),
			AssetToUpdate:    u.assetId(),
			NewFeedProducers: u.accountSet(),
			Extensions:       u.extensions(),
		}

	case AssetPublishFeedTag:
		operation = &AssetPublishFeed{
			Fee:        u.asset(),
			Publisher:  u.accountId(),
			AssetId:    u.assetId(),
			Feed:       u.feed(),
			Extensions: u.extensions(),
		}

	case AssetIssueTag:
		operation = &AssetIssue{
			Fee:            u.asset(),
			Issuer:         u.accountId(),
			AssetToIssue:   u.asset(),
			IssueToAccount: u.accountId(),
			Memo:           u.memo(),
			Extensions:     u.extensions(),
		}

	case AssetReserveTag:
		operation = &AssetReserve{
			Fee:             u.asset(),
			Payer:           u.accountId(),
			AmountToReserve: u.asset(),
			Extensions:      u.extensions(),
		}

	case AssetFundFeePoolTag:
		operation = &AssetFundFeePool{
			Fee:         u.asset(),
			FromAccount: u.accountId(),
			AssetId:     u.assetId(),
			Amount:      u.share(),
			Extensions:  u.extensions(),
		}

	case AssetSettleTag:
		operation = &AssetSettle{
			Fee:        u.asset(),
			Account:    u.accountId(),
			Amount:     u.asset(),
			Extensions: u.extensions(),
		}

	case AssetGlobalSettleTag:
		operation = &AssetGlobalSettle{
			Fee:           u.asset(),
			Issuer:        u.accountId(),
			AssetToSettle: u.assetId(),
			SettlePrice:   u.price(),
			Extensions:    u.extensions(),
		}

	case AssetSettleCancelTag:
		operation = &AssetSettleCancel{
			Fee:        u.asset(),
			Settlement: objectid.ForceSettlementID(u.varint()),
			Account:    u.accountId(),
			Amount:     u.asset(),
			Extensions: u.extensions(),
		}

	default:
		return nil, 0, fault.NotOperationRecord
	}

	if nil != u.err {
		return nil, 0, u.err
	}
	return operation, u.n, nil
}
