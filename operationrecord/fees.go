// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/util"
)

// fee amounts are expressed in the smallest core asset unit
const blockchainPrecision = uint64(amount.BlockchainPrecision)

// AssetCreateFeeParameters - creation prices by symbol length plus the
// per kilobyte surcharge on the description
type AssetCreateFeeParameters struct {
	Symbol3       uint64 `gluamapper:"symbol3" json:"symbol3"`
	Symbol4       uint64 `gluamapper:"symbol4" json:"symbol4"`
	LongSymbol    uint64 `gluamapper:"long_symbol" json:"longSymbol"`
	PricePerKbyte uint32 `gluamapper:"price_per_kbyte" json:"pricePerKbyte"`
}

// AssetUpdateFeeParameters - flat fee plus per kilobyte surcharge
type AssetUpdateFeeParameters struct {
	Fee           uint64 `gluamapper:"fee" json:"fee"`
	PricePerKbyte uint32 `gluamapper:"price_per_kbyte" json:"pricePerKbyte"`
}

// AssetUpdateBitassetFeeParameters - flat fee
type AssetUpdateBitassetFeeParameters struct {
	Fee uint64 `gluamapper:"fee" json:"fee"`
}

// AssetUpdateFeedProducersFeeParameters - flat fee
type AssetUpdateFeedProducersFeeParameters struct {
	Fee uint64 `gluamapper:"fee" json:"fee"`
}

// AssetPublishFeedFeeParameters - flat fee, kept low so producers can
// refresh feeds frequently
type AssetPublishFeedFeeParameters struct {
	Fee uint64 `gluamapper:"fee" json:"fee"`
}

// AssetIssueFeeParameters - flat fee plus per kilobyte surcharge on
// the attached memo
type AssetIssueFeeParameters struct {
	Fee           uint64 `gluamapper:"fee" json:"fee"`
	PricePerKbyte uint32 `gluamapper:"price_per_kbyte" json:"pricePerKbyte"`
}

// AssetReserveFeeParameters - flat fee
type AssetReserveFeeParameters struct {
	Fee uint64 `gluamapper:"fee" json:"fee"`
}

// AssetFundFeePoolFeeParameters - flat fee
type AssetFundFeePoolFeeParameters struct {
	Fee uint64 `gluamapper:"fee" json:"fee"`
}

// AssetSettleFeeParameters - flat fee
type AssetSettleFeeParameters struct {
	Fee uint64 `gluamapper:"fee" json:"fee"`
}

// AssetGlobalSettleFeeParameters - flat fee
type AssetGlobalSettleFeeParameters struct {
	Fee uint64 `gluamapper:"fee" json:"fee"`
}

// AssetSettleCancelFeeParameters - no parameters: the record is
// evaluator generated and never charged
type AssetSettleCancelFeeParameters struct {
}

// Schedule - fee parameters for every operation, indexed by tag order
type Schedule struct {
	AssetCreate              AssetCreateFeeParameters              `gluamapper:"asset_create" json:"assetCreate"`
	AssetUpdate              AssetUpdateFeeParameters              `gluamapper:"asset_update" json:"assetUpdate"`
	AssetUpdateBitasset      AssetUpdateBitassetFeeParameters      `gluamapper:"asset_update_bitasset" json:"assetUpdateBitasset"`
	AssetUpdateFeedProducers AssetUpdateFeedProducersFeeParameters `gluamapper:"asset_update_feed_producers" json:"assetUpdateFeedProducers"`
	AssetPublishFeed         AssetPublishFeedFeeParameters         `gluamapper:"asset_publish_feed" json:"assetPublishFeed"`
	AssetIssue               AssetIssueFeeParameters               `gluamapper:"asset_issue" json:"assetIssue"`
	AssetReserve             AssetReserveFeeParameters             `gluamapper:"asset_reserve" json:"assetReserve"`
	AssetFundFeePool         AssetFundFeePoolFeeParameters         `gluamapper:"asset_fund_fee_pool" json:"assetFundFeePool"`
	AssetSettle              AssetSettleFeeParameters              `gluamapper:"asset_settle" json:"assetSettle"`
	AssetGlobalSettle        AssetGlobalSettleFeeParameters        `gluamapper:"asset_global_settle" json:"assetGlobalSettle"`
	AssetSettleCancel        AssetSettleCancelFeeParameters        `gluamapper:"asset_settle_cancel" json:"assetSettleCancel"`
}

// DefaultSchedule - the genesis fee schedule
func DefaultSchedule() Schedule {
	return Schedule{
		AssetCreate: AssetCreateFeeParameters{
			Symbol3:       500000 * blockchainPrecision,
			Symbol4:       300000 * blockchainPrecision,
			LongSymbol:    5000 * blockchainPrecision,
			PricePerKbyte: 10,
		},
		AssetUpdate: AssetUpdateFeeParameters{
			Fee:           500 * blockchainPrecision,
			PricePerKbyte: 10,
		},
		AssetUpdateBitasset: AssetUpdateBitassetFeeParameters{
			Fee: 500 * blockchainPrecision,
		},
		AssetUpdateFeedProducers: AssetUpdateFeedProducersFeeParameters{
			Fee: 500 * blockchainPrecision,
		},
		AssetPublishFeed: AssetPublishFeedFeeParameters{
			Fee: 1 * blockchainPrecision,
		},
		AssetIssue: AssetIssueFeeParameters{
			Fee:           20 * blockchainPrecision,
			PricePerKbyte: uint32(1 * blockchainPrecision),
		},
		AssetReserve: AssetReserveFeeParameters{
			Fee: 20 * blockchainPrecision,
		},
		AssetFundFeePool: AssetFundFeePoolFeeParameters{
			Fee: 1 * blockchainPrecision,
		},
		AssetSettle: AssetSettleFeeParameters{
			Fee: 100 * blockchainPrecision,
		},
		AssetGlobalSettle: AssetGlobalSettleFeeParameters{
			Fee: 500 * blockchainPrecision,
		},
	}
}

// dataFee - per kilobyte surcharge, every started kilobyte counted
func dataFee(size int, pricePerKbyte uint32) uint64 {
	kilobytes := uint64(size+1023) / 1024
	return kilobytes * uint64(pricePerKbyte)
}

// CalculateFee - the fee for an already packed record
//
// the surcharge prices only the variable sized payload of a record:
// the description for create and update, the memo for issue
func (schedule *Schedule) CalculateFee(packed Packed) (amount.Share, error) {
	operation, _, err := packed.Unpack(true)
	if nil != err {
		return 0, err
	}

	fee := uint64(0)

	switch op := operation.(type) {
	case *AssetCreate:
		params := &schedule.AssetCreate
		switch len(op.Symbol) {
		case 3:
			fee = params.Symbol3
		case 4:
			fee = params.Symbol4
		default:
			fee = params.LongSymbol
		}
		fee += dataFee(len(op.CommonOptions.Description), params.PricePerKbyte)

	case *AssetUpdate:
		fee = schedule.AssetUpdate.Fee +
			dataFee(len(op.NewOptions.Description), schedule.AssetUpdate.PricePerKbyte)

	case *AssetUpdateBitasset:
		fee = schedule.AssetUpdateBitasset.Fee

	case *AssetUpdateFeedProducers:
		fee = schedule.AssetUpdateFeedProducers.Fee

	case *AssetPublishFeed:
		fee = schedule.AssetPublishFeed.Fee

	case *AssetIssue:
		fee = schedule.AssetIssue.Fee
		if nil != op.Memo {
			fee += dataFee(op.Memo.PackedSize(), schedule.AssetIssue.PricePerKbyte)
		}

	case *AssetReserve:
		fee = schedule.AssetReserve.Fee

	case *AssetFundFeePool:
		fee = schedule.AssetFundFeePool.Fee

	case *AssetSettle:
		fee = schedule.AssetSettle.Fee

	case *AssetGlobalSettle:
		fee = schedule.AssetGlobalSettle.Fee

	case *AssetSettleCancel:
		fee = 0

	default:
		return 0, fault.NotOperationRecord
	}

	share := amount.Share(fee)
	err = share.CheckSupply()
	if nil != err {
		return 0, err
	}
	return share, nil
}

// OperationFee - pack an operation and price it in one step
func (schedule *Schedule) OperationFee(operation Operation) (amount.Share, error) {
	packed, err := operation.Pack()
	if nil != err {
		return 0, err
	}
	return schedule.CalculateFee(packed)
}

// Pack - canonical byte form of the schedule
//
// each entry is the operation tag followed by its fixed width
// parameters: fees as eight byte and kilobyte prices as four byte
// little endian values, entries in tag order
func (schedule *Schedule) Pack() []byte {
	buffer := util.ToVarint64(uint64(AssetCreateTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetCreate.Symbol3))
	buffer = appendShare(buffer, amount.Share(schedule.AssetCreate.Symbol4))
	buffer = appendShare(buffer, amount.Share(schedule.AssetCreate.LongSymbol))
	buffer = appendUint32(buffer, schedule.AssetCreate.PricePerKbyte)

	buffer = util.AppendVarint64(buffer, uint64(AssetUpdateTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetUpdate.Fee))
	buffer = appendUint32(buffer, schedule.AssetUpdate.PricePerKbyte)

	buffer = util.AppendVarint64(buffer, uint64(AssetUpdateBitassetTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetUpdateBitasset.Fee))

	buffer = util.AppendVarint64(buffer, uint64(AssetUpdateFeedProducersTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetUpdateFeedProducers.Fee))

	buffer = util.AppendVarint64(buffer, uint64(AssetPublishFeedTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetPublishFeed.Fee))

	buffer = util.AppendVarint64(buffer, uint64(AssetIssueTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetIssue.Fee))
	buffer = appendUint32(buffer, schedule.AssetIssue.PricePerKbyte)

	buffer = util.AppendVarint64(buffer, uint64(AssetReserveTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetReserve.Fee))

	buffer = util.AppendVarint64(buffer, uint64(AssetFundFeePoolTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetFundFeePool.Fee))

	buffer = util.AppendVarint64(buffer, uint64(AssetSettleTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetSettle.Fee))

	buffer = util.AppendVarint64(buffer, uint64(AssetGlobalSettleTag))
	buffer = appendShare(buffer, amount.Share(schedule.AssetGlobalSettle.Fee))

	buffer = util.AppendVarint64(buffer, uint64(AssetSettleCancelTag))

	return buffer
}

// UnpackSchedule - decode a packed schedule
//
// entries must be complete and in tag order
func UnpackSchedule(buffer []byte) (*Schedule, error) {
	u := &unpacker{buffer: buffer}
	schedule := &Schedule{}

	for tag := AssetCreateTag; tag <= AssetSettleCancelTag; tag += 1 {
		if TagType(u.varint()) != tag {
			u.fail(fault.NotOperationRecord)
			break
		}
		switch tag {
		case AssetCreateTag:
			schedule.AssetCreate.Symbol3 = uint64(u.share())
			schedule.AssetCreate.Symbol4 = uint64(u.share())
			schedule.AssetCreate.LongSymbol = uint64(u.share())
			schedule.AssetCreate.PricePerKbyte = u.uint32()
		case AssetUpdateTag:
			schedule.AssetUpdate.Fee = uint64(u.share())
			schedule.AssetUpdate.PricePerKbyte = u.uint32()
		case AssetUpdateBitassetTag:
			schedule.AssetUpdateBitasset.Fee = uint64(u.share())
		case AssetUpdateFeedProducersTag:
			schedule.AssetUpdateFeedProducers.Fee = uint64(u.share())
		case AssetPublishFeedTag:
			schedule.AssetPublishFeed.Fee = uint64(u.share())
		case AssetIssueTag:
			schedule.AssetIssue.Fee = uint64(u.share())
			schedule.AssetIssue.PricePerKbyte = u.uint32()
		case AssetReserveTag:
			schedule.AssetReserve.Fee = uint64(u.share())
		case AssetFundFeePoolTag:
			schedule.AssetFundFeePool.Fee = uint64(u.share())
		case AssetSettleTag:
			schedule.AssetSettle.Fee = uint64(u.share())
		case AssetGlobalSettleTag:
			schedule.AssetGlobalSettle.Fee = uint64(u.share())
		case AssetSettleCancelTag:
			// no parameters
		}
	}

	if nil == u.err && u.n != len(buffer) {
		u.fail(fault.NotOperationRecord)
	}
	if nil != u.err {
		return nil, u.err
	}
	return schedule, nil
}
