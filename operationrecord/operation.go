// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"encoding/hex"

	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/memo"
	"github.com/openledger/openledgerd/objectid"
	"github.com/openledger/openledgerd/util"
)

// TagType - type code for operations
type TagType uint64

// enumerate the possible operation record types
// this is encoded as a Varint64 at the start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AssetCreateTag              = TagType(iota) // define a new asset
	AssetUpdateTag              = TagType(iota) // change common options
	AssetUpdateBitassetTag      = TagType(iota) // change bitasset options
	AssetUpdateFeedProducersTag = TagType(iota) // change feed producer set
	AssetPublishFeedTag         = TagType(iota) // publish a price feed
	AssetIssueTag               = TagType(iota) // issue supply to an account
	AssetReserveTag             = TagType(iota) // burn supply back to the reserve
	AssetFundFeePoolTag         = TagType(iota) // top up an asset's core fee pool
	AssetSettleTag              = TagType(iota) // request forced settlement
	AssetGlobalSettleTag        = TagType(iota) // settle every position at one price
	AssetSettleCancelTag        = TagType(iota) // virtual: settlement was cancelled

	// this item must be last
	InvalidTag = TagType(iota)
)

// byte sizes for various limits
const (
	// MaxPayloadLength - ceiling on any variable length field, keeps a
	// single record within the enclosing transaction size limit
	MaxPayloadLength = 8192
)

// Packed - packed records are just a byte slice
type Packed []byte

// Operation - generic asset operation interface
//
// Validate is a pure static check: it sees no chain state and fails
// with a fault.InvariantError when any precondition on the record
// itself is violated. FeePayer names the account the transaction
// validator debits.
type Operation interface {
	Validate() error
	FeePayer() objectid.AccountID
	Pack() (Packed, error)
}

// AssetCreate - define a new asset
//
// The issuer signs and pays; common options apply to every asset while
// bitasset options must be present exactly when the MarketIssued flag
// is set. The core exchange rate cannot reference the final asset id
// (unknown until allocation) so the non-core leg carries the
// placeholder instance and the evaluator rewrites it.
type AssetCreate struct {
	Fee                amount.Asset       `json:"fee"`
	Issuer             objectid.AccountID `json:"issuer"`
	Symbol             string             `json:"symbol"`
	Precision          uint8              `json:"precision"`
	CommonOptions      AssetOptions       `json:"commonOptions"`
	BitassetOpts       *BitassetOptions   `json:"bitassetOpts,omitempty"`
	IsPredictionMarket bool               `json:"isPredictionMarket"`
	Extensions         Extensions         `json:"extensions"`
}

// AssetUpdate - replace the common options of an existing asset
//
// the evaluator additionally requires issuer to match the asset object
type AssetUpdate struct {
	Fee           amount.Asset        `json:"fee"`
	Issuer        objectid.AccountID  `json:"issuer"`
	AssetToUpdate objectid.AssetID    `json:"assetToUpdate"`
	NewIssuer     *objectid.AccountID `json:"newIssuer,omitempty"`
	NewOptions    AssetOptions        `json:"newOptions"`
	Extensions    Extensions          `json:"extensions"`
}

// AssetUpdateBitasset - replace the bitasset specific options
type AssetUpdateBitasset struct {
	Fee           amount.Asset       `json:"fee"`
	Issuer        objectid.AccountID `json:"issuer"`
	AssetToUpdate objectid.AssetID   `json:"assetToUpdate"`
	NewOptions    BitassetOptions    `json:"newOptions"`
	Extensions    Extensions         `json:"extensions"`
}

// AssetUpdateFeedProducers - replace the set of feed producing accounts
//
// the evaluator bounds the set size by the chain's maximum feed
// publisher parameter; the static check only requires a non empty set
type AssetUpdateFeedProducers struct {
	Fee              amount.Asset         `json:"fee"`
	Issuer           objectid.AccountID   `json:"issuer"`
	AssetToUpdate    objectid.AssetID     `json:"assetToUpdate"`
	NewFeedProducers []objectid.AccountID `json:"newFeedProducers"`
	Extensions       Extensions           `json:"extensions"`
}

// AssetPublishFeed - publish a price feed for a market issued asset
type AssetPublishFeed struct {
	Fee        amount.Asset       `json:"fee"`
	Publisher  objectid.AccountID `json:"publisher"`
	AssetId    objectid.AssetID   `json:"assetId"`
	Feed       PriceFeed          `json:"feed"`
	Extensions Extensions         `json:"extensions"`
}

// AssetIssue - issue new supply to an account
//
// the memo is user data encrypted to the memo key of the recipient
type AssetIssue struct {
	Fee            amount.Asset       `json:"fee"`
	Issuer         objectid.AccountID `json:"issuer"`
	AssetToIssue   amount.Asset       `json:"assetToIssue"`
	IssueToAccount objectid.AccountID `json:"issueToAccount"`
	Memo           *memo.Memo         `json:"memo,omitempty"`
	Extensions     Extensions         `json:"extensions"`
}

// AssetReserve - take an asset out of circulation
//
// not usable on market issued assets (evaluator check)
type AssetReserve struct {
	Fee             amount.Asset       `json:"fee"`
	Payer           objectid.AccountID `json:"payer"`
	AmountToReserve amount.Asset       `json:"amountToReserve"`
	Extensions      Extensions         `json:"extensions"`
}

// AssetFundFeePool - deposit core asset into an asset's fee pool
type AssetFundFeePool struct {
	Fee         amount.Asset       `json:"fee"`
	FromAccount objectid.AccountID `json:"fromAccount"`
	AssetId     objectid.AssetID   `json:"assetId"`
	Amount      amount.Share       `json:"amount"` // core asset units
	Extensions  Extensions         `json:"extensions"`
}

// AssetSettle - request forced settlement of a market issued asset
//
// the chain locks the amount for the settlement delay and then fills
// it from a margin position at the feed price with the configured
// offset
type AssetSettle struct {
	Fee        amount.Asset       `json:"fee"`
	Account    objectid.AccountID `json:"account"`
	Amount     amount.Asset       `json:"amount"`
	Extensions Extensions         `json:"extensions"`
}

// AssetGlobalSettle - settle every holder and position at one price
//
// requires the GlobalSettle permission on the asset (evaluator check);
// used for black swans and prediction market resolution
type AssetGlobalSettle struct {
	Fee           amount.Asset       `json:"fee"`
	Issuer        objectid.AccountID `json:"issuer"`
	AssetToSettle objectid.AssetID   `json:"assetToSettle"`
	SettlePrice   amount.Price       `json:"settlePrice"`
	Extensions    Extensions         `json:"extensions"`
}

// AssetSettleCancel - virtual record, produced by the evaluator when a
// pending settlement is cancelled; never user submittable
type AssetSettleCancel struct {
	Fee        amount.Asset               `json:"fee"`
	Settlement objectid.ForceSettlementID `json:"settlement"`
	Account    objectid.AccountID         `json:"account"`
	Amount     amount.Asset               `json:"amount"`
	Extensions Extensions                 `json:"extensions"`
}

// FeePayer - the account debited for the operation fee
func (create *AssetCreate) FeePayer() objectid.AccountID { return create.Issuer }

// FeePayer - the account debited for the operation fee
func (update *AssetUpdate) FeePayer() objectid.AccountID { return update.Issuer }

// FeePayer - the account debited for the operation fee
func (update *AssetUpdateBitasset) FeePayer() objectid.AccountID { return update.Issuer }

// FeePayer - the account debited for the operation fee
func (update *AssetUpdateFeedProducers) FeePayer() objectid.AccountID { return update.Issuer }

// FeePayer - the account debited for the operation fee
func (publish *AssetPublishFeed) FeePayer() objectid.AccountID { return publish.Publisher }

// FeePayer - the account debited for the operation fee
func (issue *AssetIssue) FeePayer() objectid.AccountID { return issue.Issuer }

// FeePayer - the account debited for the operation fee
func (reserve *AssetReserve) FeePayer() objectid.AccountID { return reserve.Payer }

// FeePayer - the account debited for the operation fee
func (fund *AssetFundFeePool) FeePayer() objectid.AccountID { return fund.FromAccount }

// FeePayer - the account debited for the operation fee
func (settle *AssetSettle) FeePayer() objectid.AccountID { return settle.Account }

// FeePayer - the account debited for the operation fee
func (settle *AssetGlobalSettle) FeePayer() objectid.AccountID { return settle.Issuer }

// FeePayer - the account debited for the operation fee
func (cancel *AssetSettleCancel) FeePayer() objectid.AccountID { return cancel.Account }

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of an operation record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *AssetCreate, AssetCreate:
		return "AssetCreate", true

	case *AssetUpdate, AssetUpdate:
		return "AssetUpdate", true

	case *AssetUpdateBitasset, AssetUpdateBitasset:
		return "AssetUpdateBitasset", true

	case *AssetUpdateFeedProducers, AssetUpdateFeedProducers:
		return "AssetUpdateFeedProducers", true

	case *AssetPublishFeed, AssetPublishFeed:
		return "AssetPublishFeed", true

	case *AssetIssue, AssetIssue:
		return "AssetIssue", true

	case *AssetReserve, AssetReserve:
		return "AssetReserve", true

	case *AssetFundFeePool, AssetFundFeePool:
		return "AssetFundFeePool", true

	case *AssetSettle, AssetSettle:
		return "AssetSettle", true

	case *AssetGlobalSettle, AssetGlobalSettle:
		return "AssetGlobalSettle", true

	case *AssetSettleCancel, AssetSettleCancel:
		return "AssetSettleCancel", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
