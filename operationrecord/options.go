// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/objectid"
)

// asset flag bits, also usable as issuer permission bits
//
// a flag may only be active if the matching permission bit is still
// set; permissions can be irrevocably cleared by the issuer
const (
	ChargeMarketFee     uint16 = 0x0001 // issuer takes a cut of market trades
	WhiteList           uint16 = 0x0002 // holders must be whitelisted
	OverrideAuthority   uint16 = 0x0004 // issuer may transfer back from any account
	TransferRestricted  uint16 = 0x0008 // transfers require issuer approval
	DisableForceSettle  uint16 = 0x0010 // holders cannot force settle
	GlobalSettle        uint16 = 0x0020 // issuer may settle all positions at once
	DisableConfidential uint16 = 0x0040 // no blinded transfers
	WitnessFedAsset     uint16 = 0x0080 // feeds come from block producers
	CommitteeFedAsset   uint16 = 0x0100 // feeds come from the committee
	MarketIssued        uint16 = 0x0200 // supply is created against collateral

	// UIAAssetIssuerPermissionMask - every permission bit an issuer may hold
	UIAAssetIssuerPermissionMask uint16 = 0x03ff
)

// percent values are fixed point hundredths of a percent
const (
	OneHundredPercent uint16 = 10000
)

// MaxAssetPrecision - decimal digits to the right of the point
const MaxAssetPrecision = 12

// MinimumFeedLifetime - global floor on the feed expiry window in
// seconds; a shorter lifetime would let the median feed go empty
// between maintenance intervals
const MinimumFeedLifetime uint32 = 60

// AssetOptions - options available on all assets in the network
//
// field order is wire order
type AssetOptions struct {
	MaxSupply            amount.Share         `json:"maxSupply"`
	MarketFeePercent     uint16               `json:"marketFeePercent"`
	MaxMarketFee         amount.Share         `json:"maxMarketFee"`
	IssuerPermissions    uint16               `json:"issuerPermissions"`
	Flags                uint16               `json:"flags"`
	CoreExchangeRate     amount.Price         `json:"coreExchangeRate"`
	WhitelistAuthorities []objectid.AccountID `json:"whitelistAuthorities"`
	BlacklistAuthorities []objectid.AccountID `json:"blacklistAuthorities"`
	WhitelistMarkets     []objectid.AssetID   `json:"whitelistMarkets"`
	BlacklistMarkets     []objectid.AssetID   `json:"blacklistMarkets"`
	Description          string               `json:"description"`
	Extensions           OptionsExtensions    `json:"extensions"`
}

// BitassetOptions - options only available on market issued assets
type BitassetOptions struct {
	FeedLifetimeSec              uint32           `json:"feedLifetimeSec"`
	MinimumFeeds                 uint8            `json:"minimumFeeds"`
	ForceSettlementDelaySec      uint32           `json:"forceSettlementDelaySec"`
	ForceSettlementOffsetPercent uint16           `json:"forceSettlementOffsetPercent"`
	MaximumForceSettlementVolume uint16           `json:"maximumForceSettlementVolume"`
	ShortBackingAsset            objectid.AssetID `json:"shortBackingAsset"`
	Extensions                   Extensions       `json:"extensions"`
}

// DefaultAssetOptions - the open defaults: full supply, no fees, every
// permission retained, no restrictions active
func DefaultAssetOptions() AssetOptions {
	return AssetOptions{
		MaxSupply:         amount.MaxShareSupply,
		MaxMarketFee:      amount.MaxShareSupply,
		IssuerPermissions: UIAAssetIssuerPermissionMask,
		CoreExchangeRate: amount.Price{
			Base:  amount.Asset{Amount: 1, AssetId: objectid.CoreAsset},
			Quote: amount.Asset{Amount: 1, AssetId: objectid.PlaceholderAsset},
		},
	}
}

// DefaultBitassetOptions - one day windows, no settlement offset,
// at most 20% of the supply force settled per maintenance interval
func DefaultBitassetOptions() BitassetOptions {
	return BitassetOptions{
		FeedLifetimeSec:              60 * 60 * 24,
		MinimumFeeds:                 1,
		ForceSettlementDelaySec:      60 * 60 * 24,
		ForceSettlementOffsetPercent: 0,
		MaximumForceSettlementVolume: 2000,
		ShortBackingAsset:            objectid.CoreAsset,
	}
}

// Validate - internal consistency checks
func (options *AssetOptions) Validate() error {
	if options.MaxSupply <= 0 || options.MaxSupply > amount.MaxShareSupply {
		return fault.MaxSupplyOutOfRange
	}
	if options.MarketFeePercent > OneHundredPercent {
		return fault.PercentOutOfRange
	}
	if options.MaxMarketFee < 0 || options.MaxMarketFee > amount.MaxShareSupply {
		return fault.MaxMarketFeeOutOfRange
	}
	if 0 != options.IssuerPermissions&^UIAAssetIssuerPermissionMask {
		return fault.PermissionsOutsideMask
	}
	if 0 != options.Flags&^options.IssuerPermissions {
		return fault.FlagsOutsidePermissions
	}

	err := options.CoreExchangeRate.Validate()
	if nil != err {
		return err
	}

	if len(options.WhitelistAuthorities) > MaxPayloadLength ||
		len(options.BlacklistAuthorities) > MaxPayloadLength ||
		len(options.WhitelistMarkets) > MaxPayloadLength ||
		len(options.BlacklistMarkets) > MaxPayloadLength {
		return fault.PayloadTooLong
	}
	if !objectid.AccountSetIsOrdered(options.WhitelistAuthorities) ||
		!objectid.AccountSetIsOrdered(options.BlacklistAuthorities) ||
		!objectid.AssetSetIsOrdered(options.WhitelistMarkets) ||
		!objectid.AssetSetIsOrdered(options.BlacklistMarkets) {
		return fault.SetNotSorted
	}
	if objectid.AssetSetsOverlap(options.WhitelistMarkets, options.BlacklistMarkets) {
		return fault.MarketListsOverlap
	}

	if len(options.Description) > MaxPayloadLength {
		return fault.DescriptionTooLong
	}

	return options.Extensions.Validate()
}

// Validate - internal consistency checks
func (options *BitassetOptions) Validate() error {
	if options.FeedLifetimeSec < MinimumFeedLifetime {
		return fault.FeedLifetimeTooShort
	}
	if 0 == options.MinimumFeeds {
		return fault.ZeroMinimumFeeds
	}
	if options.ForceSettlementOffsetPercent > OneHundredPercent {
		return fault.PercentOutOfRange
	}
	if options.MaximumForceSettlementVolume > OneHundredPercent {
		return fault.PercentOutOfRange
	}
	return nil
}
