// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
//
// InvariantError covers every static validation failure and every
// malformed primitive found by the unpacker: a record raising one must
// be rejected by consensus.
// UnknownExtensionError is raised only by a strict-mode unpacker that
// met an extension tag it does not recognise.
// ProcessError is for tooling level failures and never affects
// consensus.
type InvariantError GenericError
type UnknownExtensionError GenericError
type ProcessError GenericError

// keep in alphabetic order within each class
var (
	AmountNotPositive          = InvariantError("amount must be greater than zero")
	BackingAssetIsSelf         = InvariantError("asset cannot be backed by itself")
	BitassetOptionsNotAllowed  = InvariantError("bitasset options are only valid for market issued assets")
	BitassetOptionsRequired    = InvariantError("market issued asset requires bitasset options")
	CoreAssetFeePool           = InvariantError("fee pool of the core asset cannot be funded")
	DescriptionTooLong         = InvariantError("description exceeds the payload ceiling")
	DuplicateExtension         = InvariantError("duplicate extension tag")
	FeedLifetimeTooShort       = InvariantError("feed lifetime is below the minimum window")
	FlagsOutsidePermissions    = InvariantError("flags must be a subset of issuer permissions")
	InvalidAssetSymbol         = InvariantError("asset symbol is invalid")
	InvalidMemoKey             = InvariantError("memo key length is invalid")
	InvalidPrecision           = InvariantError("precision exceeds the maximum digits")
	InvalidPriceAmounts        = InvariantError("price amounts must be greater than zero")
	IssuerUnchanged            = InvariantError("new issuer must differ from the current issuer")
	MakerRewardAssetMissing    = InvariantError("maker reward asset is required when reward percent is set")
	MakerRewardOnMakerIssued   = InvariantError("maker issued asset cannot set a maker reward percent")
	MarketListsOverlap         = InvariantError("whitelist and blacklist markets overlap")
	MaxMarketFeeOutOfRange     = InvariantError("max market fee is out of range")
	MaxSupplyOutOfRange        = InvariantError("max supply is out of range")
	MemoTooLong                = InvariantError("memo exceeds the payload ceiling")
	NegativeFee                = InvariantError("fee amount cannot be negative")
	NoFeedProducers            = InvariantError("feed producer set cannot be empty")
	NotDigest                  = InvariantError("not a digest")
	NotObjectId                = InvariantError("not an object id")
	NotOperationRecord         = InvariantError("not an operation record")
	PayloadTooLong             = InvariantError("payload exceeds the maximum length")
	PercentOutOfRange          = InvariantError("percent exceeds one hundred percent")
	PermissionsOutsideMask     = InvariantError("issuer permissions are outside the permission mask")
	SameAssetInPrice           = InvariantError("price must reference two different assets")
	SetNotSorted               = InvariantError("set elements must be unique and ascending")
	SettleAssetNotInPrice      = InvariantError("settle price must reference the asset being settled")
	ShareSupplyOutOfRange      = InvariantError("share amount exceeds the maximum share supply")
	WrongFeedPair              = InvariantError("feed prices reference inconsistent asset pairs")
	ZeroMinimumFeeds           = InvariantError("minimum feeds cannot be zero")

	UnrecognisedExtension = UnknownExtensionError("extension tag is not recognised")

	InvalidStructPointer = ProcessError("invalid struct pointer")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvariantError) Error() string        { return string(e) }
func (e UnknownExtensionError) Error() string { return string(e) }
func (e ProcessError) Error() string          { return string(e) }

// determine the class of an error
func IsErrInvariant(e error) bool        { _, ok := e.(InvariantError); return ok }
func IsErrUnknownExtension(e error) bool { _, ok := e.(UnknownExtensionError); return ok }
func IsErrProcess(e error) bool          { _, ok := e.(ProcessError); return ok }
