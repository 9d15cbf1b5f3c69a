// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"encoding/hex"
	"encoding/json"

	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/objectid"
)

// asset options extension union tags
//
// tag 0 is the reserved empty member kept for backward compatibility,
// tag 1 is the maker/taker fee and market maker reward extension;
// anything else is unknown: rejected by a strict decoder, preserved
// as opaque bytes by a tolerant one
const (
	EmptyExtensionTag uint64 = 0
	MakerExtensionTag uint64 = 1
)

// MakerAssetOptions - maker/taker fee split and market maker subsidies
//
// maker fee percent replaces the market fee percent for the maker side
// of a match; the reward percent diverts part of the collected fees to
// buy back the reward asset. The reward asset must exist, be flagged
// maker issued and share this asset's issuer - those are evaluator
// checks, only the internal consistency is validated here.
type MakerAssetOptions struct {
	IsMakerIssuedAsset   bool              `json:"isMakerIssuedAsset"`
	MakerFeePercent      uint16            `json:"makerFeePercent"`
	MakerRewardPercent   uint16            `json:"makerRewardPercent"`
	MakerRewardAsset     *objectid.AssetID `json:"makerRewardAsset,omitempty"`
	DailyRewardDecayRate uint16            `json:"dailyRewardDecayRate"`
}

// DefaultMakerExtension - rewards decay with a half life of about one
// year (200 hundredths of a percent per day)
func DefaultMakerExtension() MakerAssetOptions {
	return MakerAssetOptions{
		DailyRewardDecayRate: 200,
	}
}

// Validate - internal consistency checks
func (maker *MakerAssetOptions) Validate() error {
	if maker.DailyRewardDecayRate > OneHundredPercent {
		return fault.PercentOutOfRange
	}
	if maker.MakerRewardPercent > OneHundredPercent {
		return fault.PercentOutOfRange
	}
	if maker.MakerFeePercent > OneHundredPercent {
		return fault.PercentOutOfRange
	}
	if maker.IsMakerIssuedAsset && 0 != maker.MakerRewardPercent {
		return fault.MakerRewardOnMakerIssued
	}
	if maker.MakerRewardPercent > 0 && nil == maker.MakerRewardAsset {
		return fault.MakerRewardAssetMissing
	}
	return nil
}

// AssetOptionsExtension - one member of the options extension union
//
// exactly one of the member fields matches the tag: tag 0 carries
// nothing, tag 1 carries Maker, any other tag carries the opaque
// payload a tolerant decoder preserved
type AssetOptionsExtension struct {
	Tag   uint64
	Maker *MakerAssetOptions
	Data  []byte
}

// OptionsExtensions - set of union members, ordered by tag
type OptionsExtensions []AssetOptionsExtension

// Extensions - operation level extension point
//
// no member tags are defined yet, so anything present is opaque data
// from a tolerant decode
type Extensions []OpaqueExtension

// OpaqueExtension - an unknown union member kept as raw bytes
type OpaqueExtension struct {
	Tag  uint64
	Data []byte
}

// Validate - per member validation local to the variant
func (extension *AssetOptionsExtension) Validate() error {
	switch extension.Tag {
	case EmptyExtensionTag:
		return nil
	case MakerExtensionTag:
		if nil == extension.Maker {
			return fault.NotOperationRecord
		}
		return extension.Maker.Validate()
	default:
		// survives only a tolerant decode, nothing to check locally
		return nil
	}
}

// Validate - ascending unique tags, every member valid in isolation
func (extensions OptionsExtensions) Validate() error {
	for i, extension := range extensions {
		if i > 0 && extensions[i-1].Tag >= extension.Tag {
			return fault.DuplicateExtension
		}
		err := extension.Validate()
		if nil != err {
			return err
		}
	}
	return nil
}

// MarshalJSON - an absent set still encodes as an empty array
func (extensions OptionsExtensions) MarshalJSON() ([]byte, error) {
	if 0 == len(extensions) {
		return []byte("[]"), nil
	}
	return json.Marshal([]AssetOptionsExtension(extensions))
}

// MarshalJSON - an absent set still encodes as an empty array
func (extensions Extensions) MarshalJSON() ([]byte, error) {
	if 0 == len(extensions) {
		return []byte("[]"), nil
	}
	return json.Marshal([]OpaqueExtension(extensions))
}

// MarshalJSON - a union member encodes as a [tag, value] pair
func (extension AssetOptionsExtension) MarshalJSON() ([]byte, error) {
	var value interface{}
	switch extension.Tag {
	case EmptyExtensionTag:
		value = struct{}{}
	case MakerExtensionTag:
		value = extension.Maker
	default:
		value = hex.EncodeToString(extension.Data)
	}
	return json.Marshal([2]interface{}{extension.Tag, value})
}

// UnmarshalJSON - decode a [tag, value] pair back to a union member
func (extension *AssetOptionsExtension) UnmarshalJSON(s []byte) error {
	var pair [2]json.RawMessage
	err := json.Unmarshal(s, &pair)
	if nil != err {
		return err
	}
	err = json.Unmarshal(pair[0], &extension.Tag)
	if nil != err {
		return err
	}

	extension.Maker = nil
	extension.Data = nil
	switch extension.Tag {
	case EmptyExtensionTag:
		return nil
	case MakerExtensionTag:
		extension.Maker = &MakerAssetOptions{}
		return json.Unmarshal(pair[1], extension.Maker)
	default:
		h := ""
		err = json.Unmarshal(pair[1], &h)
		if nil != err {
			return err
		}
		extension.Data, err = hex.DecodeString(h)
		return err
	}
}

// MarshalJSON - an opaque member encodes as a [tag, hex] pair
func (extension OpaqueExtension) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{extension.Tag, hex.EncodeToString(extension.Data)})
}

// UnmarshalJSON - decode a [tag, hex] pair back to an opaque member
func (extension *OpaqueExtension) UnmarshalJSON(s []byte) error {
	var pair [2]json.RawMessage
	err := json.Unmarshal(s, &pair)
	if nil != err {
		return err
	}
	err = json.Unmarshal(pair[0], &extension.Tag)
	if nil != err {
		return err
	}
	h := ""
	err = json.Unmarshal(pair[1], &h)
	if nil != err {
		return err
	}
	extension.Data, err = hex.DecodeString(h)
	return err
}
