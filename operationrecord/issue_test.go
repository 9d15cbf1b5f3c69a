// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/memo"
	"github.com/openledger/openledgerd/operationrecord"
	"github.com/openledger/openledgerd/util"
)

// test the packing/unpacking of an issue record with a memo attached
//
// ensures that pack->unpack returns the same original value
func TestPackAssetIssue(t *testing.T) {

	fromKey := bytes.Repeat([]byte{0x11}, memo.KeyLength)
	toKey := bytes.Repeat([]byte{0x22}, memo.KeyLength)

	r := operationrecord.AssetIssue{
		Fee:            coreAmount(2100000),
		Issuer:         7,
		AssetToIssue:   amount.Asset{Amount: 5000000, AssetId: 113},
		IssueToAccount: 9,
		Memo: &memo.Memo{
			From:    fromKey,
			To:      toKey,
			Nonce:   0x0123456789abcdef,
			Message: []byte{0xde, 0xad, 0xbe, 0xef},
		},
	}

	expected := joinBytes([]byte{
		0x06,                                           // tag
		0x20, 0x0b, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, // fee
		0x00,                                           // fee asset
		0x07,                                           // issuer
		0x40, 0x4b, 0x4c, 0x00, 0x00, 0x00, 0x00, 0x00, // asset to issue
		0x71,
		0x09, // issue to account
		0x01, // memo present
		0x20, // from key
	}, fromKey, []byte{
		0x20, // to key
	}, toKey, []byte{
		0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01, // nonce
		0x04, 0xde, 0xad, 0xbe, 0xef, // message
		0x00, // extensions
	})

	packed, err := r.Pack()
	if nil != err {
		t.Errorf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	unpacked, n, err := packed.Unpack(false)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("did not unpack all data: only used: %d of: %d bytes", n, len(packed))
	}

	issue, ok := unpacked.(*operationrecord.AssetIssue)
	if !ok {
		t.Fatalf("did not unpack to AssetIssue")
	}

	if !reflect.DeepEqual(r, *issue) {
		t.Fatalf("different, original: %v  recovered: %v", r, *issue)
	}
}

// issue records with bad amounts or keys must be rejected
func TestAssetIssueValidate(t *testing.T) {

	r := operationrecord.AssetIssue{
		Fee:            coreAmount(2100000),
		Issuer:         7,
		AssetToIssue:   amount.Asset{Amount: 0, AssetId: 113},
		IssueToAccount: 9,
	}

	err := r.Validate()
	if fault.AmountNotPositive != err {
		t.Fatalf("validate error: %v  expected: %v", err, fault.AmountNotPositive)
	}

	r.AssetToIssue.Amount = 1
	r.Memo = &memo.Memo{
		From: []byte{0x11},
		To:   bytes.Repeat([]byte{0x22}, memo.KeyLength),
	}
	err = r.Validate()
	if fault.InvalidMemoKey != err {
		t.Fatalf("validate error: %v  expected: %v", err, fault.InvalidMemoKey)
	}

	// an oversize message must be stopped before it can be packed,
	// otherwise the packed record would be undecodable
	r.Memo = &memo.Memo{
		From:    bytes.Repeat([]byte{0x11}, memo.KeyLength),
		To:      bytes.Repeat([]byte{0x22}, memo.KeyLength),
		Message: bytes.Repeat([]byte{0x33}, 9000),
	}
	err = r.Validate()
	if fault.MemoTooLong != err {
		t.Fatalf("validate error: %v  expected: %v", err, fault.MemoTooLong)
	}
	_, err = r.Pack()
	if fault.MemoTooLong != err {
		t.Fatalf("pack error: %v  expected: %v", err, fault.MemoTooLong)
	}
}

// test the packing/unpacking of a reserve record
//
// ensures that pack->unpack returns the same original value
func TestPackAssetReserve(t *testing.T) {

	r := operationrecord.AssetReserve{
		Fee:             coreAmount(2000000),
		Payer:           17,
		AmountToReserve: amount.Asset{Amount: 5000, AssetId: 5},
	}

	expected := []byte{
		0x07,                                           // tag
		0x80, 0x84, 0x1e, 0x00, 0x00, 0x00, 0x00, 0x00, // fee
		0x00,                                           // fee asset
		0x11,                                           // payer
		0x88, 0x13, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // amount to reserve
		0x05,
		0x00, // extensions
	}

	packed, err := r.Pack()
	if nil != err {
		t.Errorf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	unpacked, n, err := packed.Unpack(false)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("did not unpack all data: only used: %d of: %d bytes", n, len(packed))
	}

	reserve, ok := unpacked.(*operationrecord.AssetReserve)
	if !ok {
		t.Fatalf("did not unpack to AssetReserve")
	}

	if !reflect.DeepEqual(r, *reserve) {
		t.Fatalf("different, original: %v  recovered: %v", r, *reserve)
	}

	// the canonical JSON form mirrors the wire field order
	expectedJSON := `{"fee":{"amount":"2000000","assetId":"1.3.0"},"payer":"1.2.17","amountToReserve":{"amount":"5000","assetId":"1.3.5"},"extensions":[]}`
	b, err := json.Marshal(&r)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if expectedJSON != string(b) {
		t.Fatalf("json: %s  expected: %s", b, expectedJSON)
	}
}
