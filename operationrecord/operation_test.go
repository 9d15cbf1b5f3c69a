// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord_test

import (
	"testing"

	"github.com/openledger/openledgerd/amount"
	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/operationrecord"
)

// truncated or mistyped buffers must never unpack
func TestUnpackMalformed(t *testing.T) {

	r := operationrecord.AssetReserve{
		Fee:             coreAmount(2000000),
		Payer:           17,
		AmountToReserve: amount.Asset{Amount: 5000, AssetId: 5},
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// every proper prefix must fail
	for i := 0; i < len(packed); i += 1 {
		_, _, err := packed[:i].Unpack(true)
		if fault.NotOperationRecord != err {
			t.Errorf("truncated at %d: error: %v  expected: %v", i, err, fault.NotOperationRecord)
		}
	}

	// an unknown record tag
	bad := operationrecord.Packed{0x7f, 0x00}
	_, _, err = bad.Unpack(true)
	if fault.NotOperationRecord != err {
		t.Errorf("unknown tag: error: %v  expected: %v", err, fault.NotOperationRecord)
	}

	// an empty buffer
	_, _, err = operationrecord.Packed{}.Unpack(true)
	if fault.NotOperationRecord != err {
		t.Errorf("empty buffer: error: %v  expected: %v", err, fault.NotOperationRecord)
	}
}

// record names for the RPC display layer
func TestRecordName(t *testing.T) {

	name, ok := operationrecord.RecordName(&operationrecord.AssetCreate{})
	if !ok || "AssetCreate" != name {
		t.Errorf("name: %q, %t  expected: AssetCreate", name, ok)
	}

	name, ok = operationrecord.RecordName(operationrecord.AssetSettleCancel{})
	if !ok || "AssetSettleCancel" != name {
		t.Errorf("name: %q, %t  expected: AssetSettleCancel", name, ok)
	}

	_, ok = operationrecord.RecordName(42)
	if ok {
		t.Error("unexpected name for a non record type")
	}
}

// digests are deterministic, distinct and survive the hex text form
func TestMakeDigest(t *testing.T) {

	r := operationrecord.AssetReserve{
		Fee:             coreAmount(2000000),
		Payer:           17,
		AmountToReserve: amount.Asset{Amount: 5000, AssetId: 5},
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	digest := packed.MakeDigest()
	if packed.MakeDigest() != digest {
		t.Fatal("digest is not deterministic")
	}

	r.Payer = 18
	other, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if other.MakeDigest() == digest {
		t.Fatal("different records share a digest")
	}

	text, err := digest.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var recovered operationrecord.Digest
	err = recovered.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if digest != recovered {
		t.Fatalf("different, original: %v  recovered: %v", digest, recovered)
	}

	err = recovered.UnmarshalText([]byte("00ff"))
	if fault.NotDigest != err {
		t.Fatalf("unmarshal error: %v  expected: %v", err, fault.NotDigest)
	}

	var fromBytes operationrecord.Digest
	err = operationrecord.DigestFromBytes(&fromBytes, digest[:])
	if nil != err {
		t.Fatalf("digest from bytes error: %s", err)
	}
	if digest != fromBytes {
		t.Fatalf("different, original: %v  recovered: %v", digest, fromBytes)
	}

	err = operationrecord.DigestFromBytes(&fromBytes, digest[:16])
	if fault.NotDigest != err {
		t.Fatalf("digest from bytes error: %v  expected: %v", err, fault.NotDigest)
	}
}
