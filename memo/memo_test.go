// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memo_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/memo"
)

func makeKey(filler byte) memo.PublicKey {
	k := make(memo.PublicKey, memo.KeyLength)
	for i := range k {
		k[i] = filler
	}
	return k
}

func TestPack(t *testing.T) {

	m := memo.Memo{
		From:    makeKey(0xaa),
		To:      makeKey(0xbb),
		Nonce:   0x0807060504030201,
		Message: memo.Ciphertext{0x01, 0x02, 0x03},
	}
	if err := m.Validate(); nil != err {
		t.Fatalf("validate error: %s", err)
	}

	expected := []byte{0x20}
	expected = append(expected, bytes.Repeat([]byte{0xaa}, 32)...)
	expected = append(expected, 0x20)
	expected = append(expected, bytes.Repeat([]byte{0xbb}, 32)...)
	expected = append(expected, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08)
	expected = append(expected, 0x03, 0x01, 0x02, 0x03)

	packed := m.Pack()
	if !bytes.Equal(packed, expected) {
		t.Errorf("pack memo: %x  expected: %x", packed, expected)
	}

	if len(packed) != m.PackedSize() {
		t.Errorf("packed size: %d  expected: %d", m.PackedSize(), len(packed))
	}
}

func TestValidateKeyLength(t *testing.T) {

	m := memo.Memo{
		From: makeKey(0x01),
		To:   memo.PublicKey{0x02}, // short
	}
	if err := m.Validate(); fault.InvalidMemoKey != err {
		t.Errorf("validate error: %v  expected: %v", err, fault.InvalidMemoKey)
	}

	m = memo.Memo{
		From: nil,
		To:   makeKey(0x02),
	}
	if err := m.Validate(); fault.InvalidMemoKey != err {
		t.Errorf("validate error: %v  expected: %v", err, fault.InvalidMemoKey)
	}
}

func TestValidateMessageLength(t *testing.T) {

	m := memo.Memo{
		From:    makeKey(0x01),
		To:      makeKey(0x02),
		Message: bytes.Repeat([]byte{0x33}, memo.MaxMessageLength),
	}
	if err := m.Validate(); nil != err {
		t.Errorf("validate error: %v  expected success", err)
	}

	m.Message = append(m.Message, 0x33)
	if err := m.Validate(); fault.MemoTooLong != err {
		t.Errorf("validate error: %v  expected: %v", err, fault.MemoTooLong)
	}
}

func TestJSON(t *testing.T) {

	m := memo.Memo{
		From:    makeKey(0x11),
		To:      makeKey(0x22),
		Nonce:   7,
		Message: memo.Ciphertext{0xde, 0xad},
	}

	b, err := json.Marshal(&m)
	if nil != err {
		t.Fatalf("json marshal error: %s", err)
	}

	var recovered memo.Memo
	err = json.Unmarshal(b, &recovered)
	if nil != err {
		t.Fatalf("json unmarshal error: %s", err)
	}

	if !bytes.Equal(recovered.From, m.From) ||
		!bytes.Equal(recovered.To, m.To) ||
		recovered.Nonce != m.Nonce ||
		!bytes.Equal(recovered.Message, m.Message) {
		t.Errorf("json round trip: %+v  expected: %+v", recovered, m)
	}
}
