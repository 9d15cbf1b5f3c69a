// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memo - encrypted message attached to an issue operation
//
// The chain never sees the plain text: the sender encrypts to the memo
// key of the recipient and the record only carries the two public keys,
// the shared-secret nonce and the ciphertext.
package memo

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/openledger/openledgerd/fault"
	"github.com/openledger/openledgerd/util"
)

// KeyLength - byte size of a memo public key
const KeyLength = 32

// MaxMessageLength - ceiling on the ciphertext, the same clip a
// decoder applies to every variable length field
const MaxMessageLength = 8192

// PublicKey - a sender or recipient memo key
// represented as hex text for JSON encoding
type PublicKey []byte

// Ciphertext - the encrypted memo payload
// represented as hex text for JSON encoding
type Ciphertext []byte

// Memo - the unpacked memo structure
type Memo struct {
	From    PublicKey  `json:"from"`    // hex
	To      PublicKey  `json:"to"`      // hex
	Nonce   uint64     `json:"nonce"`   // shared secret selector
	Message Ciphertext `json:"message"` // hex
}

// Validate - structural check of the key material and message size
func (memo *Memo) Validate() error {
	if KeyLength != len(memo.From) || KeyLength != len(memo.To) {
		return fault.InvalidMemoKey
	}
	if len(memo.Message) > MaxMessageLength {
		return fault.MemoTooLong
	}
	return nil
}

// Pack - canonical byte form, used inside operation records and for
// the per-kilobyte fee surcharge
//
// fields in declared order: keys and message are length prefixed,
// the nonce is fixed width little endian
func (memo *Memo) Pack() []byte {
	buffer := util.AppendVarint64([]byte{}, uint64(len(memo.From)))
	buffer = append(buffer, memo.From...)
	buffer = util.AppendVarint64(buffer, uint64(len(memo.To)))
	buffer = append(buffer, memo.To...)

	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, memo.Nonce)
	buffer = append(buffer, nonce...)

	buffer = util.AppendVarint64(buffer, uint64(len(memo.Message)))
	return append(buffer, memo.Message...)
}

// PackedSize - serialized byte count without building the buffer
func (memo *Memo) PackedSize() int {
	size := len(util.ToVarint64(uint64(len(memo.From)))) + len(memo.From)
	size += len(util.ToVarint64(uint64(len(memo.To)))) + len(memo.To)
	size += 8
	size += len(util.ToVarint64(uint64(len(memo.Message)))) + len(memo.Message)
	return size
}

// MarshalText - convert a public key to its hex JSON form
func (k PublicKey) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(k)))
	hex.Encode(b, k)
	return b, nil
}

// UnmarshalText - convert hex text back to a public key
func (k *PublicKey) UnmarshalText(s []byte) error {
	*k = make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(*k, s)
	return err
}

// MarshalText - convert a ciphertext to its hex JSON form
func (c Ciphertext) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(c)))
	hex.Encode(b, c)
	return b, nil
}

// UnmarshalText - convert hex text back to a ciphertext
func (c *Ciphertext) UnmarshalText(s []byte) error {
	*c = make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(*c, s)
	return err
}
