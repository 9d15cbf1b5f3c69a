// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operationrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/openledger/openledgerd/fault"
)

// limits
const (
	DigestLength = 32
)

// Digest - the identifier of a packed operation record
// represented as hex text for JSON encoding
// to get bytes value just use digest[:]
type Digest [DigestLength]byte

// MakeDigest - digest of a packed record
//
// SHA3-256 hash
func (record Packed) MakeDigest() Digest {
	return Digest(sha3.Sum256(record))
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<operation:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if len(digest) != hex.DecodedLen(len(s)) {
		return fault.NotDigest
	}
	byteCount, err := hex.Decode(digest[:], s)
	if nil != err {
		return err
	}
	if DigestLength != byteCount {
		return fault.NotDigest
	}
	return nil
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.NotDigest
	}
	copy(digest[:], buffer)
	return nil
}
