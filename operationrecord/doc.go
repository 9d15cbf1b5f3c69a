// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operationrecord - the asset operation schema
//
// Every user submittable asset operation of the chain is a plain data
// record in this package. Records are immutable once built: a client
// constructs one, Validate checks it in isolation (no chain state),
// Pack produces the canonical byte form that is signed and shipped
// inside a transaction, and the evaluator applies the state
// transition. Validate and CalculateFee are pure and safe to call from
// any goroutine on shared records.
//
// The canonical encoding is a varint record tag followed by the fields
// in declared order: fixed width little endian integers, varint length
// prefixed strings, ordered sets as a varint count and ascending
// elements, optionals as a presence byte, object ids as varint
// instance numbers, and extension union members as varint tag, varint
// payload length and payload.
package operationrecord
