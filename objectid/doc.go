// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package objectid - typed 64 bit instance handles
//
// Chain objects are referenced by opaque instance numbers that are
// distinguished only by their type tag. Text form is the usual
// space.type.instance object reference, e.g. "1.2.0" for the first
// account. Equality is value equality and ordering is numeric by
// instance.
package objectid
