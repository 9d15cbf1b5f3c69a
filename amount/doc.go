// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - share amounts, asset amounts and prices
//
// A Share is a signed 64 bit count of the smallest unit of some asset.
// An Asset pairs a share amount with the asset it is denominated in.
// A Price is a ratio between two asset amounts and is only meaningful
// when both legs are positive and reference different assets.
package amount
