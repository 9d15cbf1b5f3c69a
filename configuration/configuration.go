// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/bitmark-inc/logger"

	"github.com/openledger/openledgerd/operationrecord"
)

// log rotation defaults
const (
	defaultLogCount = 10
	defaultLogSize  = 1024 * 1024
)

// Configuration - settings for the operation tools
//
// absent keys keep their defaults, so a minimal file only has to
// override the fee parameters that differ from genesis
type Configuration struct {
	DataDirectory string                   `gluamapper:"data_directory" json:"data_directory"`
	FeeSchedule   operationrecord.Schedule `gluamapper:"fee_schedule" json:"fee_schedule"`
	Logging       logger.Configuration     `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - parse a Lua file over the built in defaults
func GetConfiguration(fileName string) (*Configuration, error) {

	config := &Configuration{
		DataDirectory: ".",
		FeeSchedule:   operationrecord.DefaultSchedule(),
		Logging: logger.Configuration{
			Directory: "log",
			File:      "openledger-ops.log",
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	err := ParseConfigurationFile(fileName, config)
	if nil != err {
		return nil, err
	}

	return config, nil
}
