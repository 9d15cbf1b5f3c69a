// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OpenLedger Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/openledger/openledgerd/configuration"
	"github.com/openledger/openledgerd/operationrecord"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "tolerant", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "fee", HasArg: getoptions.NO_ARGUMENT, Short: 'f'},
		{Long: "schedule", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	showSchedule := len(options["schedule"]) > 0

	if len(options["help"]) > 0 || (0 == len(arguments) && !showSchedule) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--tolerant] [--fee] [--schedule] [--config=FILE] hex-record...", program)
	}

	tolerant := len(options["tolerant"]) > 0
	showFee := len(options["fee"]) > 0
	verbose := len(options["verbose"]) > 0

	config := &configuration.Configuration{
		FeeSchedule: operationrecord.DefaultSchedule(),
		Logging: logger.Configuration{
			Directory: ".",
			File:      "openledger-ops.log",
			Size:      1048576,
			Count:     10,
			Console:   verbose,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
	if len(options["config"]) > 0 {
		config, err = configuration.GetConfiguration(options["config"][0])
		if nil != err {
			exitwithstatus.Message("%s: configuration error: %s", program, err)
		}
	}

	// start logging
	if err = logger.Initialise(config.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("openledger-ops")

	if showSchedule {
		b, err := json.MarshalIndent(&config.FeeSchedule, "", "  ")
		if nil != err {
			exitwithstatus.Message("%s: schedule marshal error: %s", program, err)
		}
		fmt.Printf("%s\n", b)
	}

	for i, argument := range arguments {

		packed, err := hex.DecodeString(argument)
		if nil != err {
			exitwithstatus.Message("%s: argument: %d  hex decode error: %s", program, i, err)
		}

		record := operationrecord.Packed(packed)

		operation, n, err := record.Unpack(tolerant)
		if nil != err {
			log.Errorf("argument: %d  unpack error: %s", i, err)
			exitwithstatus.Message("%s: argument: %d  unpack error: %s", program, i, err)
		}
		if len(record) != n {
			exitwithstatus.Message("%s: argument: %d  excess data after record: %d of %d bytes used", program, i, n, len(record))
		}

		name, _ := operationrecord.RecordName(operation)
		log.Infof("argument: %d  record: %s", i, name)

		err = operation.Validate()
		if nil != err {
			exitwithstatus.Message("%s: argument: %d  validate error: %s", program, i, err)
		}

		item := struct {
			Record    string                    `json:"record"`
			Digest    operationrecord.Digest    `json:"digest"`
			FeePayer  string                    `json:"feePayer"`
			Operation operationrecord.Operation `json:"operation"`
		}{
			Record:    name,
			Digest:    record.MakeDigest(),
			FeePayer:  operation.FeePayer().String(),
			Operation: operation,
		}

		b, err := json.MarshalIndent(item, "", "  ")
		if nil != err {
			exitwithstatus.Message("%s: argument: %d  marshal error: %s", program, i, err)
		}
		fmt.Printf("%s\n", b)

		if showFee {
			fee, err := config.FeeSchedule.CalculateFee(record)
			if nil != err {
				exitwithstatus.Message("%s: argument: %d  fee error: %s", program, i, err)
			}
			fmt.Printf("required fee: %d\n", fee)
		}
	}
}
