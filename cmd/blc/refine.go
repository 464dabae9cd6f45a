// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/blc-foundation/blc/cmd/blc/cli"
	"github.com/blc-foundation/blc/lib/blc"
	"github.com/blc-foundation/blc/lib/jamrpc"
	"github.com/blc-foundation/blc/lib/workpackage"
)

func refineCommand() *cli.Command {
	var (
		service  uint32
		gas      uint64
		endpoint string
	)
	return &cli.Command{
		Name:    "refine",
		Summary: "Submit a program for refinement via a JAM node",
		Usage:   "blc refine PROGRAM [flags]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("refine", pflag.ContinueOnError)
			fs.Uint32VarP(&service, "service", "s", 1, "target service id")
			fs.Uint64VarP(&gas, "gas", "g", workpackage.DefaultGas, "gas budget")
			fs.StringVarP(&endpoint, "rpc", "r", defaultNodeEndpoint, "JAM node endpoint")
			return fs
		},
		Examples: []cli.Example{
			{Description: "Refine church true on service 1", Command: `blc refine 'λx.λy.x'`},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one PROGRAM argument")
			}
			term, err := blc.ParseText(args[0])
			if err != nil {
				return fmt.Errorf("parsing program: %w", err)
			}
			programHex := "0x" + hex.EncodeToString(blc.Encode(term))

			fmt.Printf("submitting %s to service %d\n", programHex, service)

			client := jamrpc.NewClient(endpoint)
			result, err := client.Refine(context.Background(), service, programHex, gas)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, result)
		},
	}
}
