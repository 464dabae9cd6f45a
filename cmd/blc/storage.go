// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/blc-foundation/blc/cmd/blc/cli"
	"github.com/blc-foundation/blc/lib/jamrpc"
)

func storageCommand() *cli.Command {
	var endpoint string
	return &cli.Command{
		Name:    "storage",
		Summary: "Query a service storage key",
		Usage:   "blc storage SERVICE KEY [flags]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("storage", pflag.ContinueOnError)
			fs.StringVarP(&endpoint, "rpc", "r", defaultNodeEndpoint, "JAM node endpoint")
			return fs
		},
		Examples: []cli.Example{
			{Description: "Read key 0x00 of service 1", Command: "blc storage 1 0x00"},
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected SERVICE and KEY arguments")
			}
			service, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid service id %q: %w", args[0], err)
			}

			client := jamrpc.NewClient(endpoint)
			result, err := client.GetStorage(context.Background(), uint32(service), args[1])
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, result)
		},
	}
}
