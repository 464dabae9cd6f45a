// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/blc-foundation/blc/cmd/blc/cli"
	"github.com/blc-foundation/blc/lib/blc"
)

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:    "encode",
		Summary: "Encode a term to hex",
		Usage:   "blc encode INPUT",
		Examples: []cli.Example{
			{Description: "Encode the identity combinator", Command: `blc encode '\.0'`},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one INPUT argument")
			}
			term, err := blc.ParseText(args[0])
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			fmt.Fprintf(os.Stdout, "0x%s\n", hex.EncodeToString(blc.Encode(term)))
			return nil
		},
	}
}
