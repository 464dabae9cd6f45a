// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/blc-foundation/blc/cmd/blc/cli"
	"github.com/blc-foundation/blc/lib/blc"
)

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:    "parse",
		Summary: "Parse a term from hex or lambda notation",
		Usage:   "blc parse INPUT",
		Examples: []cli.Example{
			{Description: "Parse from hex", Command: "blc parse 0x20"},
			{Description: "Parse from lambda notation", Command: `blc parse '\.0'`},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one INPUT argument")
			}
			term, err := blc.ParseText(args[0])
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			printTerm(os.Stdout, term)
			return nil
		},
	}
}

// printTerm writes the three standard views of a term: its lambda
// notation, its hex encoding, and the exact bit layout.
func printTerm(w io.Writer, term blc.Term) {
	encoded := blc.Encode(term)
	fmt.Fprintf(w, "term: %s\n", term)
	fmt.Fprintf(w, "hex:  0x%s\n", hex.EncodeToString(encoded))
	fmt.Fprintf(w, "bits: %s\n", blc.FormatBits(encoded))
}
