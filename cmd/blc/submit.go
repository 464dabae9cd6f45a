// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/blc-foundation/blc/cmd/blc/cli"
	"github.com/blc-foundation/blc/lib/blc"
	"github.com/blc-foundation/blc/lib/workpackage"
)

func submitCommand() *cli.Command {
	var (
		service     uint32
		codeHashHex string
		gas         uint64
	)
	return &cli.Command{
		Name:    "submit",
		Summary: "Build a work package for a program",
		Usage:   "blc submit PROGRAM --code-hash HASH [flags]",
		Description: `Encode a program, wrap it in a single-item bootstrap work package,
and print the package's content hash together with its encoded bytes
in hex and base64 — the two shapes submission interfaces accept.`,
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("submit", pflag.ContinueOnError)
			fs.Uint32VarP(&service, "service", "s", 1, "target service id")
			fs.StringVarP(&codeHashHex, "code-hash", "c", "", "32-byte service code hash (hex, required)")
			fs.Uint64VarP(&gas, "gas", "g", workpackage.DefaultGas, "gas budget for both phases")
			return fs
		},
		Examples: []cli.Example{
			{
				Description: "Package the identity combinator for service 1",
				Command:     "blc submit 0x20 --code-hash 0xabc…def",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one PROGRAM argument")
			}
			if codeHashHex == "" {
				return fmt.Errorf("--code-hash is required")
			}
			return buildAndPrintPackage(os.Stdout, args[0], service, codeHashHex, gas)
		},
	}
}

func buildAndPrintPackage(w io.Writer, program string, service uint32, codeHashHex string, gas uint64) error {
	term, err := blc.ParseText(program)
	if err != nil {
		return fmt.Errorf("parsing program: %w", err)
	}

	codeHash, err := workpackage.ParseHash(codeHashHex)
	if err != nil {
		return fmt.Errorf("parsing --code-hash: %w", err)
	}
	cfg, err := workpackage.NewBuilderConfig(service, codeHash[:])
	if err != nil {
		return err
	}
	cfg.RefineGas = gas
	cfg.AccumulateGas = gas

	pkg := cfg.Build(blc.Encode(term))
	encoded := pkg.Encode()

	fmt.Fprintf(w, "term:    %s\n", term)
	fmt.Fprintf(w, "hash:    %s\n", workpackage.FormatHash(pkg.ContentHash()))
	fmt.Fprintf(w, "size:    %d bytes\n", len(encoded))
	fmt.Fprintf(w, "hex:     0x%s\n", hex.EncodeToString(encoded))
	fmt.Fprintf(w, "base64:  %s\n", base64.StdEncoding.EncodeToString(encoded))
	return nil
}
