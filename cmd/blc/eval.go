// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/blc-foundation/blc/cmd/blc/cli"
	"github.com/blc-foundation/blc/lib/blc"
	"github.com/blc-foundation/blc/lib/jamrpc"
)

func evalCommand() *cli.Command {
	var (
		steps    uint64
		endpoint string
	)
	return &cli.Command{
		Name:    "eval",
		Summary: "Evaluate a program on a BLC service",
		Usage:   "blc eval PROGRAM [flags]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("eval", pflag.ContinueOnError)
			fs.Uint64VarP(&steps, "steps", "s", 10000, "maximum reduction steps")
			fs.StringVarP(&endpoint, "rpc", "r", defaultEvalEndpoint, "BLC service endpoint")
			return fs
		},
		Examples: []cli.Example{
			{Description: "Evaluate identity applied to identity", Command: `blc eval '(\.0 \.0)'`},
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

			fmt.Printf("evaluating %s\n", programHex)
			fmt.Printf("term: %s\n", term)

			client := jamrpc.NewClient(endpoint)
			result, err := client.Eval(context.Background(), programHex, steps)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, result)
		},
	}
}

// printJSON pretty-prints a raw JSON-RPC result document.
func printJSON(w io.Writer, raw json.RawMessage) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Not a JSON document we can re-indent (e.g. bare null);
		// print it as received.
		fmt.Fprintf(w, "%s\n", raw)
		return nil
	}
	fmt.Fprintf(w, "%s\n", pretty.String())
	return nil
}
