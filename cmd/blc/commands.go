// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/blc-foundation/blc/cmd/blc/cli"

// Default endpoints. The BLC service evaluator and the JAM node
// listen on adjacent ports in the standard testnet layout.
const (
	defaultNodeEndpoint = "ws://localhost:19800"
	defaultEvalEndpoint = "ws://localhost:19801"
)

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "blc",
		Summary: "Binary lambda calculus client for JAM CoreVM",
		Description: `Client for binary lambda calculus (BLC) programs on JAM CoreVM
services.

Programs are written either as hex ("0x20") or in lambda notation
("λ.0" or "\.0", with bare digits as de Bruijn indices). The client
encodes them to the bit-exact BLC wire format, wraps them in work
packages, and talks JSON-RPC over WebSocket to a node or a BLC
service evaluator.`,
		Subcommands: []*cli.Command{
			parseCommand(),
			encodeCommand(),
			preludeCommand(),
			submitCommand(),
			evalCommand(),
			refineCommand(),
			storageCommand(),
		},
	}
}
