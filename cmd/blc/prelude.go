// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/blc-foundation/blc/cmd/blc/cli"
	"github.com/blc-foundation/blc/lib/blc"
)

// preludeTermByName resolves the well-known term names and their
// aliases accepted by "blc prelude".
func preludeTermByName(name string) (blc.Term, bool) {
	switch name {
	case "identity", "id", "i":
		return blc.Identity(), true
	case "true", "t", "k":
		return blc.ChurchTrue(), true
	case "false", "f":
		return blc.ChurchFalse(), true
	case "zero", "0":
		return blc.ChurchZero(), true
	case "one", "1":
		return blc.ChurchOne(), true
	case "s":
		return blc.SCombinator(), true
	default:
		return nil, false
	}
}

func preludeCommand() *cli.Command {
	return &cli.Command{
		Name:    "prelude",
		Summary: "Show a well-known term",
		Usage:   "blc prelude NAME",
		Description: `Print one of the well-known terms by name.

Available names: identity, true, false, zero, one, s, k, i.`,
		Examples: []cli.Example{
			{Description: "Show the S combinator", Command: "blc prelude s"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one NAME argument")
			}
			term, ok := preludeTermByName(args[0])
			if !ok {
				return fmt.Errorf("unknown term %q (available: identity, true, false, zero, one, s, k, i)", args[0])
			}
			printTerm(os.Stdout, term)
			return nil
		},
	}
}
