// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the blc
// binary: named commands with pflag flag sets, nested subcommands,
// and uniform help output. It exists so every subcommand handles
// --help, unknown names, and flag errors the same way without each
// one reimplementing the plumbing.
package cli
