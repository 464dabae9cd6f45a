// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

// The blc command is a client for binary lambda calculus programs on
// JAM CoreVM services: it parses and encodes terms locally, builds
// work packages, and submits programs to a node or BLC service over
// JSON-RPC.
package main
