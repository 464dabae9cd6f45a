// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

// Package corevm encodes CoreVM execution-environment payloads.
//
// A CoreVM service's refine input is an [ExecEnv]: the program to run
// (a service id plus code hash), an optional root-directory reference,
// and the argument and environment lists handed to the guest. The BLC
// CoreVM guest receives the hex-encoded program as its first argument;
// [BuildProgramPayload] produces exactly that shape.
//
// The wire format uses the same little-endian fixed fields and compact
// length prefixes as the work-package encoding (lib/compact), with a
// one-byte presence tag (0x00 absent, 0x01 present) for the optional
// root directory.
package corevm
