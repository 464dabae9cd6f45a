// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package corevm

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/blc-foundation/blc/lib/compact"
	"github.com/blc-foundation/blc/lib/workpackage"
)

// Ref points at a blob held by a service: the owning service id plus
// the blob's hash.
type Ref struct {
	Service uint32
	Hash    workpackage.Hash
}

// EnvVar is one guest environment variable. A slice of these keeps
// the declaration order the guest observes, which a map would lose.
type EnvVar struct {
	Key   string
	Value string
}

// ExecEnv describes a CoreVM guest invocation. Construct it as a
// literal — all fields supplied up front — and encode it once.
type ExecEnv struct {
	// Program references the guest program blob to execute.
	Program Ref

	// RootDir optionally references the guest's root filesystem
	// image. Nil means no filesystem.
	RootDir *Ref

	// Args are the guest's command-line arguments, in order.
	Args []string

	// Env are the guest's environment variables, in order.
	Env []EnvVar
}

// Encode returns the canonical byte encoding: the program reference
// (service id little-endian, then hash), the optional root directory
// behind a presence byte, then the compact-prefixed argument and
// environment sequences with compact-length-prefixed UTF-8 contents.
func (e *ExecEnv) Encode() []byte {
	buf := binary.LittleEndian.AppendUint32(nil, e.Program.Service)
	buf = append(buf, e.Program.Hash[:]...)

	if e.RootDir == nil {
		buf = append(buf, 0x00)
	} else {
		buf = append(buf, 0x01)
		buf = binary.LittleEndian.AppendUint32(buf, e.RootDir.Service)
		buf = append(buf, e.RootDir.Hash[:]...)
	}

	buf = compact.Append(buf, uint64(len(e.Args)))
	for _, arg := range e.Args {
		buf = appendString(buf, arg)
	}

	buf = compact.Append(buf, uint64(len(e.Env)))
	for _, v := range e.Env {
		buf = appendString(buf, v.Key)
		buf = appendString(buf, v.Value)
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	buf = compact.Append(buf, uint64(len(s)))
	return append(buf, s...)
}

// BuildProgramPayload returns the ExecEnv encoding the BLC guest
// expects: the program reference plus the encoded term as a single
// hex argument. No root directory and no environment.
func BuildProgramPayload(service uint32, codeHash workpackage.Hash, program []byte) []byte {
	env := ExecEnv{
		Program: Ref{Service: service, Hash: codeHash},
		Args:    []string{hex.EncodeToString(program)},
	}
	return env.Encode()
}
