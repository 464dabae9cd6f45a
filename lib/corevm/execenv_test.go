// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package corevm

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/blc-foundation/blc/lib/workpackage"
)

func testHash(b byte) workpackage.Hash {
	var h workpackage.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

func TestExecEnvEncodeLength(t *testing.T) {
	env := ExecEnv{
		Program: Ref{Service: 1, Hash: testHash(0xAB)},
		Args:    []string{"test"},
	}
	got := env.Encode()
	// service (4) + hash (32) + absent root dir (1) + arg count (1)
	// + arg length (1) + "test" (4) + env count (1)
	if want := 4 + 32 + 1 + 1 + 1 + 4 + 1; len(got) != want {
		t.Errorf("encoded length = %d, want %d", len(got), want)
	}
}

func TestExecEnvEncodeLayout(t *testing.T) {
	root := Ref{Service: 9, Hash: testHash(0x11)}
	env := ExecEnv{
		Program: Ref{Service: 2, Hash: testHash(0xCD)},
		RootDir: &root,
		Args:    []string{"a", "bc"},
		Env:     []EnvVar{{Key: "K", Value: "VV"}},
	}
	got := env.Encode()

	want := binary.LittleEndian.AppendUint32(nil, 2)
	program := testHash(0xCD)
	want = append(want, program[:]...)
	want = append(want, 0x01)
	want = binary.LittleEndian.AppendUint32(want, 9)
	rootHash := testHash(0x11)
	want = append(want, rootHash[:]...)
	want = append(want, 0x08)           // arg count 2
	want = append(want, 0x04, 'a')      // "a"
	want = append(want, 0x08, 'b', 'c') // "bc"
	want = append(want, 0x04)           // env count 1
	want = append(want, 0x04, 'K')      // key
	want = append(want, 0x08, 'V', 'V') // value

	if !bytes.Equal(got, want) {
		t.Errorf("exec env encoding mismatch:\ngot  %x\nwant %x", got, want)
	}
}

func TestBuildProgramPayload(t *testing.T) {
	payload := BuildProgramPayload(1, testHash(0xAB), []byte{0x20})

	// The program arrives as one hex argument: "20".
	want := ExecEnv{
		Program: Ref{Service: 1, Hash: testHash(0xAB)},
		Args:    []string{"20"},
	}
	if !bytes.Equal(payload, want.Encode()) {
		t.Errorf("payload = %x, want %x", payload, want.Encode())
	}
}
