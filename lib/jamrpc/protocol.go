// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package jamrpc

import (
	"encoding/json"
	"fmt"
)

// JSON-RPC 2.0 standard error codes a server may return. Application
// errors use server-defined codes outside this range.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// request is a JSON-RPC 2.0 request. The client always sends an id,
// never notifications: every call expects a response.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// response is a JSON-RPC 2.0 response. Exactly one of Result or
// Error is set.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is a JSON-RPC 2.0 error object returned by the server. It
// is the error type [Client.Call] yields when the call reached the
// server and the server rejected it; use errors.As to distinguish it
// from transport failures.
type RPCError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// ServiceInfo is the on-chain record for a service, as returned by
// the node's service query.
type ServiceInfo struct {
	// CodeHash is the hex-encoded hash of the service's code blob.
	CodeHash string `json:"code_hash"`

	// Balance is the service's token balance.
	Balance uint64 `json:"balance"`
}
