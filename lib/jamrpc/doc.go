// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

// Package jamrpc is a JSON-RPC 2.0 client for JAM node and BLC
// service endpoints, spoken over a WebSocket connection.
//
// Each [Client.Call] dials the endpoint, sends one request, reads
// frames until the matching response arrives, and closes the
// connection — one request per connection, matching how the node
// treats ad-hoc tooling clients. Server-side failures surface as a
// typed [*RPCError] carrying the server's code and message; transport
// failures are wrapped errors from the dial or the socket.
//
// Convenience methods cover the calls the BLC client makes:
// [Client.Eval] (blc_eval on a BLC service), [Client.Refine]
// (romio_refine on a node), [Client.GetStorage] and
// [Client.GetService] (state queries).
package jamrpc
