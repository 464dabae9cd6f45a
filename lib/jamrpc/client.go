// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package jamrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// dialTimeout bounds the connect phase when the caller's context has
// no deadline of its own.
const dialTimeout = 10 * time.Second

// responseTimeout bounds the wait for the server's response after the
// request is written, again only when the context has no deadline.
const responseTimeout = 30 * time.Second

// Client issues JSON-RPC calls to a single WebSocket endpoint. The
// zero value is not usable; create one with [NewClient]. A Client is
// safe for concurrent use — each call owns its own connection.
type Client struct {
	endpoint string
	logger   *slog.Logger
	nextID   atomic.Uint64
}

// NewClient returns a client for the given ws:// or wss:// endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		logger:   slog.Default(),
	}
}

// Call performs one JSON-RPC request: dial, send, wait for the
// response with the matching id, close. Frames for other ids
// (subscription notifications, stale responses) are skipped. A
// server-side error is returned as a [*RPCError]; everything else is
// a transport failure wrapped with the method name.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := c.nextID.Add(1)
	c.logger.Debug("rpc call", "endpoint", c.endpoint, "method", method, "id", id)

	dialCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", c.endpoint, err)
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(responseTimeout)
	}
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return nil, fmt.Errorf("setting write deadline: %w", err)
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("setting read deadline: %w", err)
	}

	req := request{JSONRPC: "2.0", ID: id, Method: method, Params: params}
	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("sending %s request: %w", method, err)
	}

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("reading %s response: %w", method, err)
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var resp response
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, fmt.Errorf("decoding %s response: %w", method, err)
		}
		if resp.ID != id {
			// Not ours: a notification or an out-of-order frame.
			continue
		}
		if resp.Error != nil {
			return nil, resp.Error
		}
		return resp.Result, nil
	}
}
