// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package jamrpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// newTestEndpoint starts a WebSocket server that feeds each decoded
// request to handler and writes back every frame handler returns, in
// order. Returns the ws:// URL.
func newTestEndpoint(t *testing.T, handler func(req map[string]any) []any) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var req map[string]any
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			for _, frame := range handler(req) {
				if err := conn.WriteJSON(frame); err != nil {
					return
				}
			}
		}
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestCallReturnsResult(t *testing.T) {
	endpoint := newTestEndpoint(t, func(req map[string]any) []any {
		if req["jsonrpc"] != "2.0" {
			t.Errorf("request jsonrpc = %v, want 2.0", req["jsonrpc"])
		}
		if req["method"] != "blc_eval" {
			t.Errorf("request method = %v, want blc_eval", req["method"])
		}
		return []any{map[string]any{
			"jsonrpc": "2.0",
			"id":      req["id"],
			"result":  map[string]any{"normal_form": "0x20"},
		}}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewClient(endpoint)
	result, err := client.Eval(ctx, "0x20", 10000)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}

	var decoded struct {
		NormalForm string `json:"normal_form"`
	}
	if err := json.Unmarshal(result, &decoded); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if decoded.NormalForm != "0x20" {
		t.Errorf("normal_form = %q, want %q", decoded.NormalForm, "0x20")
	}
}

func TestCallSurfacesServerError(t *testing.T) {
	endpoint := newTestEndpoint(t, func(req map[string]any) []any {
		return []any{map[string]any{
			"jsonrpc": "2.0",
			"id":      req["id"],
			"error":   map[string]any{"code": CodeMethodNotFound, "message": "no such method"},
		}}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewClient(endpoint)
	_, err := client.Call(ctx, "bogus_method", nil)

	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("error = %v (%T), want *RPCError", err, err)
	}
	if rpcErr.Code != CodeMethodNotFound {
		t.Errorf("Code = %d, want %d", rpcErr.Code, CodeMethodNotFound)
	}
	if rpcErr.Message != "no such method" {
		t.Errorf("Message = %q, want %q", rpcErr.Message, "no such method")
	}
}

func TestCallSkipsUnrelatedFrames(t *testing.T) {
	endpoint := newTestEndpoint(t, func(req map[string]any) []any {
		return []any{
			// A subscription-style notification with no matching id
			// arrives first; the client must wait for its response.
			map[string]any{"jsonrpc": "2.0", "method": "chain_newHead", "params": []any{}},
			map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": "ok"},
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewClient(endpoint)
	result, err := client.Call(ctx, "anything", nil)
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if string(result) != `"ok"` {
		t.Errorf("result = %s, want \"ok\"", result)
	}
}

func TestRefineSendsPositionalParams(t *testing.T) {
	var gotParams []any
	endpoint := newTestEndpoint(t, func(req map[string]any) []any {
		gotParams, _ = req["params"].([]any)
		return []any{map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": nil}}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewClient(endpoint)
	if _, err := client.Refine(ctx, 7, "0x20", 500); err != nil {
		t.Fatalf("Refine error: %v", err)
	}

	if len(gotParams) != 3 {
		t.Fatalf("params has %d entries, want 3", len(gotParams))
	}
	// JSON numbers decode as float64 on the test server side.
	if gotParams[0] != float64(7) || gotParams[1] != "0x20" || gotParams[2] != float64(500) {
		t.Errorf("params = %v, want [7 0x20 500]", gotParams)
	}
}

func TestGetStorageNormalizesKey(t *testing.T) {
	var gotKey string
	endpoint := newTestEndpoint(t, func(req map[string]any) []any {
		if params, ok := req["params"].(map[string]any); ok {
			gotKey, _ = params["key"].(string)
		}
		return []any{map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": nil}}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewClient(endpoint)
	for _, key := range []string{"abcd", "0xabcd"} {
		if _, err := client.GetStorage(ctx, 1, key); err != nil {
			t.Fatalf("GetStorage(%q) error: %v", key, err)
		}
		if gotKey != "0xabcd" {
			t.Errorf("server saw key %q for input %q, want 0xabcd", gotKey, key)
		}
	}
}

func TestGetServiceAbsent(t *testing.T) {
	endpoint := newTestEndpoint(t, func(req map[string]any) []any {
		return []any{map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": nil}}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewClient(endpoint)
	info, err := client.GetService(ctx, 99)
	if err != nil {
		t.Fatalf("GetService error: %v", err)
	}
	if info != nil {
		t.Errorf("GetService for absent service = %+v, want nil", info)
	}
}

func TestGetServicePresent(t *testing.T) {
	endpoint := newTestEndpoint(t, func(req map[string]any) []any {
		return []any{map[string]any{
			"jsonrpc": "2.0",
			"id":      req["id"],
			"result":  map[string]any{"code_hash": "0xff", "balance": 1234},
		}}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewClient(endpoint)
	info, err := client.GetService(ctx, 1)
	if err != nil {
		t.Fatalf("GetService error: %v", err)
	}
	if info == nil {
		t.Fatal("GetService = nil, want service info")
	}
	if info.CodeHash != "0xff" || info.Balance != 1234 {
		t.Errorf("info = %+v, want code_hash 0xff balance 1234", info)
	}
}

func TestCallDialFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client := NewClient("ws://127.0.0.1:1") // nothing listens here
	_, err := client.Call(ctx, "anything", nil)
	if err == nil {
		t.Fatal("Call against a dead endpoint succeeded")
	}
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		t.Error("transport failure reported as *RPCError")
	}
}
