// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package jamrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Eval submits a program to a BLC service's direct evaluator. The
// program is the 0x-prefixed hex of an encoded term; maxSteps bounds
// the reduction. Returns the evaluator's result document verbatim.
func (c *Client) Eval(ctx context.Context, programHex string, maxSteps uint64) (json.RawMessage, error) {
	return c.Call(ctx, "blc_eval", []any{programHex, maxSteps})
}

// Refine submits a program for refinement by a CoreVM service on a
// JAM node. The method is the node's direct-refine entry point, not
// the authorized work-package path.
func (c *Client) Refine(ctx context.Context, serviceID uint32, programHex string, gas uint64) (json.RawMessage, error) {
	return c.Call(ctx, "romio_refine", []any{serviceID, programHex, gas})
}

// GetStorage reads one value from a service's storage. The key is
// hex, with or without the 0x prefix; the result is the node's raw
// response (null when the key is absent).
func (c *Client) GetStorage(ctx context.Context, serviceID uint32, keyHex string) (json.RawMessage, error) {
	key := strings.TrimPrefix(keyHex, "0x")
	params := map[string]any{
		"service_id": serviceID,
		"key":        "0x" + key,
	}
	return c.Call(ctx, "jam_getStorage", params)
}

// GetService fetches the on-chain record for a service. Returns
// (nil, nil) when the service does not exist.
func (c *Client) GetService(ctx context.Context, serviceID uint32) (*ServiceInfo, error) {
	result, err := c.Call(ctx, "jam_getService", []any{serviceID})
	if err != nil {
		return nil, err
	}
	if len(result) == 0 || string(result) == "null" {
		return nil, nil
	}
	var info ServiceInfo
	if err := json.Unmarshal(result, &info); err != nil {
		return nil, fmt.Errorf("decoding service info: %w", err)
	}
	return &info, nil
}
