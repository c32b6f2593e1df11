// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

import (
	"context"
	"net/url"
)

// Gateway is the interface of the remote gateway component.
//
// The gateway wraps every HTTP call to the backend and normalizes its three
// failure modes: transport failure, HTTP failure and empty response body.
type Gateway interface {
	// Call issues a request against the backend API. The path is relative to
	// the configured API root. On a 2xx response with a non-empty body, the
	// body is decoded as JSON into out; an empty body leaves out untouched.
	// out may be nil when no response body is expected.
	Call(ctx context.Context, method string, path string, opts CallOptions, out any) error
}

// CallOptions implements the per-call request options.
type CallOptions struct {
	// Query is appended to the request query string.
	Query url.Values
	// Headers are set on the request.
	Headers map[string]string
	// Body is encoded as the JSON request body if not nil.
	Body any
}
