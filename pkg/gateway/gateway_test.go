// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package gateway

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/nexatech/outpost/pkg/core"
)

func TestNew(t *testing.T) {
	type args struct {
		config map[string]interface{}
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "default",
			args: args{
				config: map[string]interface{}{
					"base_url": "http://backend:3000",
				},
			},
		},
		{
			name: "full configuration",
			args: args{
				config: map[string]interface{}{
					"base_url":  "http://backend:3000",
					"base_path": "/api/v2",
					"timeout":   15,
					"headers": map[string]string{
						"X-Client": "outpost",
					},
				},
			},
		},
		{
			name: "error missing base url",
			args: args{
				config: map[string]interface{}{},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.args.config); (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// testGateway returns a gateway whose HTTP seams are driven by the given
// response and error.
func testGateway(status int, body string, doErr error) *Gateway {
	basePath := "/api"
	timeout := 0
	return &Gateway{
		config: &gatewayConfig{
			BaseURL:  "http://backend:3000",
			BasePath: &basePath,
			Timeout:  &timeout,
		},
		logger: slog.Default(),
		httpNewRequestWithContext: func(ctx context.Context, method string, url string,
			body io.Reader) (*http.Request, error) {
			return http.NewRequestWithContext(ctx, method, url, body)
		},
		httpClientDo: func(client *http.Client, req *http.Request) (*http.Response, error) {
			if doErr != nil {
				return nil, doErr
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewReader([]byte(body))),
			}, nil
		},
		ioReadAll: func(r io.Reader) ([]byte, error) {
			return io.ReadAll(r)
		},
	}
}

func TestGatewayCallErrors(t *testing.T) {
	type args struct {
		status int
		body   string
		doErr  error
	}
	tests := []struct {
		name        string
		args        args
		wantNetwork bool
		wantStatus  int
		wantMessage string
	}{
		{
			name: "transport failure",
			args: args{
				doErr: errors.New("connection refused"),
			},
			wantNetwork: true,
		},
		{
			name: "api error with message body",
			args: args{
				status: 500,
				body:   `{"message":"database exploded"}`,
			},
			wantStatus:  500,
			wantMessage: "database exploded",
		},
		{
			name: "api error with malformed body",
			args: args{
				status: 503,
				body:   `<html>bad gateway</html>`,
			},
			wantStatus:  503,
			wantMessage: "Service Unavailable",
		},
		{
			name: "not found annotated with path",
			args: args{
				status: 404,
				body:   ``,
			},
			wantStatus:  404,
			wantMessage: "Not Found (GET /api/orders/missing)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGateway(tt.args.status, tt.args.body, tt.args.doErr)
			err := g.Call(context.Background(), http.MethodGet, "/orders/missing",
				core.CallOptions{}, nil)
			if err == nil {
				t.Fatal("Call() expected error")
			}
			var netErr *core.NetworkError
			if got := errors.As(err, &netErr); got != tt.wantNetwork {
				t.Errorf("Call() network error = %v, want %v", got, tt.wantNetwork)
			}
			if tt.wantStatus != 0 {
				var apiErr *core.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("Call() error = %v, want APIError", err)
				}
				if apiErr.Status != tt.wantStatus {
					t.Errorf("Call() status = %d, want %d", apiErr.Status, tt.wantStatus)
				}
				if apiErr.Message != tt.wantMessage {
					t.Errorf("Call() message = %q, want %q", apiErr.Message, tt.wantMessage)
				}
			}
		})
	}
}

func TestGatewayCallDecode(t *testing.T) {
	g := testGateway(200, `[{"id":"u1","name":"Ana"}]`, nil)

	var out []map[string]interface{}
	if err := g.Call(context.Background(), http.MethodGet, "/users", core.CallOptions{},
		&out); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if len(out) != 1 || out[0]["id"] != "u1" {
		t.Errorf("Call() out = %v", out)
	}
}

func TestGatewayCallEmptyBody(t *testing.T) {
	g := testGateway(204, ``, nil)

	out := map[string]interface{}{"untouched": true}
	if err := g.Call(context.Background(), http.MethodDelete, "/users/u1",
		core.CallOptions{}, &out); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if _, ok := out["untouched"]; !ok {
		t.Error("Call() modified out on empty body")
	}
}

func TestGatewayCallRequest(t *testing.T) {
	basePath := "/api"
	timeout := 0
	var gotReq *http.Request
	var gotBody []byte
	g := &Gateway{
		config: &gatewayConfig{
			BaseURL:  "http://backend:3000",
			BasePath: &basePath,
			Timeout:  &timeout,
			Headers:  map[string]string{"X-Client": "outpost"},
		},
		logger:                    slog.Default(),
		httpNewRequestWithContext: gatewayHttpNewRequestWithContext,
		httpClientDo: func(client *http.Client, req *http.Request) (*http.Response, error) {
			gotReq = req
			if req.Body != nil {
				gotBody, _ = io.ReadAll(req.Body)
			}
			return &http.Response{
				StatusCode: 201,
				Body:       io.NopCloser(strings.NewReader(`{"id":"p1"}`)),
			}, nil
		},
		ioReadAll: gatewayIoReadAll,
	}

	var out map[string]interface{}
	err := g.Call(context.Background(), http.MethodPost, "/products",
		core.CallOptions{Body: map[string]string{"name": "SSD"}}, &out)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if gotReq.URL.String() != "http://backend:3000/api/products" {
		t.Errorf("Call() url = %q", gotReq.URL.String())
	}
	if gotReq.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Call() content type = %q", gotReq.Header.Get("Content-Type"))
	}
	if gotReq.Header.Get("X-Client") != "outpost" {
		t.Errorf("Call() header = %q", gotReq.Header.Get("X-Client"))
	}
	if !bytes.Contains(gotBody, []byte(`"name":"SSD"`)) {
		t.Errorf("Call() body = %s", gotBody)
	}
}
