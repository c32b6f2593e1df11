// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package gateway implements the remote gateway to the backend API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/log"
)

// Gateway implements the remote gateway.
type Gateway struct {
	config                    *gatewayConfig
	logger                    *slog.Logger
	client                    http.Client
	httpNewRequestWithContext func(ctx context.Context, method string, url string, body io.Reader) (*http.Request, error)
	httpClientDo              func(client *http.Client, req *http.Request) (*http.Response, error)
	ioReadAll                 func(r io.Reader) ([]byte, error)
}

// gatewayConfig implements the gateway configuration.
type gatewayConfig struct {
	BaseURL             string `mapstructure:"base_url"`
	BasePath            *string
	Timeout             *int
	MaxConnsPerHost     *int
	MaxIdleConns        *int
	MaxIdleConnsPerHost *int
	IdleConnTimeout     *int
	Headers             map[string]string
	Params              map[string]string
}

const (
	gatewayLogger string = "gateway"

	// The backend contract carries no request deadline; a hung request
	// suspends its caller. The timeout option exists for deployments that
	// want one, the default preserves the observed behavior.
	gatewayConfigDefaultTimeout             int    = 0
	gatewayConfigDefaultBasePath            string = "/api"
	gatewayConfigDefaultMaxConnsPerHost     int    = 100
	gatewayConfigDefaultMaxIdleConns        int    = 100
	gatewayConfigDefaultMaxIdleConnsPerHost int    = 100
	gatewayConfigDefaultIdleConnTimeout     int    = 60
)

// gatewayHttpNewRequestWithContext redirects to http.NewRequestWithContext.
func gatewayHttpNewRequestWithContext(ctx context.Context, method string, url string,
	body io.Reader) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, url, body)
}

// gatewayHttpClientDo redirects to http.Client.Do.
func gatewayHttpClientDo(client *http.Client, req *http.Request) (*http.Response, error) {
	return client.Do(req)
}

// gatewayIoReadAll redirects to io.ReadAll.
func gatewayIoReadAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// New creates a new gateway with the given configuration.
func New(config map[string]interface{}) (*Gateway, error) {
	g := Gateway{
		logger:                    slog.New(log.NewHandler(os.Stderr, gatewayLogger, nil)),
		httpNewRequestWithContext: gatewayHttpNewRequestWithContext,
		httpClientDo:              gatewayHttpClientDo,
		ioReadAll:                 gatewayIoReadAll,
	}

	var c gatewayConfig
	if err := mapstructure.Decode(config, &c); err != nil {
		return nil, errors.New("parse config")
	}
	g.config = &c

	if g.config.BaseURL == "" {
		return nil, errors.New("missing option 'base_url'")
	}
	if g.config.BasePath == nil {
		defaultValue := gatewayConfigDefaultBasePath
		g.config.BasePath = &defaultValue
	}
	if g.config.Timeout == nil {
		defaultValue := gatewayConfigDefaultTimeout
		g.config.Timeout = &defaultValue
	}
	if g.config.MaxConnsPerHost == nil {
		defaultValue := gatewayConfigDefaultMaxConnsPerHost
		g.config.MaxConnsPerHost = &defaultValue
	}
	if g.config.MaxIdleConns == nil {
		defaultValue := gatewayConfigDefaultMaxIdleConns
		g.config.MaxIdleConns = &defaultValue
	}
	if g.config.MaxIdleConnsPerHost == nil {
		defaultValue := gatewayConfigDefaultMaxIdleConnsPerHost
		g.config.MaxIdleConnsPerHost = &defaultValue
	}
	if g.config.IdleConnTimeout == nil {
		defaultValue := gatewayConfigDefaultIdleConnTimeout
		g.config.IdleConnTimeout = &defaultValue
	}

	transport := http.Transport{
		Proxy: http.ProxyFromEnvironment,
		Dial: (&net.Dialer{
			Timeout: time.Duration(*g.config.Timeout) * time.Second,
		}).Dial,
		ForceAttemptHTTP2:   true,
		MaxConnsPerHost:     *g.config.MaxConnsPerHost,
		MaxIdleConns:        *g.config.MaxIdleConns,
		MaxIdleConnsPerHost: *g.config.MaxIdleConnsPerHost,
		IdleConnTimeout:     time.Duration(*g.config.IdleConnTimeout) * time.Second,
	}

	g.client = http.Client{
		Transport: &transport,
		Timeout:   time.Duration(*g.config.Timeout) * time.Second,
	}

	return &g, nil
}

// errorBody implements the JSON error body of the backend.
type errorBody struct {
	Message string `json:"message"`
}

// Call issues a request against the backend API.
func (g *Gateway) Call(ctx context.Context, method string, path string, opts core.CallOptions,
	out any) error {
	var reqBody io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return errors.New("encode request body")
		}
		reqBody = bytes.NewReader(data)
	}

	url := strings.TrimSuffix(g.config.BaseURL, "/") + *g.config.BasePath + path
	req, err := g.httpNewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		g.logger.Error("Failed to create request", "method", method, "path", path, "err", err)
		return errors.New("create request")
	}

	query := req.URL.Query()
	for key, value := range g.config.Params {
		query.Add(key, value)
	}
	for key, values := range opts.Query {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range g.config.Headers {
		req.Header.Set(key, value)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	response, err := g.httpClientDo(&g.client, req)
	if response != nil {
		defer response.Body.Close()
	}
	if err != nil {
		g.logger.Warn("Failed to send request", "method", method, "path", path, "err", err)
		return &core.NetworkError{Err: err}
	}

	responseBody, err := g.ioReadAll(response.Body)
	if err != nil {
		g.logger.Warn("Failed to read response", "method", method, "path", path, "err", err)
		return &core.NetworkError{Err: err}
	}

	g.logger.Debug("Call", "method", method, "path", path, "code", response.StatusCode)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		message := http.StatusText(response.StatusCode)
		var body errorBody
		if err := json.Unmarshal(responseBody, &body); err == nil && body.Message != "" {
			message = body.Message
		}
		if response.StatusCode == http.StatusNotFound {
			message += " (" + method + " " + *g.config.BasePath + path + ")"
		}
		return &core.APIError{
			Status:  response.StatusCode,
			Message: message,
			Path:    path,
		}
	}

	if len(responseBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		g.logger.Warn("Failed to decode response", "method", method, "path", path, "err", err)
		return errors.New("decode response")
	}

	return nil
}

var _ core.Gateway = (*Gateway)(nil)
