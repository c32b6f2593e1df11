// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"context"
	"net/http"
	"time"

	"github.com/nexatech/outpost/pkg/core"
)

// ServerInfo returns the backend identity. No fallback: identifying a server
// that cannot be reached is meaningless.
func (c *Client) ServerInfo(ctx context.Context) (ServerInfo, error) {
	var info ServerInfo
	if err := c.gateway.Call(ctx, http.MethodGet, "/server-info", core.CallOptions{},
		&info); err != nil {
		return ServerInfo{}, err
	}
	return info, nil
}

// Health returns the backend health. No fallback, by the same rule as
// ServerInfo.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var health HealthStatus
	if err := c.gateway.Call(ctx, http.MethodGet, "/health", core.CallOptions{},
		&health); err != nil {
		return HealthStatus{}, err
	}
	return health, nil
}

// PushNotification appends a back-office notification. Notifications are
// mirror-only; the accessor keeps the most recent entries.
func (c *Client) PushNotification(ctx context.Context, level string, message string) (
	Notification, error) {
	return c.Notifications.Add(ctx, Notification{
		Level:   level,
		Message: message,
		Date:    time.Now().UTC(),
	})
}
