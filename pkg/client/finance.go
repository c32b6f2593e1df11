// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"context"
	"net/http"

	"github.com/nexatech/outpost/pkg/core"
)

// Forecast returns the financial forecast. The forecast is computed by the
// backend from data the client never holds, so it has no mirror entry and a
// gateway failure surfaces to the caller.
func (c *Client) Forecast(ctx context.Context) (Forecast, error) {
	var forecast Forecast
	if err := c.gateway.Call(ctx, http.MethodGet, "/financials/forecast",
		core.CallOptions{}, &forecast); err != nil {
		return Forecast{}, err
	}
	return forecast, nil
}
