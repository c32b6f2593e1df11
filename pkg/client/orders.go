// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/mirror"
)

// OrdersByCustomer returns the orders of one customer. Offline the mirrored
// order list is filtered locally.
func (c *Client) OrdersByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	var orders []Order
	err := c.gateway.Call(ctx, http.MethodGet, "/orders/customer/"+customerID,
		core.CallOptions{}, &orders)
	if err != nil {
		c.logger.Warn("Falling back to mirror", "resource", "order", "err", err)
		matches, err := mirror.Query[Order](c.mirror, keyOrders,
			fmt.Sprintf(`$[?(@.customerId == %q)]`, customerID))
		if err != nil {
			c.logger.Warn("Failed to filter mirrored orders", "err", err)
			return []Order{}, nil
		}
		return matches, nil
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to the given status. Offline the status is
// merged into the mirrored order; an unknown order surfaces a not-found
// error.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status string) (Order, error) {
	var order Order
	err := c.gateway.Call(ctx, http.MethodPatch, "/orders/"+id+"/status",
		core.CallOptions{Body: map[string]string{"status": status}}, &order)
	if err == nil {
		return order, nil
	}
	c.logger.Warn("Falling back to mirror", "resource", "order", "id", id, "err", err)

	return c.Orders.updateLocal(id, map[string]interface{}{"status": status})
}
