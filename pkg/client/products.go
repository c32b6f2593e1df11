// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/mirror"
)

// SearchProducts returns the products matching the given query parameters.
// The query is evaluated by the backend; offline the full mirrored list is
// returned, unfiltered (the mirror holds last-known-good data, not a query
// engine).
func (c *Client) SearchProducts(ctx context.Context, query url.Values) ([]Product, error) {
	var products []Product
	err := c.gateway.Call(ctx, http.MethodGet, "/products", core.CallOptions{Query: query},
		&products)
	if err != nil {
		c.logger.Warn("Falling back to mirror", "resource", "product", "err", err)
		return mirror.Read(c.mirror, keyProducts, []Product{}), nil
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// FeaturedProducts returns the featured products. Offline the mirrored list
// is filtered locally.
func (c *Client) FeaturedProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.gateway.Call(ctx, http.MethodGet, "/products/featured", core.CallOptions{},
		&products)
	if err != nil {
		c.logger.Warn("Falling back to mirror", "resource", "product", "err", err)
		featured, err := mirror.Query[Product](c.mirror, keyProducts,
			`$[?(@.featured == true)]`)
		if err != nil {
			c.logger.Warn("Failed to filter mirrored products", "err", err)
			return []Product{}, nil
		}
		return featured, nil
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}
