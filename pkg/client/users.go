// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/nexatech/outpost/pkg/core"
)

// ErrInvalidCredentials rejects a login with an unknown email or a wrong
// password. The message is suitable for direct display.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Login verifies the credentials against the backend and returns the
// principal with the password stripped.
//
// When the gateway fails, the check degrades to a comparison against the
// mirrored user list. Comparing mirrored credentials is weaker than
// server-side verification; the reduced trust in offline mode is deliberate,
// it is what keeps login working against last-known-good user data during an
// outage.
func (c *Client) Login(ctx context.Context, creds Credentials) (User, error) {
	var user User
	err := c.gateway.Call(ctx, http.MethodPost, "/login", core.CallOptions{Body: creds},
		&user)
	if err == nil {
		user.Password = ""
		return user, nil
	}

	var apiErr *core.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		return User{}, ErrInvalidCredentials
	}
	c.logger.Warn("Degraded login check against mirrored users", "err", err)

	users, err := c.Users.List(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email != creds.Email {
			continue
		}
		if u.Password != creds.Password {
			break
		}
		u.Password = ""
		return u, nil
	}
	return User{}, ErrInvalidCredentials
}
