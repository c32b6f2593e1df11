// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/mirror"
)

func TestSessionInitClearsStalePrincipal(t *testing.T) {
	gw := &stubGateway{
		handler: func(method string, path string, opts core.CallOptions, out any) error {
			return respond(out, []User{{ID: "u1", Email: "alice@example.com"}})
		},
	}
	c := newTestClient(t, gw)
	c.Session().restore(User{ID: "u9", Email: "gone@example.com"})

	require.NoError(t, c.Session().Init(context.Background()))
	assert.False(t, c.Session().IsAuthenticated())
}

func TestSessionInitRefreshesLivePrincipal(t *testing.T) {
	gw := &stubGateway{
		handler: func(method string, path string, opts core.CallOptions, out any) error {
			return respond(out, []User{
				{ID: "u1", Email: "alice@example.com", Name: "Alice", Password: "secret"},
			})
		},
	}
	c := newTestClient(t, gw)
	c.Session().restore(User{ID: "u1", Email: "alice@example.com"})

	require.NoError(t, c.Session().Init(context.Background()))

	user, ok := c.Session().CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Alice", user.Name)
	assert.Empty(t, user.Password, "password must never reach the session")
}

func TestSessionInitKeepsSessionWhenOffline(t *testing.T) {
	c := newTestClient(t, &stubGateway{failing: true})
	c.Session().restore(User{ID: "u1", Email: "alice@example.com"})

	require.NoError(t, c.Session().Init(context.Background()))
	assert.True(t, c.Session().IsAuthenticated())
}

func TestLoginOnline(t *testing.T) {
	gw := &stubGateway{
		handler: func(method string, path string, opts core.CallOptions, out any) error {
			creds, ok := opts.Body.(Credentials)
			if !ok || creds.Password != "secret" {
				return &core.APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
			}
			return respond(out, User{ID: "u1", Email: creds.Email, Password: "secret"})
		},
	}
	c := newTestClient(t, gw)

	user, err := c.Session().Login(context.Background(),
		Credentials{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Empty(t, user.Password)
	assert.True(t, c.Session().IsAuthenticated())
}

func TestLoginRejectedOnline(t *testing.T) {
	gw := &stubGateway{
		handler: func(method string, path string, opts core.CallOptions, out any) error {
			return &core.APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
		},
	}
	c := newTestClient(t, gw)

	// Seed a mirrored user that would match: an explicit rejection from the
	// backend must not fall through to the mirror.
	require.NoError(t, mirror.Write(c.mirror, keyUsers, []User{
		{ID: "u1", Email: "alice@example.com", Password: "secret"},
	}))

	_, err := c.Login(context.Background(),
		Credentials{Email: "alice@example.com", Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDegraded(t *testing.T) {
	c := newTestClient(t, &stubGateway{failing: true})
	ctx := context.Background()

	require.NoError(t, mirror.Write(c.mirror, keyUsers, []User{
		{ID: "u1", Email: "alice@example.com", Password: "secret", Name: "Alice"},
		{ID: "u2", Email: "bob@example.com", Password: "hunter2"},
	}))

	user, err := c.Login(ctx, Credentials{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Empty(t, user.Password)

	_, err = c.Login(ctx, Credentials{Email: "alice@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = c.Login(ctx, Credentials{Email: "carol@example.com", Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	c := newTestClient(t, &stubGateway{failing: true})
	c.Session().restore(User{ID: "u1"})

	c.Session().Logout()
	assert.False(t, c.Session().IsAuthenticated())
}

func TestHasPermission(t *testing.T) {
	c := newTestClient(t, &stubGateway{failing: true})
	session := c.Session()

	assert.False(t, session.HasPermission("orders:write"),
		"anonymous sessions hold no permissions")

	session.restore(User{ID: "u1", Role: "staff"})
	assert.True(t, session.HasPermission("orders:write"),
		"without a predicate any authenticated principal is allowed")

	session.SetPermissionCheck(func(user User, permission string) bool {
		return user.Role == "admin"
	})
	assert.False(t, session.HasPermission("orders:write"))

	session.restore(User{ID: "u2", Role: "admin"})
	assert.True(t, session.HasPermission("orders:write"))
}
