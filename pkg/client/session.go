// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/mirror"
)

// Session tracks the authenticated principal. The session lives next to the
// mirror, not in it: mirror entries are shared by every client of the same
// profile, the session belongs to one client instance only.
type Session struct {
	client        *Client
	mu            sync.RWMutex
	user          *User
	hasPermission func(user User, permission string) bool
}

// newSession creates a new session.
func newSession(client *Client) *Session {
	return &Session{
		client: client,
	}
}

// Init restores the session. The user list is fetched to verify that the
// stored principal still exists: a stale principal is cleared, a live one is
// restored. If the fetch itself fails the stored session is kept; during an
// outage availability wins over re-validation.
func (s *Session) Init(ctx context.Context) error {
	var users []User
	err := s.client.gateway.Call(ctx, http.MethodGet, "/users", core.CallOptions{}, &users)
	if err != nil {
		s.client.logger.Warn("Keeping stored session, user list unavailable", "err", err)
		return nil
	}
	if err := mirror.Write(s.client.mirror, keyUsers, users); err != nil {
		s.client.logger.Warn("Failed to cache users", "err", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	for _, u := range users {
		if u.ID == s.user.ID {
			u.Password = ""
			s.user = &u
			return nil
		}
	}
	s.client.logger.Info("Clearing stale session", "user", s.user.ID)
	s.user = nil
	return nil
}

// Login authenticates the credentials and stores the principal in the
// session.
func (s *Session) Login(ctx context.Context, creds Credentials) (User, error) {
	user, err := s.client.Login(ctx, creds)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	return user, nil
}

// Logout clears the session.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// CurrentUser returns the authenticated principal, if any.
func (s *Session) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a principal is authenticated.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// SetPermissionCheck sets the permission predicate consulted by
// HasPermission. The permission rules themselves are owned by the host
// application.
func (s *Session) SetPermissionCheck(check func(user User, permission string) bool) {
	s.mu.Lock()
	s.hasPermission = check
	s.mu.Unlock()
}

// HasPermission reports whether the authenticated principal holds the given
// permission. Without a configured predicate any authenticated principal is
// allowed.
func (s *Session) HasPermission(permission string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return false
	}
	if s.hasPermission == nil {
		return true
	}
	return s.hasPermission(*s.user, permission)
}

// restore seeds the session with a previously stored principal, before Init
// re-validates it.
func (s *Session) restore(user User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
}
