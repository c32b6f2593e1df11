// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package mirror implements the local mirror store, the keyed persistence
// facade used as the fallback datastore when the backend is unreachable.
package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/log"
)

// Store implements the mirror store over a storage module.
type Store struct {
	storage core.StorageModule
	bus     core.Bus
	logger  *slog.Logger
}

const (
	storeLogger string = "mirror"
)

// New creates a new store with the given storage module and bus.
func New(storage core.StorageModule, bus core.Bus) *Store {
	return &Store{
		storage: storage,
		bus:     bus,
		logger:  slog.New(log.NewHandler(os.Stderr, storeLogger, nil)),
	}
}

// Bus returns the change notification bus.
func (s *Store) Bus() core.Bus {
	return s.bus
}

// Read returns the entry stored under the given key, decoded as T. It never
// fails outward: a missing entry, an unavailable storage or a corrupted entry
// is logged and yields the caller-supplied default. The mirror is a fallback
// of last resort and must not be a failure mode of its own.
func Read[T any](s *Store, key string, def T) T {
	data, err := s.storage.Load(key)
	if err != nil {
		if errors.Is(err, core.ErrEntryNotExist) {
			s.logger.Debug("No mirror entry", "key", key)
		} else {
			s.logger.Warn("Failed to load mirror entry", "key", key, "err", err)
		}
		return def
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("Corrupted mirror entry", "key", key, "err", err)
		return def
	}
	return value
}

// Write serializes the value, persists it under the given key and broadcasts
// one change notification carrying the key. The broadcast is fire-and-forget;
// there is no acknowledgment from listeners and no retry.
func Write[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode mirror entry: %w", err)
	}
	if err := s.storage.Store(key, data); err != nil {
		return fmt.Errorf("store mirror entry: %w", err)
	}
	s.bus.Publish(key)
	return nil
}
