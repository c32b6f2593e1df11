// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package memory implements the memory storage module. Entries live only for
// the lifetime of the process; useful for tests and for deployments that do
// not want a persisted offline profile.
package memory

import (
	"log/slog"
	"sync"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/module"
)

// memoryStorage implements the memory storage.
type memoryStorage struct {
	config  *memoryStorageConfig
	logger  *slog.Logger
	mu      sync.RWMutex
	entries map[string][]byte
}

// memoryStorageConfig implements the memory storage configuration.
type memoryStorageConfig struct {
}

const (
	memoryModuleID module.ModuleID = "storage.memory"
)

// init initializes the module.
func init() {
	module.Register(&memoryStorage{})
}

// ModuleInfo returns the module information.
func (s *memoryStorage) ModuleInfo() module.ModuleInfo {
	return module.ModuleInfo{
		ID: memoryModuleID,
		NewInstance: func() module.Module {
			return &memoryStorage{}
		},
	}
}

// Init initializes the storage.
func (s *memoryStorage) Init(config map[string]interface{}, logger *slog.Logger) error {
	s.config = &memoryStorageConfig{}
	s.logger = logger
	s.entries = make(map[string][]byte)

	return nil
}

// Load returns the entry stored under the given key.
func (s *memoryStorage) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		return nil, core.ErrEntryNotExist
	}
	return v, nil
}

// Store persists an entry under the given key.
func (s *memoryStorage) Store(key string, value []byte) error {
	s.mu.Lock()
	s.entries[key] = append([]byte(nil), value...)
	s.mu.Unlock()

	return nil
}

// Remove removes the entry stored under the given key.
func (s *memoryStorage) Remove(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()

	return nil
}

// Keys returns the keys of all stored entries.
func (s *memoryStorage) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close releases the resources held by the module.
func (s *memoryStorage) Close() error {
	return nil
}

var _ core.StorageModule = (*memoryStorage)(nil)
