// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package file implements the file storage module. All entries of a profile
// live in a single JSON file; every operation re-reads the file so that
// concurrent processes sharing a profile observe each other's writes with
// last-write-wins semantics.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/module"
)

// fileStorage implements the file storage.
type fileStorage struct {
	config      *fileStorageConfig
	logger      *slog.Logger
	mu          sync.Mutex
	osReadFile  func(name string) ([]byte, error)
	osWriteFile func(name string, data []byte, perm fs.FileMode) error
}

// fileStorageConfig implements the file storage configuration.
type fileStorageConfig struct {
	Path string
}

const (
	fileModuleID module.ModuleID = "storage.file"
)

// fileOsReadFile redirects to os.ReadFile.
func fileOsReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// fileOsWriteFile redirects to os.WriteFile.
func fileOsWriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// init initializes the module.
func init() {
	module.Register(&fileStorage{})
}

// ModuleInfo returns the module information.
func (s *fileStorage) ModuleInfo() module.ModuleInfo {
	return module.ModuleInfo{
		ID: fileModuleID,
		NewInstance: func() module.Module {
			return &fileStorage{
				osReadFile:  fileOsReadFile,
				osWriteFile: fileOsWriteFile,
			}
		},
	}
}

// Init initializes the storage.
func (s *fileStorage) Init(config map[string]interface{}, logger *slog.Logger) error {
	s.logger = logger

	var c fileStorageConfig
	if err := mapstructure.Decode(config, &c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.config = &c

	if s.config.Path == "" {
		return errors.New("missing option 'path'")
	}

	return nil
}

// load reads all entries from the profile file.
func (s *fileStorage) load() (map[string]json.RawMessage, error) {
	data, err := s.osReadFile(s.config.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}
	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return entries, nil
}

// flush writes all entries to the profile file.
func (s *fileStorage) flush(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.osWriteFile(s.config.Path, data, 0600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// Load returns the entry stored under the given key.
func (s *fileStorage) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	v, ok := entries[key]
	if !ok {
		return nil, core.ErrEntryNotExist
	}
	return v, nil
}

// Store persists an entry under the given key.
func (s *fileStorage) Store(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[key] = json.RawMessage(value)
	return s.flush(entries)
}

// Remove removes the entry stored under the given key.
func (s *fileStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	delete(entries, key)
	return s.flush(entries)
}

// Keys returns the keys of all stored entries.
func (s *fileStorage) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close releases the resources held by the module.
func (s *fileStorage) Close() error {
	return nil
}

var _ core.StorageModule = (*fileStorage)(nil)
