// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package sqlite implements the sqlite storage module, the durable profile
// backend shared by all clients of the same host.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"
	_ "modernc.org/sqlite"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/module"
)

// sqliteStorage implements the sqlite storage.
type sqliteStorage struct {
	config *sqliteStorageConfig
	logger *slog.Logger
	db     *sql.DB
}

// sqliteStorageConfig implements the sqlite storage configuration.
type sqliteStorageConfig struct {
	DSN string `mapstructure:"dsn"`
}

const (
	sqliteModuleID module.ModuleID = "storage.sqlite"

	sqliteSchema string = `CREATE TABLE IF NOT EXISTS entries (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`
)

// init initializes the module.
func init() {
	module.Register(sqliteStorage{})
}

// ModuleInfo returns the module information.
func (s sqliteStorage) ModuleInfo() module.ModuleInfo {
	return module.ModuleInfo{
		ID: sqliteModuleID,
		NewInstance: func() module.Module {
			return &sqliteStorage{}
		},
	}
}

// Init initializes the storage.
func (s *sqliteStorage) Init(config map[string]interface{}, logger *slog.Logger) error {
	s.logger = logger

	var c sqliteStorageConfig
	if err := mapstructure.Decode(config, &c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.config = &c

	if s.config.DSN == "" {
		return errors.New("missing option 'dsn'")
	}

	db, err := sql.Open("sqlite", s.config.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}
	s.db = db

	return nil
}

// Load returns the entry stored under the given key.
func (s *sqliteStorage) Load(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrEntryNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("load entry: %w", err)
	}
	return value, nil
}

// Store persists an entry under the given key.
func (s *sqliteStorage) Store(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO entries(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store entry: %w", err)
	}
	return nil
}

// Remove removes the entry stored under the given key.
func (s *sqliteStorage) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}
	return nil
}

// Keys returns the keys of all stored entries.
func (s *sqliteStorage) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM entries ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return keys, nil
}

// Close releases the resources held by the module.
func (s *sqliteStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ core.StorageModule = (*sqliteStorage)(nil)
