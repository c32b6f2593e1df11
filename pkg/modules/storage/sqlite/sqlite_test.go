// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sqlite

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/nexatech/outpost/pkg/core"
)

func newTestStorage(t *testing.T) *sqliteStorage {
	t.Helper()
	s := &sqliteStorage{}
	config := map[string]interface{}{
		"dsn": filepath.Join(t.TempDir(), "profile.db"),
	}
	if err := s.Init(config, slog.Default()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestSqliteStorageInit(t *testing.T) {
	type args struct {
		config map[string]interface{}
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "default",
			args: args{
				config: map[string]interface{}{
					"dsn": ":memory:",
				},
			},
		},
		{
			name: "error missing dsn",
			args: args{
				config: map[string]interface{}{},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &sqliteStorage{}
			err := s.Init(tt.args.config, slog.Default())
			if (err != nil) != tt.wantErr {
				t.Errorf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				s.Close()
			}
		})
	}
}

func TestSqliteStorageRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.Load("k"); !errors.Is(err, core.ErrEntryNotExist) {
		t.Errorf("Load() error = %v, want ErrEntryNotExist", err)
	}

	if err := s.Store("k", []byte(`["a"]`)); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := s.Store("k", []byte(`["a","b"]`)); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	v, err := s.Load("k")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(v, []byte(`["a","b"]`)) {
		t.Errorf("Load() = %s", v)
	}

	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := s.Load("k"); !errors.Is(err, core.ErrEntryNotExist) {
		t.Errorf("Load() error = %v, want ErrEntryNotExist", err)
	}
}

func TestSqliteStorageKeys(t *testing.T) {
	s := newTestStorage(t)

	for _, k := range []string{"b", "a"} {
		if err := s.Store(k, []byte(`{}`)); err != nil {
			t.Fatalf("Store() error = %v", err)
		}
	}
	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v", keys)
	}
}
