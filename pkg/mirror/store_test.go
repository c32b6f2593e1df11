// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mirror

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/module"
)

// testStorage implements an in-memory storage module for tests.
type testStorage struct {
	entries map[string][]byte
	failing bool
}

func (s *testStorage) ModuleInfo() module.ModuleInfo {
	return module.ModuleInfo{ID: "storage.test"}
}

func (s *testStorage) Init(config map[string]interface{}, logger *slog.Logger) error {
	return nil
}

func (s *testStorage) Load(key string) ([]byte, error) {
	if s.failing {
		return nil, errors.New("storage unavailable")
	}
	v, ok := s.entries[key]
	if !ok {
		return nil, core.ErrEntryNotExist
	}
	return v, nil
}

func (s *testStorage) Store(key string, value []byte) error {
	if s.failing {
		return errors.New("storage unavailable")
	}
	s.entries[key] = value
	return nil
}

func (s *testStorage) Remove(key string) error {
	delete(s.entries, key)
	return nil
}

func (s *testStorage) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *testStorage) Close() error {
	return nil
}

var _ core.StorageModule = (*testStorage)(nil)

func newTestStore(entries map[string][]byte) *Store {
	return New(&testStorage{entries: entries}, NewBus())
}

func TestStoreRead(t *testing.T) {
	type args struct {
		entries map[string][]byte
		failing bool
		key     string
		def     []string
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			name: "stored entry",
			args: args{
				entries: map[string][]byte{"k": []byte(`["a","b"]`)},
				key:     "k",
				def:     []string{},
			},
			want: []string{"a", "b"},
		},
		{
			name: "missing entry returns default",
			args: args{
				entries: map[string][]byte{},
				key:     "k",
				def:     []string{"default"},
			},
			want: []string{"default"},
		},
		{
			name: "corrupted entry returns default",
			args: args{
				entries: map[string][]byte{"k": []byte(`{not json!`)},
				key:     "k",
				def:     []string{"default"},
			},
			want: []string{"default"},
		},
		{
			name: "unavailable storage returns default",
			args: args{
				failing: true,
				key:     "k",
				def:     []string{"default"},
			},
			want: []string{"default"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&testStorage{entries: tt.args.entries, failing: tt.args.failing}, NewBus())
			if got := Read(s, tt.args.key, tt.args.def); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Read() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoreWrite(t *testing.T) {
	s := newTestStore(map[string][]byte{})

	if err := Write(s, "k", []int{1, 2, 3}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := Read(s, "k", []int{}); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Read() = %v", got)
	}
}

func TestStoreWriteUnavailable(t *testing.T) {
	s := New(&testStorage{failing: true}, NewBus())

	if err := Write(s, "k", "v"); err == nil {
		t.Error("Write() expected error")
	}
}

func TestStoreWriteNotifiesOnce(t *testing.T) {
	s := newTestStore(map[string][]byte{})

	var keys []string
	cancel := s.Bus().Subscribe(func(key string) {
		keys = append(keys, key)
	})
	defer cancel()

	if err := Write(s, "orders", []string{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"orders"}) {
		t.Errorf("notifications = %v, want exactly one for 'orders'", keys)
	}
}

func TestQuery(t *testing.T) {
	type record struct {
		ID       string `json:"id"`
		Featured bool   `json:"featured"`
	}
	s := newTestStore(map[string][]byte{
		"products": []byte(`[{"id":"p1","featured":true},{"id":"p2","featured":false},{"id":"p3","featured":true}]`),
	})

	got, err := Query[record](s, "products", `$[?(@.featured == true)]`)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	want := []record{{ID: "p1", Featured: true}, {ID: "p3", Featured: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Query() = %v, want %v", got, want)
	}
}

func TestQueryEmpty(t *testing.T) {
	s := newTestStore(map[string][]byte{})

	got, err := Query[map[string]interface{}](s, "products", `$[?(@.featured == true)]`)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Query() = %v, want empty", got)
	}
}
