// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mirror

import (
	"testing"
)

func TestBusPublish(t *testing.T) {
	b := NewBus()

	var first, second []string
	cancelFirst := b.Subscribe(func(key string) {
		first = append(first, key)
	})
	defer cancelFirst()
	cancelSecond := b.Subscribe(func(key string) {
		second = append(second, key)
	})
	defer cancelSecond()

	b.Publish("users")

	if len(first) != 1 || first[0] != "users" {
		t.Errorf("first subscriber = %v", first)
	}
	if len(second) != 1 || second[0] != "users" {
		t.Errorf("second subscriber = %v", second)
	}
}

func TestBusCancel(t *testing.T) {
	b := NewBus()

	var count int
	cancel := b.Subscribe(func(key string) {
		count++
	})

	b.Publish("k")
	cancel()
	b.Publish("k")

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestBusNoSubscribers(t *testing.T) {
	b := NewBus()
	b.Publish("k")
}
