// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mirror

import (
	"sync"

	"github.com/nexatech/outpost/pkg/core"
)

// bus implements the change notification bus.
type bus struct {
	mu       sync.RWMutex
	next     int
	handlers map[int]func(key string)
}

// NewBus creates a new bus instance.
func NewBus() core.Bus {
	return &bus{
		handlers: map[int]func(key string){},
	}
}

// Publish broadcasts a change notification for the given key. Handlers run
// synchronously in subscription order; no ordering is guaranteed across
// publishers. Notifications do not cross process boundaries.
func (b *bus) Publish(key string) {
	b.mu.RLock()
	handlers := make([]func(key string), 0, len(b.handlers))
	for i := 0; i < b.next; i++ {
		if h, ok := b.handlers[i]; ok {
			handlers = append(handlers, h)
		}
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(key)
	}
}

// Subscribe registers a handler for all change notifications.
func (b *bus) Subscribe(handler func(key string)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.handlers[id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}

var _ core.Bus = (*bus)(nil)
