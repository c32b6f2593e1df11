// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

import "errors"

// ErrEntryNotExist is returned by a storage module when no entry is persisted
// under the requested key.
var ErrEntryNotExist = errors.New("entry does not exist")

// StorageModule is the interface of a mirror storage module.
//
// A storage module persists serialized mirror entries under opaque keys. It
// performs no validation and no size enforcement; truncation of append-style
// entries is the responsibility of the accessor writing them.
type StorageModule interface {
	// Module is the interface of a module.
	Module

	// Load returns the entry stored under the given key, or ErrEntryNotExist.
	Load(key string) ([]byte, error)
	// Store persists an entry under the given key.
	Store(key string, value []byte) error
	// Remove removes the entry stored under the given key.
	Remove(key string) error
	// Keys returns the keys of all stored entries.
	Keys() ([]string, error)
	// Close releases the resources held by the module.
	Close() error
}

// Bus is the interface of the change notification bus.
//
// A notification is fire-and-forget: it carries only the key of the mirror
// entry that changed, is delivered synchronously to the subscribers of the
// same process, and is never queued or persisted. Consumers must re-read the
// mirror entry to get current data.
type Bus interface {
	// Publish broadcasts a change notification for the given key.
	Publish(key string)
	// Subscribe registers a handler for all change notifications. The
	// returned function cancels the subscription.
	Subscribe(handler func(key string)) (cancel func())
}
