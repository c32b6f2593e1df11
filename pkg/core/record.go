// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

// Record is implemented by every domain record moved through the client.
//
// Identifiers are opaque strings assigned by the backend or, for fallback
// writes, generated by the client. Once assigned an identifier is never
// reassigned within a session.
type Record[T any] interface {
	// RecordID returns the record identifier, empty if not yet assigned.
	RecordID() string
	// WithRecordID returns a copy of the record with the given identifier.
	WithRecordID(id string) T
}
