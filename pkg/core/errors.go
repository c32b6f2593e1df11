// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package core

import "fmt"

// NetworkError reports a transport-level failure: the request never obtained
// an HTTP response (connection refused, DNS failure, timeout).
type NetworkError struct {
	Err error
}

// Error returns the error message.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %s", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports an HTTP response with a non-2xx status. Message is the
// message field of the JSON error body when present, the HTTP status text
// otherwise. A 404 message is annotated with the requested path; callers
// distinguish a wrong endpoint from an absent resource by the message, not by
// a separate error kind.
type APIError struct {
	Status  int
	Message string
	Path    string
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.Status, e.Message)
}

// MissError reports a fallback lookup that found no matching record in the
// mirror. Its message is suitable for direct display.
type MissError struct {
	Resource string
	ID       string
}

// Error returns the error message.
func (e *MissError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}
