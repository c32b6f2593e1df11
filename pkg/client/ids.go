// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newRecordID returns a client-generated identifier for fallback writes:
// the resource prefix, the current epoch milliseconds and a random suffix.
// The suffix keeps two identifiers generated within the same millisecond
// from colliding; once assigned an identifier is never reused.
func newRecordID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
