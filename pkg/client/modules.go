// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	_ "github.com/nexatech/outpost/pkg/modules/storage/file"
	_ "github.com/nexatech/outpost/pkg/modules/storage/memory"
	_ "github.com/nexatech/outpost/pkg/modules/storage/sqlite"
)
