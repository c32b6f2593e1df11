// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package core defines the types and interfaces shared by the gateway, the
// mirror store and the resource accessors.
package core

import (
	"log/slog"

	"github.com/nexatech/outpost/pkg/module"
)

// Module is the interface of a module.
type Module interface {
	// Module is the base interface of a module.
	module.Module

	// Init initializes the module with the given configuration and logger.
	Init(config map[string]interface{}, logger *slog.Logger) error
}
