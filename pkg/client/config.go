// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config implements the client configuration.
type Config struct {
	// Gateway is the remote gateway configuration section.
	Gateway map[string]interface{}
	// Storage maps the mirror storage module name to its configuration.
	Storage map[string]map[string]interface{}
}

const (
	configDefaultFile string = "outpost.yaml"
)

// yamlConfig implements the configuration file layout.
type yamlConfig struct {
	Gateway map[string]interface{}            `yaml:"gateway"`
	Storage map[string]map[string]interface{} `yaml:"storage"`
}

// configOsReadFile redirects to os.ReadFile.
var configOsReadFile = os.ReadFile

// LoadConfig loads the configuration from the given file, or from the
// default file if name is empty.
func LoadConfig(name string) (*Config, error) {
	if name == "" {
		name = configDefaultFile
	}
	data, err := configOsReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if y.Gateway == nil {
		return nil, errors.New("missing section 'gateway'")
	}

	config := Config{
		Gateway: y.Gateway,
		Storage: y.Storage,
	}
	if config.Storage == nil {
		config.Storage = map[string]map[string]interface{}{
			"memory": {},
		}
	}

	return &config, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Gateway: map[string]interface{}{
			"base_url": "http://localhost:3000",
		},
		Storage: map[string]map[string]interface{}{
			"memory": {},
		},
	}
}
