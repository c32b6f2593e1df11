// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/nexatech/outpost/pkg/client"
)

// statusCommand implements the status command.
type statusCommand struct {
	flagset *flag.FlagSet
	config  string
	timeout time.Duration
}

// NewStatusCommand creates a new status command.
func NewStatusCommand() *statusCommand {
	c := statusCommand{}
	c.flagset = flag.NewFlagSet("status", flag.ExitOnError)
	c.flagset.StringVar(&c.config, "c", "", "Configuration file")
	c.flagset.DurationVar(&c.timeout, "timeout", 10*time.Second, "Request timeout")
	c.flagset.Usage = func() {
		fmt.Println("Usage: outpost status [OPTIONS]")
		fmt.Println()
		fmt.Println("Report the backend identity and health.")
		fmt.Println()
		fmt.Println("Options:")
		c.flagset.PrintDefaults()
		fmt.Println()
	}

	return &c
}

// Name returns the command name.
func (c *statusCommand) Name() string {
	return c.flagset.Name()
}

// Description returns the command description.
func (c *statusCommand) Description() string {
	return "Report the backend identity and health"
}

// Parse parses the command arguments.
func (c *statusCommand) Parse(args []string) error {
	if err := c.flagset.Parse(args); err != nil {
		return errors.New("parse arguments")
	}
	if len(c.flagset.Args()) > 0 {
		return errors.New("check arguments")
	}
	return nil
}

// Execute executes the command.
func (c *statusCommand) Execute() error {
	config, err := loadConfig(c.config)
	if err != nil {
		return err
	}
	instance, err := client.New(config)
	if err != nil {
		return fmt.Errorf("init client: %v", err)
	}
	defer func() {
		_ = instance.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	info, err := instance.ServerInfo(ctx)
	if err != nil {
		fmt.Println("Backend is unreachable")
		return fmt.Errorf("server info: %v", err)
	}
	fmt.Printf("Server:  %s %s\n", info.Name, info.Version)

	health, err := instance.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %v", err)
	}
	fmt.Printf("Health:  %s\n", health.Status)

	return nil
}

// loadConfig loads the given configuration file, falling back to the default
// configuration if no file is given and the default file does not exist.
func loadConfig(name string) (*client.Config, error) {
	config, err := client.LoadConfig(name)
	if err != nil {
		if name == "" {
			return client.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("load config: %v", err)
	}
	return config, nil
}

var _ command = (*statusCommand)(nil)
