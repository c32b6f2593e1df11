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

// pullCommand implements the pull command.
type pullCommand struct {
	flagset *flag.FlagSet
	config  string
	timeout time.Duration
}

// NewPullCommand creates a new pull command.
func NewPullCommand() *pullCommand {
	c := pullCommand{}
	c.flagset = flag.NewFlagSet("pull", flag.ExitOnError)
	c.flagset.StringVar(&c.config, "c", "", "Configuration file")
	c.flagset.DurationVar(&c.timeout, "timeout", 30*time.Second, "Request timeout")
	c.flagset.Usage = func() {
		fmt.Println("Usage: outpost pull [OPTIONS]")
		fmt.Println()
		fmt.Println("Warm the local mirror from the backend.")
		fmt.Println()
		fmt.Println("Options:")
		c.flagset.PrintDefaults()
		fmt.Println()
	}

	return &c
}

// Name returns the command name.
func (c *pullCommand) Name() string {
	return c.flagset.Name()
}

// Description returns the command description.
func (c *pullCommand) Description() string {
	return "Warm the local mirror from the backend"
}

// Parse parses the command arguments.
func (c *pullCommand) Parse(args []string) error {
	if err := c.flagset.Parse(args); err != nil {
		return errors.New("parse arguments")
	}
	if len(c.flagset.Args()) > 0 {
		return errors.New("check arguments")
	}
	return nil
}

// Execute executes the command.
func (c *pullCommand) Execute() error {
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

	users, err := instance.Users.List(ctx)
	if err != nil {
		return fmt.Errorf("pull users: %v", err)
	}
	fmt.Printf("Pulled %d users\n", len(users))

	orders, err := instance.Orders.List(ctx)
	if err != nil {
		return fmt.Errorf("pull orders: %v", err)
	}
	fmt.Printf("Pulled %d orders\n", len(orders))

	return nil
}

var _ command = (*pullCommand)(nil)
