// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// initCommand implements the init command.
type initCommand struct {
	flagset *flag.FlagSet
	output  string
	force   bool
}

const configTemplate string = `gateway:
  base_url: http://localhost:3000
  #base_path: /api
  #timeout: 30
  #headers:
  #  X-Store: main

storage:
  memory: {}
  #file:
  #  path: outpost.json
  #sqlite:
  #  dsn: outpost.db
`

// NewInitCommand creates a new init command.
func NewInitCommand() *initCommand {
	c := initCommand{}
	c.flagset = flag.NewFlagSet("init", flag.ExitOnError)
	c.flagset.StringVar(&c.output, "o", "outpost.yaml", "Output file")
	c.flagset.BoolVar(&c.force, "f", false, "Overwrite an existing file")
	c.flagset.Usage = func() {
		fmt.Println("Usage: outpost init [OPTIONS]")
		fmt.Println()
		fmt.Println("Generate a new configuration file.")
		fmt.Println()
		fmt.Println("Options:")
		c.flagset.PrintDefaults()
		fmt.Println()
	}

	return &c
}

// Name returns the command name.
func (c *initCommand) Name() string {
	return c.flagset.Name()
}

// Description returns the command description.
func (c *initCommand) Description() string {
	return "Generate a new configuration file"
}

// Parse parses the command arguments.
func (c *initCommand) Parse(args []string) error {
	if err := c.flagset.Parse(args); err != nil {
		return errors.New("parse arguments")
	}
	if len(c.flagset.Args()) > 0 {
		return errors.New("check arguments")
	}
	return nil
}

// Execute executes the command.
func (c *initCommand) Execute() error {
	if !c.force {
		if _, err := os.Stat(c.output); err == nil {
			return fmt.Errorf("file '%s' already exists", c.output)
		}
	}
	if err := os.WriteFile(c.output, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("write config: %v", err)
	}

	fmt.Printf("Configuration file '%s' generated\n", c.output)

	return nil
}

var _ command = (*initCommand)(nil)
