// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package module

import (
	"testing"
)

type testModule struct {
	id ModuleID
}

func (m testModule) ModuleInfo() ModuleInfo {
	return ModuleInfo{
		ID: m.id,
		NewInstance: func() Module {
			return &testModule{}
		},
	}
}

func TestRegister(t *testing.T) {
	type args struct {
		module Module
	}
	tests := []struct {
		name string
		args args
	}{
		{
			name: "default",
			args: args{
				module: testModule{id: "test.register"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Register(tt.args.module)
			defer Unregister(tt.args.module)

			if _, err := Lookup(tt.args.module.ModuleInfo().ID); err != nil {
				t.Errorf("Lookup() error = %v", err)
			}
		})
	}
}

func TestUnregister(t *testing.T) {
	m := testModule{id: "test.unregister"}

	Register(m)
	Unregister(m)

	if _, err := Lookup(m.ModuleInfo().ID); err == nil {
		t.Error("Lookup() expected error")
	}
}

func TestLookup(t *testing.T) {
	m := testModule{id: "test.lookup"}

	Register(m)
	defer Unregister(m)

	type args struct {
		id ModuleID
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "registered module",
			args: args{
				id: "test.lookup",
			},
		},
		{
			name: "unregistered module",
			args: args{
				id: "test.unknown",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Lookup(tt.args.id); (err != nil) != tt.wantErr {
				t.Errorf("Lookup() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestList(t *testing.T) {
	m := testModule{id: "test.list"}

	Register(m)
	defer Unregister(m)

	var found bool
	for _, id := range List() {
		if id == m.ModuleInfo().ID {
			found = true
		}
	}
	if !found {
		t.Error("List() missing registered module")
	}
}
