// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerHandle(t *testing.T) {
	type args struct {
		id    string
		msg   string
		attrs []any
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			name: "default",
			args: args{
				id:  "test",
				msg: "message",
			},
			want: []string{"id=test", "msg=message"},
		},
		{
			name: "with attributes",
			args: args{
				id:    "test",
				msg:   "message",
				attrs: []any{"key", "value"},
			},
			want: []string{"id=test", "msg=message", "key=value"},
		},
		{
			name: "quoted value",
			args: args{
				id:    "test",
				msg:   "message",
				attrs: []any{"key", "a value"},
			},
			want: []string{`key="a value"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewHandler(&buf, tt.args.id, nil))
			logger.Info(tt.args.msg, tt.args.attrs...)
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Handle() output = %q, missing %q", buf.String(), want)
				}
			}
		})
	}
}

func TestHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "test", &HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("ignored")
	if buf.Len() != 0 {
		t.Errorf("Handle() output = %q, want empty", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("Handle() output empty, want record")
	}
}
