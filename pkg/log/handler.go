// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

// Handler implements the log handler.
type Handler struct {
	id    string
	opts  *HandlerOptions
	w     io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
}

// HandlerOptions implements the log handler options.
type HandlerOptions struct {
	Level slog.Leveler
}

const (
	// IDKey is the key used by the handler for its ID. The associated value is
	// a string.
	IDKey = "id"
)

// NewHandler creates a new handler.
func NewHandler(w io.Writer, id string, opts *HandlerOptions) *Handler {
	h := Handler{
		id: id,
		w:  w,
		mu: &sync.Mutex{},
	}
	if opts == nil {
		h.opts = &HandlerOptions{
			Level: ProgramLevel,
		}
	} else {
		h.opts = opts
	}
	return &h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// WithGroup returns the handler itself; groups are flattened into attribute
// keys by the callers of this package.
func (h *Handler) WithGroup(name string) slog.Handler {
	return h
}

// WithAttrs returns a new Handler whose attributes consist of both the
// receiver's attributes and the arguments.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(h2.attrs, h.attrs)
	copy(h2.attrs[len(h.attrs):], attrs)
	return &h2
}

// Handle handles the record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	buf := make([]byte, 0, 1024)
	if !r.Time.IsZero() {
		buf = h.appendAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}
	buf = h.appendAttr(buf, slog.Any(slog.LevelKey, r.Level))
	if h.id != "" {
		buf = h.appendAttr(buf, slog.String(IDKey, h.id))
	}
	buf = h.appendAttr(buf, slog.String(slog.MessageKey, r.Message))
	for _, a := range h.attrs {
		buf = h.appendAttr(buf, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// appendAttr appends a single attribute.
func (h *Handler) appendAttr(buf []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	switch a.Value.Kind() {
	case slog.KindTime:
		buf = fmt.Appendf(buf, "%s=%s", a.Key, a.Value.Time().Format(time.RFC3339Nano))
	default:
		if needsQuoting(a.Key) {
			buf = fmt.Appendf(buf, " %q=", a.Key)
		} else {
			buf = fmt.Appendf(buf, " %s=", a.Key)
		}
		if needsQuoting(a.Value.String()) {
			buf = fmt.Appendf(buf, "%q", a.Value.String())
		} else {
			buf = fmt.Appendf(buf, "%s", a.Value.String())
		}
	}
	return buf
}

// needsQuoting checks if a string needs to be quoted.
func needsQuoting(s string) bool {
	if len(s) == 0 {
		return true
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
		i += size
	}
	return false
}

var _ (slog.Handler) = (*Handler)(nil)
