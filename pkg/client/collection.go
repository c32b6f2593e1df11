// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/mirror"
)

// Spec declares the fallback behavior of one resource collection. The policy
// is configuration, not control flow: which resources degrade to the mirror,
// which cache reads and which never reach the backend is read from this
// table, not implied by call sites.
type Spec struct {
	// Name is the resource name used in error messages.
	Name string
	// Path is the resource path under the API root. Empty for mirror-only
	// resources, which never reach the backend and live per profile.
	Path string
	// Key is the mirror entry key.
	Key string
	// Prefix is the prefix of client-generated fallback identifiers.
	Prefix string
	// CacheOnRead writes successful list responses into the mirror so a
	// later fallback has fresh data. Not all resources do this; the
	// difference is preserved per resource.
	CacheOnRead bool
	// ReadOnly rejects mutations (list-only backend contract).
	ReadOnly bool
	// Limit bounds the entry to the most recent records on fallback writes,
	// 0 means unbounded.
	Limit int
}

// Collection implements the accessor of one resource, composing the remote
// gateway and the mirror store. Every operation resolves to the same shape
// whether the backend or the mirror served it; callers never branch on the
// source.
type Collection[T core.Record[T]] struct {
	spec    Spec
	gateway core.Gateway
	mirror  *mirror.Store
	logger  *slog.Logger
}

// newCollection creates a new collection with the given spec.
func newCollection[T core.Record[T]](spec Spec, gateway core.Gateway, store *mirror.Store,
	logger *slog.Logger) *Collection[T] {
	return &Collection[T]{
		spec:    spec,
		gateway: gateway,
		mirror:  store,
		logger:  logger,
	}
}

// Spec returns the declared fallback spec of the collection.
func (c *Collection[T]) Spec() Spec {
	return c.spec
}

// List returns all records of the resource. On any gateway failure the
// mirrored list is returned with an empty list as last resort; the read path
// never surfaces a backend error.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if c.spec.Path == "" {
		return mirror.Read(c.mirror, c.spec.Key, []T{}), nil
	}

	var records []T
	if err := c.gateway.Call(ctx, http.MethodGet, c.spec.Path, core.CallOptions{},
		&records); err != nil {
		c.logger.Warn("Falling back to mirror", "resource", c.spec.Name, "err", err)
		return mirror.Read(c.mirror, c.spec.Key, []T{}), nil
	}
	if records == nil {
		records = []T{}
	}

	if c.spec.CacheOnRead {
		if err := mirror.Write(c.mirror, c.spec.Key, records); err != nil {
			c.logger.Warn("Failed to cache resource", "resource", c.spec.Name, "err", err)
		}
	}

	return records, nil
}

// Get returns the record with the given identifier, searching the mirror when
// the gateway fails.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	if c.spec.Path != "" {
		var record T
		err := c.gateway.Call(ctx, http.MethodGet, c.spec.Path+"/"+id, core.CallOptions{},
			&record)
		if err == nil {
			return record, nil
		}
		c.logger.Warn("Falling back to mirror", "resource", c.spec.Name, "id", id, "err", err)
	}

	for _, record := range mirror.Read(c.mirror, c.spec.Key, []T{}) {
		if record.RecordID() == id {
			return record, nil
		}
	}
	return zero, &core.MissError{Resource: c.spec.Name, ID: id}
}

// Add creates a record. On gateway failure the record is appended to the
// mirror with a client-generated identifier (unless the caller supplied one)
// and returned shaped as the backend would have shaped it.
func (c *Collection[T]) Add(ctx context.Context, record T) (T, error) {
	var zero T
	if c.spec.ReadOnly {
		return zero, fmt.Errorf("%s is read-only", c.spec.Name)
	}

	if c.spec.Path != "" {
		var created T
		err := c.gateway.Call(ctx, http.MethodPost, c.spec.Path,
			core.CallOptions{Body: record}, &created)
		if err == nil {
			return created, nil
		}
		c.logger.Warn("Falling back to mirror", "resource", c.spec.Name, "err", err)
	}

	return c.addLocal(record)
}

// Update patches the record with the given identifier. On gateway failure the
// patch is merged into the mirrored record; a missing record surfaces a
// not-found error, the write path never swallows a failure into an empty
// success.
func (c *Collection[T]) Update(ctx context.Context, id string, patch map[string]interface{}) (T, error) {
	var zero T
	if c.spec.ReadOnly {
		return zero, fmt.Errorf("%s is read-only", c.spec.Name)
	}

	if c.spec.Path != "" {
		var updated T
		err := c.gateway.Call(ctx, http.MethodPut, c.spec.Path+"/"+id,
			core.CallOptions{Body: patch}, &updated)
		if err == nil {
			return updated, nil
		}
		c.logger.Warn("Falling back to mirror", "resource", c.spec.Name, "id", id, "err", err)
	}

	return c.updateLocal(id, patch)
}

// Remove deletes the record with the given identifier. On gateway failure the
// record is filtered out of the mirror; a missing record surfaces a
// not-found error.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	if c.spec.ReadOnly {
		return fmt.Errorf("%s is read-only", c.spec.Name)
	}

	if c.spec.Path != "" {
		err := c.gateway.Call(ctx, http.MethodDelete, c.spec.Path+"/"+id,
			core.CallOptions{}, nil)
		if err == nil {
			return nil
		}
		c.logger.Warn("Falling back to mirror", "resource", c.spec.Name, "id", id, "err", err)
	}

	records := mirror.Read(c.mirror, c.spec.Key, []T{})
	kept := make([]T, 0, len(records))
	for _, record := range records {
		if record.RecordID() != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return &core.MissError{Resource: c.spec.Name, ID: id}
	}
	return mirror.Write(c.mirror, c.spec.Key, kept)
}

// addLocal appends the record to the mirror.
func (c *Collection[T]) addLocal(record T) (T, error) {
	var zero T
	if record.RecordID() == "" {
		record = record.WithRecordID(newRecordID(c.spec.Prefix))
	}

	records := mirror.Read(c.mirror, c.spec.Key, []T{})
	records = append(records, record)
	if c.spec.Limit > 0 && len(records) > c.spec.Limit {
		records = records[len(records)-c.spec.Limit:]
	}
	if err := mirror.Write(c.mirror, c.spec.Key, records); err != nil {
		return zero, err
	}
	return record, nil
}

// updateLocal merges the patch into the mirrored record.
func (c *Collection[T]) updateLocal(id string, patch map[string]interface{}) (T, error) {
	var zero T

	records := mirror.Read(c.mirror, c.spec.Key, []T{})
	for i, record := range records {
		if record.RecordID() != id {
			continue
		}
		merged, err := mergePatch(record, patch)
		if err != nil {
			return zero, err
		}
		records[i] = merged
		if err := mirror.Write(c.mirror, c.spec.Key, records); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, &core.MissError{Resource: c.spec.Name, ID: id}
}

// mergePatch merges the patch fields into a copy of the record, matching
// fields by their json tag.
func mergePatch[T any](record T, patch map[string]interface{}) (T, error) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     &record,
		DecodeHook: decodeDecimalHook,
	})
	if err != nil {
		return record, fmt.Errorf("merge patch: %w", err)
	}
	if err := decoder.Decode(patch); err != nil {
		return record, fmt.Errorf("merge patch: %w", err)
	}
	return record, nil
}

// decodeDecimalHook decodes numeric and string patch values into decimal
// fields.
func decodeDecimalHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(decimal.Decimal{}) {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case string:
		return decimal.NewFromString(v)
	}
	return data, nil
}
