// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mirror

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query filters the JSON array stored under the given key with a jsonpath
// expression and decodes the matches as []T. A missing or corrupted entry
// yields an empty result, like Read.
func Query[T any](s *Store, key string, path string) ([]T, error) {
	entries := Read(s, key, []interface{}{})
	if len(entries) == 0 {
		return []T{}, nil
	}

	result, err := jsonpath.Get(path, interface{}(entries))
	if err != nil {
		return nil, fmt.Errorf("filter mirror entry: %w", err)
	}
	matches, ok := result.([]interface{})
	if !ok {
		matches = []interface{}{result}
	}

	data, err := json.Marshal(matches)
	if err != nil {
		return nil, fmt.Errorf("encode matches: %w", err)
	}
	records := []T{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}
	return records, nil
}
