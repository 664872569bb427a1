// Copyright (c) 2026, the hailodash authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reading

import (
	"fmt"
	"sort"
)

// Section holds one subsystem's fields. Fields a probe could not
// determine on a given cycle are simply absent; a value is never
// present-and-null. An empty (but non-nil) Section means "nothing
// usable observed".
type Section map[string]Reading

// Has checks if a key exists in the section.
func (s Section) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns all keys in the section, sorted for stable output.
func (s Section) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetString attempts to retrieve a string value.
func (s Section) GetString(key string) (string, error) {
	r, ok := s[key]
	if !ok {
		return "", fmt.Errorf("key %q not found", key)
	}
	v, ok := r.Any().(string)
	if !ok {
		return "", fmt.Errorf("key %q is not a string", key)
	}
	return v, nil
}

// GetFloat64 attempts to retrieve a float64 value, converting from
// integer readings where possible.
func (s Section) GetFloat64(key string) (float64, error) {
	r, ok := s[key]
	if !ok {
		return 0, fmt.Errorf("key %q not found", key)
	}
	switch v := r.Any().(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("key %q is not numeric", key)
	}
}

// GetInt64 attempts to retrieve an int64 value.
func (s Section) GetInt64(key string) (int64, error) {
	r, ok := s[key]
	if !ok {
		return 0, fmt.Errorf("key %q not found", key)
	}
	switch v := r.Any().(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("key %q is not an integer", key)
	}
}

// GetBool attempts to retrieve a bool value.
func (s Section) GetBool(key string) (bool, error) {
	r, ok := s[key]
	if !ok {
		return false, fmt.Errorf("key %q not found", key)
	}
	v, ok := r.Any().(bool)
	if !ok {
		return false, fmt.Errorf("key %q is not a bool", key)
	}
	return v, nil
}

// Equal reports whether two sections hold the same fields with the same
// string representations. Used to compare consecutive refresh cycles.
func (s Section) Equal(other Section) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok || v.String() != ov.String() {
			return false
		}
	}
	return true
}
