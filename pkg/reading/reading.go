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
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AllowedScalar is a compile-time constraint for what we allow as
// scalar probe readings.
type AllowedScalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~bool |
		~string
}

// Reading is a *runtime* interface so that values of mixed types can be
// stored in one section map. Every reading marshals to its bare value
// (no object wrapper), which is what keeps the /api/stats payload flat.
type Reading interface {
	isReading()
	Any() any
	String() string

	json.Marshaler
	yaml.Marshaler
}

// Scalar wraps an allowed scalar type. This is how we keep compile-time
// constraints while still using a runtime interface.
type Scalar[T AllowedScalar] struct {
	V T
}

func (Scalar[T]) isReading() {}

func (s Scalar[T]) Any() any { return s.V }

// String returns the string representation of the underlying scalar value.
func (s Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}

// MarshalJSON makes the JSON value be the underlying scalar.
func (s Scalar[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.V)
}

// MarshalYAML makes the YAML value be the underlying scalar.
func (s Scalar[T]) MarshalYAML() (any, error) {
	return s.V, nil
}

// StrList wraps a list of strings, e.g. throttle flags or the names of
// processes holding the accelerator device.
type StrList struct {
	V []string
}

func (StrList) isReading() {}

func (l StrList) Any() any { return l.V }

func (l StrList) String() string {
	return fmt.Sprintf("%v", l.V)
}

// MarshalJSON makes the JSON value be a bare array of strings.
// A nil slice still marshals as [] so clients never see null.
func (l StrList) MarshalJSON() ([]byte, error) {
	if l.V == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.V)
}

func (l StrList) MarshalYAML() (any, error) {
	if l.V == nil {
		return []string{}, nil
	}
	return l.V, nil
}

// MapList wraps a list of flat string maps, e.g. the PCIe device
// inventory ({addr, desc} per device).
type MapList struct {
	V []map[string]string
}

func (MapList) isReading() {}

func (l MapList) Any() any { return l.V }

func (l MapList) String() string {
	return fmt.Sprintf("%v", l.V)
}

func (l MapList) MarshalJSON() ([]byte, error) {
	if l.V == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.V)
}

func (l MapList) MarshalYAML() (any, error) {
	if l.V == nil {
		return []map[string]string{}, nil
	}
	return l.V, nil
}

// Convenience constructors for each allowed reading type.
func Int(v int) Reading                  { return Scalar[int]{V: v} }
func Int64(v int64) Reading              { return Scalar[int64]{V: v} }
func Uint64(v uint64) Reading            { return Scalar[uint64]{V: v} }
func Float64(v float64) Reading          { return Scalar[float64]{V: v} }
func Bool(v bool) Reading                { return Scalar[bool]{V: v} }
func Str(v string) Reading               { return Scalar[string]{V: v} }
func Strings(v []string) Reading         { return StrList{V: v} }
func Maps(v []map[string]string) Reading { return MapList{V: v} }

// ToReading creates a Reading from any supported value. Unsupported
// types fall back to their string representation so a probe can never
// smuggle a non-scalar through a passthrough section.
func ToReading(v any) Reading {
	switch val := v.(type) {
	case int:
		return Int(val)
	case int64:
		return Int64(val)
	case uint64:
		return Uint64(val)
	case float64:
		return Float64(val)
	case bool:
		return Bool(val)
	case string:
		return Str(val)
	case []string:
		return Strings(val)
	case []map[string]string:
		return Maps(val)
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}
