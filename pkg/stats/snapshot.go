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

package stats

import (
	"encoding/json"

	"github.com/hailodash/hailodash/pkg/reading"
)

// Snapshot is one complete, timestamped aggregate of all subsystem
// sections. It is immutable once published: a refresh builds a wholly
// new Snapshot and swaps the reference, so readers holding an old one
// keep a consistent view.
type Snapshot struct {
	// TS is the capture time as Unix seconds with fractional part,
	// assigned once at the start of the refresh cycle.
	TS float64

	// Sections maps subsystem name to that subsystem's fields. The key
	// set is exactly the probe registry, every cycle, regardless of how
	// many probes came back empty.
	Sections map[string]reading.Section
}

// MarshalJSON flattens the snapshot into the wire shape the dashboard
// polls: {"ts": ..., "hailo": {...}, "cpu": {...}, ...}.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Sections)+1)
	out["ts"] = s.TS
	for name, section := range s.Sections {
		out[name] = section
	}
	return json.Marshal(out)
}

// MarshalYAML mirrors the JSON shape for the one-shot CLI output.
func (s *Snapshot) MarshalYAML() (any, error) {
	out := make(map[string]any, len(s.Sections)+1)
	out["ts"] = s.TS
	for name, section := range s.Sections {
		out[name] = section
	}
	return out, nil
}

// Section returns the named section, or nil when the name is not part
// of the registry.
func (s *Snapshot) Section(name string) reading.Section {
	return s.Sections[name]
}
