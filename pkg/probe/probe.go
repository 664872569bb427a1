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

package probe

import (
	"context"

	"github.com/hailodash/hailodash/pkg/reading"
)

// Subsystem names. These are the section keys of every snapshot; the
// set is fixed for the life of the process even when a probe always
// comes back empty.
const (
	NameHailo     = "hailo"
	NameHailoPerf = "hailo_perf"
	NameCPU       = "cpu"
	NameMemory    = "memory"
	NameFan       = "fan"
	NameSystem    = "system"
	NameSentinel  = "sentinel"
	NameServices  = "services"
)

// Probe reads one subsystem's observable state and reports it as a
// Section. Implementations must be read-only, bound their own external
// calls (subprocess, file read, HTTP), and absorb every failure: a
// probe that cannot observe anything returns an empty Section, never
// an error and never a panic that escapes Collect.
type Probe interface {
	// Name returns the fixed subsystem name this probe reports under.
	Name() string

	// Collect gathers the subsystem's current fields. The returned
	// Section may be empty but must not be nil.
	Collect(ctx context.Context) reading.Section
}
