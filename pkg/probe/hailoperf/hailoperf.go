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

package hailoperf

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hailodash/hailodash/pkg/defaults"
	"github.com/hailodash/hailodash/pkg/probe/shell"
	"github.com/hailodash/hailodash/pkg/reading"
)

const subsystemName = "hailo_perf"

// queryTimeout bounds the companion binary. It opens the device control
// channel only, which is safe alongside running inference but can stall
// when the firmware is wedged.
const queryTimeout = defaults.PerfQueryTimeout

// Collector invokes the hailo_perf_query companion binary and passes
// its JSON output through as a section: cpu_utilization,
// nnc_utilization, ram_size_total, ram_size_used, dsp_utilization,
// on_die_temperature, on_die_voltage, bist_failure_mask plus the
// perf_ok/health_ok markers. Supported on Hailo-10/15 only; on anything
// else the binary exits non-zero and the section stays empty.
type Collector struct {
	// BinaryPath locates hailo_perf_query. Default is the executable's
	// own directory, matching how the binary ships next to the daemon.
	BinaryPath string

	// Runner executes the binary.
	Runner shell.Runner
}

// DefaultBinaryPath resolves hailo_perf_query next to the running
// executable, falling back to PATH lookup when that cannot be resolved.
func DefaultBinaryPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "hailo_perf_query"
	}
	return filepath.Join(filepath.Dir(exe), "hailo_perf_query")
}

// NewCollector creates a Collector with production defaults.
func NewCollector(binaryPath string) *Collector {
	if binaryPath == "" {
		binaryPath = DefaultBinaryPath()
	}
	return &Collector{
		BinaryPath: binaryPath,
		Runner:     shell.NewRunner(queryTimeout),
	}
}

// Name implements the probe contract.
func (c *Collector) Name() string {
	return subsystemName
}

// Collect runs the companion binary and parses its single JSON object.
// Any failure (binary missing, non-zero exit, timeout, malformed
// output) yields an empty section.
func (c *Collector) Collect(ctx context.Context) reading.Section {
	out, err := c.Runner.Output(ctx, c.BinaryPath)
	if err != nil || out == "" {
		slog.Debug("perf query unavailable", "binary", c.BinaryPath, "error", err)
		return reading.Section{}
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		slog.Debug("perf query produced malformed JSON", "error", err)
		return reading.Section{}
	}

	section := make(reading.Section, len(raw))
	for k, v := range raw {
		section[k] = reading.ToReading(v)
	}
	return section
}
