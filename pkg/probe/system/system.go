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

package system

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hailodash/hailodash/pkg/probe/fileutil"
	"github.com/hailodash/hailodash/pkg/probe/shell"
	"github.com/hailodash/hailodash/pkg/reading"
)

const subsystemName = "system"

// Collector reports host identity and inventory: board model, uptime,
// CPU count, root filesystem usage, and the PCIe device list.
type Collector struct {
	// UptimePath is /proc/uptime unless overridden for tests.
	UptimePath string

	// ModelPath is /proc/device-tree/model unless overridden for tests.
	ModelPath string

	// CPUInfoPath is /proc/cpuinfo unless overridden for tests.
	CPUInfoPath string

	// Runner executes df and lspci.
	Runner shell.Runner
}

// NewCollector creates a Collector with production defaults.
func NewCollector() *Collector {
	return &Collector{
		UptimePath:  "/proc/uptime",
		ModelPath:   "/proc/device-tree/model",
		CPUInfoPath: "/proc/cpuinfo",
		Runner:      shell.NewRunner(0),
	}
}

// Name implements the probe contract.
func (c *Collector) Name() string {
	return subsystemName
}

// Collect gathers the system section.
func (c *Collector) Collect(ctx context.Context) reading.Section {
	b := reading.NewSectionBuilder()
	parser := fileutil.NewParser()

	if val, err := parser.ReadTrimmed(c.UptimePath); err == nil {
		if fields := strings.Fields(val); len(fields) > 0 {
			if s, err := strconv.ParseFloat(fields[0], 64); err == nil {
				b.SetFloat64("uptime_s", s)
				b.SetString("uptime", formatUptime(s))
			}
		}
	}

	if val, err := parser.ReadTrimmed(c.ModelPath); err == nil && val != "" {
		b.SetString("model", val)
	}

	if lines, err := parser.GetLines(c.CPUInfoPath); err == nil {
		count := 0
		for _, line := range lines {
			if strings.HasPrefix(line, "processor") {
				count++
			}
		}
		if count > 0 {
			b.SetInt("cpu_count", count)
		}
	}

	c.collectDisk(ctx, b)
	c.collectPCIe(ctx, b)

	return b.Build()
}

// collectDisk parses `df -k /` for root filesystem usage.
func (c *Collector) collectDisk(ctx context.Context, b *reading.SectionBuilder) {
	out, err := c.Runner.Output(ctx, "df", "-k", "/")
	if err != nil {
		return
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return
	}
	parts := strings.Fields(lines[1])
	if len(parts) < 5 {
		return
	}

	total, err1 := strconv.ParseInt(parts[1], 10, 64)
	used, err2 := strconv.ParseInt(parts[2], 10, 64)
	pct, err3 := strconv.Atoi(strings.TrimSuffix(parts[4], "%"))
	if err1 != nil || err2 != nil || err3 != nil {
		return
	}

	b.SetInt64("disk_total", total*1024)
	b.SetInt64("disk_used", used*1024)
	b.SetInt("disk_pct", pct)
}

// collectPCIe captures the full lspci inventory as {addr, desc} pairs.
func (c *Collector) collectPCIe(ctx context.Context, b *reading.SectionBuilder) {
	out, err := c.Runner.Output(ctx, "lspci")
	if err != nil {
		return
	}

	devices := []map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		fields := strings.SplitN(line, " ", 2)
		if len(fields) < 2 {
			continue
		}
		devices = append(devices, map[string]string{
			"addr": fields[0],
			"desc": fields[1],
		})
	}
	if len(devices) > 0 {
		b.SetMaps("pcie_devices", devices)
	}
}

// formatUptime renders seconds as "3d 4h 7m" (days omitted when zero).
func formatUptime(s float64) string {
	total := int64(s)
	days := total / 86400
	hours := (total % 86400) / 3600
	mins := (total % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
