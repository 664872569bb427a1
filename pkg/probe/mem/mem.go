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

package mem

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/hailodash/hailodash/pkg/probe/fileutil"
	"github.com/hailodash/hailodash/pkg/reading"
)

const subsystemName = "memory"

// Collector derives host RAM and swap usage from /proc/meminfo.
type Collector struct {
	// MeminfoPath is /proc/meminfo unless overridden for tests.
	MeminfoPath string
}

// NewCollector creates a Collector with production defaults.
func NewCollector() *Collector {
	return &Collector{
		MeminfoPath: "/proc/meminfo",
	}
}

// Name implements the probe contract.
func (c *Collector) Name() string {
	return subsystemName
}

// Collect gathers the memory section: total/used/available/used_pct for
// RAM and swap_total/swap_used/swap_pct when swap is configured.
func (c *Collector) Collect(ctx context.Context) reading.Section {
	b := reading.NewSectionBuilder()

	fields, err := fileutil.NewParser().GetMap(c.MeminfoPath)
	if err != nil {
		return b.Build()
	}

	total, haveTotal := kbField(fields, "MemTotal")
	available, haveAvailable := kbField(fields, "MemAvailable")
	if haveTotal && haveAvailable && total > 0 {
		used := total - available
		b.SetInt64("total", total)
		b.SetInt64("used", used)
		b.SetInt64("available", available)
		b.SetFloat64("used_pct", roundPct(used, total))
	}

	swapTotal, haveSwapTotal := kbField(fields, "SwapTotal")
	swapFree, haveSwapFree := kbField(fields, "SwapFree")
	if haveSwapTotal && haveSwapFree {
		swapUsed := swapTotal - swapFree
		b.SetInt64("swap_total", swapTotal)
		b.SetInt64("swap_used", swapUsed)
		b.SetFloat64("swap_pct", roundPct(swapUsed, max(swapTotal, 1)))
	}

	return b.Build()
}

// kbField parses a meminfo value ("8388608 kB") into bytes.
func kbField(fields map[string]string, key string) (int64, bool) {
	raw, ok := fields[key]
	if !ok {
		return 0, false
	}
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return 0, false
	}
	kb, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return kb * 1024, true
}

// roundPct returns used/total as a percentage with one decimal.
func roundPct(used, total int64) float64 {
	return math.Round(float64(used)/float64(total)*1000) / 10
}
