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

package cpu

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hailodash/hailodash/pkg/probe/fileutil"
	"github.com/hailodash/hailodash/pkg/probe/shell"
	"github.com/hailodash/hailodash/pkg/reading"
)

const subsystemName = "cpu"

var (
	tempRe     = regexp.MustCompile(`temp=([\d.]+)`)
	clockRe    = regexp.MustCompile(`frequency\(\d+\)=(\d+)`)
	throttleRe = regexp.MustCompile(`throttled=0x([0-9a-fA-F]+)`)
	voltsRe    = regexp.MustCompile(`volt=([\d.]+)V`)
)

// get_throttled bit meanings on the Pi firmware.
var throttleBits = []struct {
	mask uint64
	flag string
}{
	{0x1, "under-voltage"},
	{0x2, "freq-capped"},
	{0x4, "throttled"},
	{0x8, "soft-temp-limit"},
}

// Collector reads the host SoC's thermal, clock, throttle, and load
// state through the Pi firmware interface (vcgencmd) and /proc/loadavg.
// Each vcgencmd query is independent: a partially working firmware
// still yields the fields it can answer.
type Collector struct {
	// LoadavgPath is /proc/loadavg unless overridden for tests.
	LoadavgPath string

	// Runner executes vcgencmd.
	Runner shell.Runner
}

// NewCollector creates a Collector with production defaults.
func NewCollector() *Collector {
	return &Collector{
		LoadavgPath: "/proc/loadavg",
		Runner:      shell.NewRunner(0),
	}
}

// Name implements the probe contract.
func (c *Collector) Name() string {
	return subsystemName
}

// Collect gathers the cpu section.
func (c *Collector) Collect(ctx context.Context) reading.Section {
	b := reading.NewSectionBuilder()

	if out, err := c.Runner.Output(ctx, "vcgencmd", "measure_temp"); err == nil {
		if m := tempRe.FindStringSubmatch(out); m != nil {
			if t, err := strconv.ParseFloat(m[1], 64); err == nil {
				b.SetFloat64("temp_c", t)
				b.SetFloat64("temp_f", math.Round((t*9/5+32)*10)/10)
			}
		}
	}

	if out, err := c.Runner.Output(ctx, "vcgencmd", "measure_clock", "arm"); err == nil {
		if m := clockRe.FindStringSubmatch(out); m != nil {
			if hz, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				b.SetFloat64("freq_mhz", math.Round(float64(hz)/1e6))
			}
		}
	}

	if out, err := c.Runner.Output(ctx, "vcgencmd", "get_throttled"); err == nil {
		if m := throttleRe.FindStringSubmatch(out); m != nil {
			if code, err := strconv.ParseUint(m[1], 16, 64); err == nil {
				b.SetUint64("throttle_code", code)
				b.SetBool("throttle_ok", code == 0)
				flags := []string{}
				for _, tb := range throttleBits {
					if code&tb.mask != 0 {
						flags = append(flags, tb.flag)
					}
				}
				b.SetStrings("throttle_flags", flags)
			}
		}
	}

	if out, err := c.Runner.Output(ctx, "vcgencmd", "measure_volts", "core"); err == nil {
		if m := voltsRe.FindStringSubmatch(out); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				b.SetFloat64("core_v", v)
			}
		}
	}

	c.collectLoad(b)

	return b.Build()
}

func (c *Collector) collectLoad(b *reading.SectionBuilder) {
	content, err := fileutil.NewParser().ReadTrimmed(c.LoadavgPath)
	if err != nil {
		return
	}
	parts := strings.Fields(content)
	if len(parts) < 3 {
		return
	}

	keys := []string{"load_1", "load_5", "load_15"}
	for i, key := range keys {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return
		}
		b.SetFloat64(key, v)
	}
}
