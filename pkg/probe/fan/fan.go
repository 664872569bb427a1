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

package fan

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/hailodash/hailodash/pkg/probe/fileutil"
	"github.com/hailodash/hailodash/pkg/reading"
)

const subsystemName = "fan"

// maxHwmon bounds the hwmon index scan. The Pi's fan registers under a
// low index; the bound just keeps the scan cheap.
const maxHwmon = 6

// Collector reads the cooling fan RPM from the first hwmon device that
// exposes a fan1_input attribute.
type Collector struct {
	// HwmonRoot is /sys/class/hwmon unless overridden for tests.
	HwmonRoot string
}

// NewCollector creates a Collector with production defaults.
func NewCollector() *Collector {
	return &Collector{
		HwmonRoot: "/sys/class/hwmon",
	}
}

// Name implements the probe contract.
func (c *Collector) Name() string {
	return subsystemName
}

// Collect scans hwmon0..hwmon5 for fan1_input. No fan (or a passive
// cooler) yields an empty section.
func (c *Collector) Collect(ctx context.Context) reading.Section {
	parser := fileutil.NewParser()

	for i := 0; i < maxHwmon; i++ {
		path := filepath.Join(c.HwmonRoot, fmt.Sprintf("hwmon%d", i), "fan1_input")
		val, err := parser.ReadTrimmed(path)
		if err != nil {
			continue
		}
		rpm, err := strconv.Atoi(val)
		if err != nil {
			continue
		}
		return reading.NewSectionBuilder().
			SetInt("rpm", rpm).
			SetInt("hwmon", i).
			Build()
	}

	return reading.Section{}
}
