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

package unit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/hailodash/hailodash/pkg/reading"
)

const subsystemName = "services"

// DefaultServices are the units that matter on the appliance: sentinel
// owns /dev/hailo0 exclusively while inferring, and hailort is the
// vendor runtime daemon.
var DefaultServices = []string{
	"sentinel.service",
	"hailort.service",
}

// lister is the slice of the systemd dbus connection we use, extracted
// so tests can substitute a fake.
type lister interface {
	ListUnitsByNamesContext(ctx context.Context, units []string) ([]dbus.UnitStatus, error)
	Close()
}

// Collector reports the active/sub state of a fixed set of systemd
// units over dbus. A host without systemd (or without dbus access)
// yields an empty section.
type Collector struct {
	// Services are the unit names to report on.
	Services []string

	// connect opens the dbus connection; overridable in tests.
	connect func(ctx context.Context) (lister, error)
}

// NewCollector creates a Collector for the given units; nil selects
// DefaultServices.
func NewCollector(services []string) *Collector {
	if len(services) == 0 {
		services = DefaultServices
	}
	return &Collector{
		Services: services,
		connect: func(ctx context.Context) (lister, error) {
			return dbus.NewSystemConnectionContext(ctx)
		},
	}
}

// Name implements the probe contract.
func (c *Collector) Name() string {
	return subsystemName
}

// Collect reports, per unit, <name>_state and <name>_sub fields
// (e.g. sentinel_state="active", sentinel_sub="running").
func (c *Collector) Collect(ctx context.Context) reading.Section {
	conn, err := c.connect(ctx)
	if err != nil {
		slog.Debug("systemd dbus unavailable", "error", err)
		return reading.Section{}
	}
	defer conn.Close()

	statuses, err := conn.ListUnitsByNamesContext(ctx, c.Services)
	if err != nil {
		slog.Debug("failed to list systemd units", "error", err)
		return reading.Section{}
	}

	b := reading.NewSectionBuilder()
	for _, st := range statuses {
		base := strings.TrimSuffix(st.Name, ".service")
		b.SetString(base+"_state", st.ActiveState)
		b.SetString(base+"_sub", st.SubState)
	}
	return b.Build()
}
