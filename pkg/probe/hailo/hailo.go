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

package hailo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hailodash/hailodash/pkg/defaults"
	"github.com/hailodash/hailodash/pkg/probe/fileutil"
	"github.com/hailodash/hailodash/pkg/probe/shell"
	"github.com/hailodash/hailodash/pkg/reading"
)

const subsystemName = "hailo"

// Onboard LPDDR5X per the Hailo-10H datasheet. Not observable at runtime;
// query_performance_stats only covers the SoC OS heap.
const ddrTotalGB = 8

// identifyTimeout bounds hailortcli, which blocks for several seconds
// when the device firmware is unresponsive.
const identifyTimeout = defaults.IdentifyTimeout

// PCIe link attributes mirrored from sysfs into the section as
// pcie_<attr>.
var linkAttrs = []string{
	"current_link_speed",
	"current_link_width",
	"max_link_speed",
	"max_link_width",
}

var identifyFields = []struct {
	key string
	re  *regexp.Regexp
}{
	{"fw_version", regexp.MustCompile(`Firmware Version:\s+(.+)`)},
	{"protocol_version", regexp.MustCompile(`Control Protocol Version:\s+(\d+)`)},
	{"logger_version", regexp.MustCompile(`Logger Version:\s+(\d+)`)},
	{"architecture", regexp.MustCompile(`Device Architecture:\s+(.+)`)},
}

// Collector reports the accelerator's presence, identity, PCIe link
// state, and the processes currently holding the device node. It never
// opens the device itself: identity goes through hailortcli (safe to
// run alongside inference) and holder detection goes through lsof, with
// our own process filtered out so the dashboard does not report itself
// as a consumer.
type Collector struct {
	// DevicePath is the accelerator character device, default /dev/hailo0.
	DevicePath string

	// SysfsRoot is where PCIe device attributes live, default /sys/bus/pci/devices.
	SysfsRoot string

	// ProcRoot is used to resolve holder process names, default /proc.
	ProcRoot string

	// Runner executes lspci and lsof.
	Runner shell.Runner

	// IdentifyRunner executes hailortcli with its longer bound.
	IdentifyRunner shell.Runner

	// OwnPID is excluded from device holder enumeration.
	OwnPID int
}

// NewCollector creates a Collector with production defaults.
func NewCollector() *Collector {
	return &Collector{
		DevicePath:     "/dev/hailo0",
		SysfsRoot:      "/sys/bus/pci/devices",
		ProcRoot:       "/proc",
		Runner:         shell.NewRunner(0),
		IdentifyRunner: shell.NewRunner(identifyTimeout),
		OwnPID:         os.Getpid(),
	}
}

// Name implements the probe contract.
func (c *Collector) Name() string {
	return subsystemName
}

// Collect gathers the accelerator section. The device being absent is a
// normal operating condition: the section then carries present=false and
// an explanatory error marker instead of fields.
func (c *Collector) Collect(ctx context.Context) reading.Section {
	b := reading.NewSectionBuilder().
		SetBool("present", false).
		SetBool("firmware_ok", false).
		SetInt("ddr_total_gb", ddrTotalGB)

	// PCIe detection first: the device can be physically present on the
	// bus even when the firmware (and thus /dev/hailo0) is down.
	var sysfsPath string
	if out, err := c.Runner.Output(ctx, "lspci"); err == nil {
		if addr, desc, ok := parseLspci(out); ok {
			b.SetString("device_id", addr)
			b.SetString("pcie_desc", desc)
			b.SetBool("present", true)
			sysfsPath = filepath.Join(c.SysfsRoot, addr)
		}
	} else {
		slog.Debug("lspci unavailable", "error", err)
	}

	if _, err := os.Stat(c.DevicePath); err != nil {
		b.SetString("error", fmt.Sprintf("%s not found – reboot may be needed", c.DevicePath))
		return b.Build()
	}

	if sysfsPath != "" {
		parser := fileutil.NewParser()
		for _, attr := range linkAttrs {
			if val, err := parser.ReadTrimmed(filepath.Join(sysfsPath, attr)); err == nil && val != "" {
				b.SetString("pcie_"+attr, val)
			}
		}
	}

	// Identity requires the firmware to be responsive.
	if fields := c.identify(ctx); len(fields) > 0 {
		b.SetBool("firmware_ok", true)
		for k, v := range fields {
			b.SetString(k, v)
		}
	}

	c.collectHolders(ctx, b)

	return b.Build()
}

// identify parses `hailortcli fw-control identify` output.
func (c *Collector) identify(ctx context.Context) map[string]string {
	out, err := c.IdentifyRunner.Output(ctx, "hailortcli", "fw-control", "identify")
	if err != nil {
		slog.Debug("hailortcli identify failed", "error", err)
		return nil
	}
	return parseIdentify(out)
}

// collectHolders enumerates processes holding the device node via lsof.
// The counts are always populated so a device transitioning to idle
// still reports loaded_networks=0 rather than dropping the fields.
func (c *Collector) collectHolders(ctx context.Context, b *reading.SectionBuilder) {
	pids := []string{}
	if out, err := c.Runner.Output(ctx, "lsof", "-F", "p", c.DevicePath); err == nil {
		pids = parseLsofPIDs(out, fmt.Sprintf("%d", c.OwnPID))
	}

	names := make([]string, 0, len(pids))
	parser := fileutil.NewParser()
	for _, pid := range pids {
		name, err := parser.ReadTrimmed(filepath.Join(c.ProcRoot, pid, "comm"))
		if err != nil || name == "" {
			name = pid
		}
		names = append(names, name)
	}

	b.SetInt("loaded_networks", len(pids))
	b.SetStrings("network_names", names)
}

// parseLspci finds the accelerator in lspci output and returns its bus
// address and a cleaned-up description.
func parseLspci(out string) (addr, desc string, ok bool) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(strings.ToLower(line), "hailo") {
			continue
		}
		fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
		if len(fields) < 2 {
			continue
		}
		addr = fields[0]
		desc = strings.TrimLeft(strings.ReplaceAll(fields[1], "Hailo Technologies Ltd. ", ""), ": ")
		return addr, strings.TrimSpace(desc), true
	}
	return "", "", false
}

// parseIdentify extracts identity fields from hailortcli output.
func parseIdentify(out string) map[string]string {
	result := make(map[string]string)
	for _, f := range identifyFields {
		if m := f.re.FindStringSubmatch(out); m != nil {
			result[f.key] = strings.TrimSpace(m[1])
		}
	}
	return result
}

// parseLsofPIDs extracts PIDs from `lsof -F p` output, excluding our own.
func parseLsofPIDs(out, ownPID string) []string {
	pids := []string{}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "p") {
			continue
		}
		pid := strings.TrimSpace(line[1:])
		if pid == "" || pid == ownPID {
			continue
		}
		pids = append(pids, pid)
	}
	return pids
}
