package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dfOut = `Filesystem     1K-blocks     Used Available Use% Mounted on
/dev/mmcblk0p2 122755904 14680064 101822464  13% /`

const lspciOut = `0000:00:00.0 PCI bridge: Broadcom Inc. BCM2712 PCIe Bridge (rev 30)
0000:01:00.0 Co-processor: Hailo Technologies Ltd. Hailo-8 AI Processor (rev 01)`

type stubRunner struct {
	out map[string]string
}

func (s *stubRunner) Output(_ context.Context, name string, _ ...string) (string, error) {
	if out, ok := s.out[name]; ok {
		return out, nil
	}
	return "", fmt.Errorf("command failed")
}

func newTestCollector(t *testing.T, runner *stubRunner) *Collector {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	return &Collector{
		UptimePath:  write("uptime", "272520.25 1032180.50\n"),
		ModelPath:   write("model", "Raspberry Pi 5 Model B Rev 1.0\x00"),
		CPUInfoPath: write("cpuinfo", "processor\t: 0\nmodel name\t: Cortex-A76\nprocessor\t: 1\nprocessor\t: 2\nprocessor\t: 3\n"),
		Runner:      runner,
	}
}

func TestCollect(t *testing.T) {
	c := newTestCollector(t, &stubRunner{out: map[string]string{
		"df":    dfOut,
		"lspci": lspciOut,
	}})

	s := c.Collect(context.Background())

	uptime, _ := s.GetFloat64("uptime_s")
	assert.Equal(t, 272520.25, uptime)
	human, _ := s.GetString("uptime")
	assert.Equal(t, "3d 3h 42m", human)

	model, _ := s.GetString("model")
	assert.Equal(t, "Raspberry Pi 5 Model B Rev 1.0", model)

	cpus, _ := s.GetInt64("cpu_count")
	assert.Equal(t, int64(4), cpus)

	total, _ := s.GetInt64("disk_total")
	assert.Equal(t, int64(122755904*1024), total)
	used, _ := s.GetInt64("disk_used")
	assert.Equal(t, int64(14680064*1024), used)
	pct, _ := s.GetInt64("disk_pct")
	assert.Equal(t, int64(13), pct)

	devices := s["pcie_devices"].Any().([]map[string]string)
	require.Len(t, devices, 2)
	assert.Equal(t, "0000:01:00.0", devices[1]["addr"])
	assert.Contains(t, devices[1]["desc"], "Hailo")
}

func TestCollectToolsAbsent(t *testing.T) {
	c := newTestCollector(t, &stubRunner{})

	s := c.Collect(context.Background())

	// file-backed fields still present
	assert.True(t, s.Has("uptime_s"))
	assert.True(t, s.Has("model"))
	assert.False(t, s.Has("disk_total"))
	assert.False(t, s.Has("pcie_devices"))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0h 5m", formatUptime(320))
	assert.Equal(t, "2h 0m", formatUptime(7205))
	assert.Equal(t, "1d 0h 1m", formatUptime(86460))
}

func TestName(t *testing.T) {
	assert.Equal(t, "system", NewCollector().Name())
}
