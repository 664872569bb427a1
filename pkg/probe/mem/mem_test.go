package mem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(t *testing.T, meminfo string) *Collector {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meminfo")
	if meminfo != "" {
		require.NoError(t, os.WriteFile(path, []byte(meminfo), 0o600))
	}
	return &Collector{MeminfoPath: path}
}

func TestCollectDerivesUsage(t *testing.T) {
	// 8 GiB total, 4 GiB available
	c := newTestCollector(t, `MemTotal:        8388608 kB
MemFree:         1048576 kB
MemAvailable:    4194304 kB
SwapTotal:       2097152 kB
SwapFree:        2097152 kB
`)

	s := c.Collect(context.Background())

	total, _ := s.GetInt64("total")
	assert.Equal(t, int64(8589934592), total)
	used, _ := s.GetInt64("used")
	assert.Equal(t, int64(4294967296), used)
	available, _ := s.GetInt64("available")
	assert.Equal(t, int64(4294967296), available)
	pct, _ := s.GetFloat64("used_pct")
	assert.Equal(t, 50.0, pct)

	swapTotal, _ := s.GetInt64("swap_total")
	assert.Equal(t, int64(2147483648), swapTotal)
	swapUsed, _ := s.GetInt64("swap_used")
	assert.Equal(t, int64(0), swapUsed)
	swapPct, _ := s.GetFloat64("swap_pct")
	assert.Equal(t, 0.0, swapPct)
}

func TestCollectNoSwap(t *testing.T) {
	c := newTestCollector(t, `MemTotal:        4194304 kB
MemAvailable:    3145728 kB
SwapTotal:             0 kB
SwapFree:              0 kB
`)

	s := c.Collect(context.Background())

	pct, _ := s.GetFloat64("used_pct")
	assert.Equal(t, 25.0, pct)

	// zero swap never divides by zero
	swapPct, err := s.GetFloat64("swap_pct")
	require.NoError(t, err)
	assert.Equal(t, 0.0, swapPct)
}

func TestCollectMissingFields(t *testing.T) {
	c := newTestCollector(t, "MemTotal:        8388608 kB\n")
	s := c.Collect(context.Background())
	assert.False(t, s.Has("total"))
	assert.False(t, s.Has("used_pct"))
}

func TestCollectUnreadable(t *testing.T) {
	c := newTestCollector(t, "")
	assert.Empty(t, c.Collect(context.Background()))
}

func TestName(t *testing.T) {
	assert.Equal(t, "memory", NewCollector().Name())
}
