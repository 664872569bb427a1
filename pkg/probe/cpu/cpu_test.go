package cpu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner keys canned output on the vcgencmd subcommand.
type stubRunner struct {
	out map[string]string
}

func (s *stubRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	if name != "vcgencmd" || len(args) == 0 {
		return "", fmt.Errorf("unexpected command %q", name)
	}
	key := strings.Join(args, " ")
	if out, ok := s.out[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("command failed")
}

func newTestCollector(t *testing.T, runner *stubRunner, loadavg string) *Collector {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loadavg")
	if loadavg != "" {
		require.NoError(t, os.WriteFile(path, []byte(loadavg), 0o600))
	}
	return &Collector{LoadavgPath: path, Runner: runner}
}

func TestCollectAllFields(t *testing.T) {
	runner := &stubRunner{out: map[string]string{
		"measure_temp":      "temp=48.8'C",
		"measure_clock arm": "frequency(0)=2400000000",
		"get_throttled":     "throttled=0x0",
		"measure_volts core": "volt=0.7200V",
	}}
	c := newTestCollector(t, runner, "0.52 0.58 0.59 1/403 12345\n")

	s := c.Collect(context.Background())

	temp, _ := s.GetFloat64("temp_c")
	assert.Equal(t, 48.8, temp)
	tempF, _ := s.GetFloat64("temp_f")
	assert.Equal(t, 119.8, tempF)

	freq, _ := s.GetFloat64("freq_mhz")
	assert.Equal(t, 2400.0, freq)

	ok, _ := s.GetBool("throttle_ok")
	assert.True(t, ok)
	code, _ := s.GetInt64("throttle_code")
	assert.Equal(t, int64(0), code)
	assert.Empty(t, s["throttle_flags"].Any().([]string))

	volts, _ := s.GetFloat64("core_v")
	assert.Equal(t, 0.72, volts)

	l1, _ := s.GetFloat64("load_1")
	assert.Equal(t, 0.52, l1)
	l15, _ := s.GetFloat64("load_15")
	assert.Equal(t, 0.59, l15)
}

func TestCollectThrottleFlags(t *testing.T) {
	runner := &stubRunner{out: map[string]string{
		"get_throttled": "throttled=0x50005",
	}}
	c := newTestCollector(t, runner, "")

	s := c.Collect(context.Background())

	ok, _ := s.GetBool("throttle_ok")
	assert.False(t, ok)
	flags := s["throttle_flags"].Any().([]string)
	assert.Equal(t, []string{"under-voltage", "throttled"}, flags)
}

func TestCollectFirmwareAbsent(t *testing.T) {
	c := newTestCollector(t, &stubRunner{}, "1.00 0.90 0.80 2/100 999\n")

	s := c.Collect(context.Background())

	// only loadavg fields survive without vcgencmd
	assert.False(t, s.Has("temp_c"))
	assert.False(t, s.Has("freq_mhz"))
	l5, err := s.GetFloat64("load_5")
	require.NoError(t, err)
	assert.Equal(t, 0.9, l5)
}

func TestCollectEverythingAbsent(t *testing.T) {
	c := newTestCollector(t, &stubRunner{}, "")
	assert.Empty(t, c.Collect(context.Background()))
}

func TestName(t *testing.T) {
	assert.Equal(t, "cpu", NewCollector().Name())
}
