package hailoperf

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	out string
	err error
}

func (s *stubRunner) Output(context.Context, string, ...string) (string, error) {
	return s.out, s.err
}

const perfJSON = `{
  "cpu_utilization": 12.5,
  "ram_size_total": 6291456,
  "ram_size_used": 131072,
  "nnc_utilization": 0,
  "dsp_utilization": 0,
  "perf_ok": true,
  "on_die_temperature": 52.3,
  "on_die_voltage": 800,
  "bist_failure_mask": 0,
  "health_ok": true
}`

func TestCollectPassesFieldsThrough(t *testing.T) {
	c := &Collector{BinaryPath: "hailo_perf_query", Runner: &stubRunner{out: perfJSON}}

	s := c.Collect(context.Background())

	cpu, err := s.GetFloat64("cpu_utilization")
	require.NoError(t, err)
	assert.Equal(t, 12.5, cpu)

	temp, err := s.GetFloat64("on_die_temperature")
	require.NoError(t, err)
	assert.Equal(t, 52.3, temp)

	ramTotal, err := s.GetFloat64("ram_size_total")
	require.NoError(t, err)
	assert.Equal(t, 6291456.0, ramTotal)

	perfOK, err := s.GetBool("perf_ok")
	require.NoError(t, err)
	assert.True(t, perfOK)

	healthOK, err := s.GetBool("health_ok")
	require.NoError(t, err)
	assert.True(t, healthOK)
}

func TestCollectBinaryFails(t *testing.T) {
	c := &Collector{Runner: &stubRunner{err: fmt.Errorf("exit status 1")}}
	assert.Empty(t, c.Collect(context.Background()))
}

func TestCollectEmptyOutput(t *testing.T) {
	c := &Collector{Runner: &stubRunner{out: ""}}
	assert.Empty(t, c.Collect(context.Background()))
}

func TestCollectMalformedOutput(t *testing.T) {
	c := &Collector{Runner: &stubRunner{out: "{not json"}}
	assert.Empty(t, c.Collect(context.Background()))
}

func TestName(t *testing.T) {
	assert.Equal(t, "hailo_perf", NewCollector("").Name())
}
