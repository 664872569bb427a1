package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryMatchesNames(t *testing.T) {
	probes := Registry(NewDefaultFactory())
	names := Names()
	require.Len(t, probes, len(names))

	for i, p := range probes {
		assert.Equal(t, names[i], p.Name(), "registry order must match Names()")
	}
}

func TestFactoryOptions(t *testing.T) {
	f := NewDefaultFactory(
		WithPerfQueryPath("/opt/hailo/hailo_perf_query"),
		WithSentinelURL("http://localhost:9999/api/perf"),
		WithServices([]string{"sentinel.service"}),
	)

	assert.Equal(t, "/opt/hailo/hailo_perf_query", f.PerfQueryPath)
	assert.Equal(t, "http://localhost:9999/api/perf", f.SentinelURL)
	assert.Equal(t, []string{"sentinel.service"}, f.Services)

	// options must reach the constructed probes
	probes := Registry(f)
	require.Len(t, probes, len(Names()))
}

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range Names() {
		assert.False(t, seen[n], "duplicate subsystem name %q", n)
		seen[n] = true
	}
}
