package fan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFindsFan(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "hwmon0"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "hwmon2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hwmon2", "fan1_input"), []byte("2104\n"), 0o600))

	c := &Collector{HwmonRoot: root}
	s := c.Collect(context.Background())

	rpm, err := s.GetInt64("rpm")
	require.NoError(t, err)
	assert.Equal(t, int64(2104), rpm)

	idx, err := s.GetInt64("hwmon")
	require.NoError(t, err)
	assert.Equal(t, int64(2), idx)
}

func TestCollectNoFan(t *testing.T) {
	c := &Collector{HwmonRoot: t.TempDir()}
	assert.Empty(t, c.Collect(context.Background()))
}

func TestCollectGarbageValue(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "hwmon0"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hwmon0", "fan1_input"), []byte("spinning\n"), 0o600))

	c := &Collector{HwmonRoot: root}
	assert.Empty(t, c.Collect(context.Background()))
}

func TestName(t *testing.T) {
	assert.Equal(t, "fan", NewCollector().Name())
}
