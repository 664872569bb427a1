package unit

import (
	"context"
	"fmt"
	"testing"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	statuses []dbus.UnitStatus
	err      error
	closed   bool
}

func (f *fakeConn) ListUnitsByNamesContext(context.Context, []string) ([]dbus.UnitStatus, error) {
	return f.statuses, f.err
}

func (f *fakeConn) Close() { f.closed = true }

func newTestCollector(conn *fakeConn, connErr error) *Collector {
	c := NewCollector(nil)
	c.connect = func(context.Context) (lister, error) {
		if connErr != nil {
			return nil, connErr
		}
		return conn, nil
	}
	return c
}

func TestCollectReportsUnitStates(t *testing.T) {
	conn := &fakeConn{statuses: []dbus.UnitStatus{
		{Name: "sentinel.service", ActiveState: "active", SubState: "running"},
		{Name: "hailort.service", ActiveState: "inactive", SubState: "dead"},
	}}

	s := newTestCollector(conn, nil).Collect(context.Background())

	state, err := s.GetString("sentinel_state")
	require.NoError(t, err)
	assert.Equal(t, "active", state)

	sub, _ := s.GetString("sentinel_sub")
	assert.Equal(t, "running", sub)

	state, _ = s.GetString("hailort_state")
	assert.Equal(t, "inactive", state)

	assert.True(t, conn.closed, "dbus connection must be closed after the cycle")
}

func TestCollectDbusUnavailable(t *testing.T) {
	s := newTestCollector(nil, fmt.Errorf("no dbus")).Collect(context.Background())
	assert.Empty(t, s)
}

func TestCollectListFails(t *testing.T) {
	conn := &fakeConn{err: fmt.Errorf("permission denied")}
	s := newTestCollector(conn, nil).Collect(context.Background())
	assert.Empty(t, s)
	assert.True(t, conn.closed)
}

func TestName(t *testing.T) {
	c := NewCollector(nil)
	assert.Equal(t, "services", c.Name())
	assert.Equal(t, DefaultServices, c.Services)
}
