package sentinel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectPassesFieldsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fps": 30.0, "avg_fps": 28.5, "drop_rate": 0.0, "ts": 1756500000.5}`))
	}))
	defer srv.Close()

	c := &Collector{URL: srv.URL, Client: srv.Client()}
	s := c.Collect(context.Background())

	fps, err := s.GetFloat64("fps")
	require.NoError(t, err)
	assert.Equal(t, 30.0, fps)

	avg, _ := s.GetFloat64("avg_fps")
	assert.Equal(t, 28.5, avg)

	drop, _ := s.GetFloat64("drop_rate")
	assert.Equal(t, 0.0, drop)

	ts, _ := s.GetFloat64("ts")
	assert.Equal(t, 1756500000.5, ts)
}

func TestCollectUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := &Collector{URL: srv.URL, Client: http.DefaultClient}
	assert.Empty(t, c.Collect(context.Background()))
}

func TestCollectNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := &Collector{URL: srv.URL, Client: srv.Client()}
	assert.Empty(t, c.Collect(context.Background()))
}

func TestCollectMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := &Collector{URL: srv.URL, Client: srv.Client()}
	assert.Empty(t, c.Collect(context.Background()))
}

func TestName(t *testing.T) {
	c := NewCollector("")
	assert.Equal(t, "sentinel", c.Name())
	assert.Equal(t, DefaultURL, c.URL)
}
