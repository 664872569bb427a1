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

package sentinel

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/hailodash/hailodash/pkg/defaults"
	"github.com/hailodash/hailodash/pkg/reading"
)

const subsystemName = "sentinel"

// DefaultURL is the sentinel service's inference perf feed on loopback.
const DefaultURL = "http://localhost:8181/api/perf"

// requestTimeout keeps a wedged peer from stalling the refresh cycle.
const requestTimeout = defaults.SentinelRequestTimeout

// maxBody bounds the reply size; the perf feed is a handful of numbers.
const maxBody = 1 << 16

// Collector queries the sentinel inference service for its performance
// feed (fps, avg_fps, drop_rate, ts) and passes the fields through
// unchanged. Sentinel being down is a normal operating condition.
type Collector struct {
	// URL of the perf feed, default DefaultURL.
	URL string

	// Client is the HTTP client used for the query.
	Client *http.Client
}

// NewCollector creates a Collector with production defaults.
func NewCollector(url string) *Collector {
	if url == "" {
		url = DefaultURL
	}
	return &Collector{
		URL:    url,
		Client: &http.Client{Timeout: requestTimeout},
	}
}

// Name implements the probe contract.
func (c *Collector) Name() string {
	return subsystemName
}

// Collect fetches and passes through the perf feed. Unreachable peer,
// non-200 status, and malformed JSON all yield an empty section.
func (c *Collector) Collect(ctx context.Context) reading.Section {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return reading.Section{}
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		slog.Debug("sentinel unreachable", "url", c.URL, "error", err)
		return reading.Section{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("sentinel returned non-200", "status", resp.StatusCode)
		return reading.Section{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return reading.Section{}
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Debug("sentinel reply malformed", "error", err)
		return reading.Section{}
	}

	section := make(reading.Section, len(raw))
	for k, v := range raw {
		section[k] = reading.ToReading(v)
	}
	return section
}
