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

package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/hailodash/hailodash/pkg/dashboard"
	"github.com/hailodash/hailodash/pkg/logging"
	"github.com/hailodash/hailodash/pkg/probe"
	"github.com/hailodash/hailodash/pkg/server"
	"github.com/hailodash/hailodash/pkg/stats"
)

const (
	name           = "hailodashd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/hailodash/hailodash/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options carries the runtime settings for Serve, typically populated
// from CLI flags.
type Options struct {
	Port          int
	Interval      time.Duration
	SentinelURL   string
	PerfQueryPath string
}

// Serve starts the telemetry server and blocks until shutdown. The
// first refresh cycle runs before the listener accepts traffic so the
// API never serves an empty snapshot.
func Serve(ctx context.Context, opts Options) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	factory := probe.NewDefaultFactory(
		probe.WithSentinelURL(opts.SentinelURL),
		probe.WithPerfQueryPath(opts.PerfQueryPath),
	)

	pub := stats.NewPublisher(probe.Registry(factory),
		stats.WithInterval(opts.Interval),
	)
	pub.RefreshOnce(ctx)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithPort(opts.Port),
		server.WithHandler("/", dashboard.Handler()),
		server.WithHandler("/api/stats", pub.HandleStats),
	)

	err := s.Run(ctx, func(ctx context.Context) error {
		pub.Start(ctx)
		return nil
	})
	if err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
