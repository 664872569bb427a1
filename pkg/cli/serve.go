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

package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/hailodash/hailodash/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the telemetry server and dashboard",
		Description: `Run the HTTP server that refreshes telemetry in the background and
serves it on /api/stats, alongside the dashboard on /.

The snapshot covers the Hailo-10H accelerator (identity, firmware,
health counters), the Raspberry Pi host (CPU, memory, fan, disk,
PCIe inventory), the sentinel inference feed, and the state of the
related systemd units. Probes that fail report empty sections; the
server keeps running on whatever it can still read.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP listen port",
				Sources: cli.EnvVars("PORT"),
				Value:   8080,
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Pause between telemetry refresh cycles",
				Value: 5 * time.Second,
			},
			&cli.StringFlag{
				Name:    "sentinel-url",
				Usage:   "URL of the sentinel inference perf feed",
				Sources: cli.EnvVars("SENTINEL_URL"),
			},
			&cli.StringFlag{
				Name:    "perf-query",
				Usage:   "Path to the hailo_perf_query binary (default: next to the executable)",
				Sources: cli.EnvVars("HAILO_PERF_QUERY"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, api.Options{
				Port:          int(cmd.Int("port")),
				Interval:      cmd.Duration("interval"),
				SentinelURL:   cmd.String("sentinel-url"),
				PerfQueryPath: cmd.String("perf-query"),
			})
		},
	}
}
