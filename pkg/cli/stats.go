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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hailodash/hailodash/pkg/probe"
	"github.com/hailodash/hailodash/pkg/serializer"
	"github.com/hailodash/hailodash/pkg/stats"
)

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "stats",
		EnableShellCompletion: true,
		Usage:                 "Collect one telemetry snapshot and print it",
		Description: `Run every probe once and write the resulting snapshot without
starting the server. Useful for cron jobs, debugging a probe, or
checking device state over SSH.

The snapshot can be output in JSON, YAML, or table format:

  hailodash stats
  hailodash stats --format table
  hailodash stats --format yaml --output snapshot.yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
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
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			factory := probe.NewDefaultFactory(
				probe.WithSentinelURL(cmd.String("sentinel-url")),
				probe.WithPerfQueryPath(cmd.String("perf-query")),
			)

			pub := stats.NewPublisher(probe.Registry(factory))
			snap := pub.RefreshOnce(ctx)

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(snap)
		},
	}
}
