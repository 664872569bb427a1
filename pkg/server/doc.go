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

// Package server provides the HTTP server hosting the snapshot API and
// the dashboard.
//
// Handlers mounted through Config.Handlers (or WithHandler) run behind
// a middleware chain: Prometheus RED metrics, request ID propagation,
// panic recovery, token-bucket rate limiting, and debug request
// logging. The /health, /ready, and /metrics endpoints bypass the
// chain so probes and scrapers are never rate limited.
//
// Typical usage:
//
//	srv := server.New(
//	    server.WithName("hailodashd"),
//	    server.WithPort(8080),
//	    server.WithHandler("/api/stats", pub.HandleStats),
//	)
//	err := srv.Run(ctx, func(ctx context.Context) error {
//	    pub.Start(ctx)
//	    return nil
//	})
package server
