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

package defaults

import "time"

// Probe timeouts for external tool invocations. Each tool gets its own
// bound sized to its worst observed case on a Pi 5; a tool at its bound
// is treated the same as a tool that is absent.
const (
	// ProbeCommandTimeout is the default bound for quick tools
	// (vcgencmd, lspci, df, lsof).
	ProbeCommandTimeout = 4 * time.Second

	// IdentifyTimeout bounds hailortcli fw-control identify, which
	// stalls for several seconds when device firmware is unresponsive.
	IdentifyTimeout = 6 * time.Second

	// PerfQueryTimeout bounds the hailo_perf_query companion binary.
	PerfQueryTimeout = 5 * time.Second

	// SentinelRequestTimeout bounds the HTTP query to the sentinel
	// inference service on loopback.
	SentinelRequestTimeout = 2 * time.Second
)

// RefreshInterval is the default pause between telemetry refresh cycles.
const RefreshInterval = 5 * time.Second

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next
	// request on a kept-alive connection.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
