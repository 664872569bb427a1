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

package server

import (
	"net/http"
	"sort"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes and middleware.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// API endpoints with middleware
	for path, handler := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	// Root falls back to the server info page unless a handler claimed it.
	if _, ok := s.config.Handlers["/"]; !ok {
		mux.HandleFunc("/", s.handleDefault)
	}

	return mux
}

// routes lists the mounted API paths, sorted, for the info response.
func (s *Server) routes() []string {
	paths := make([]string, 0, len(s.config.Handlers)+3)
	for path := range s.config.Handlers {
		paths = append(paths, "GET "+path)
	}
	paths = append(paths, "GET /health", "GET /ready", "GET /metrics")
	sort.Strings(paths)
	return paths
}
