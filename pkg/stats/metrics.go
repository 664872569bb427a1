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

package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hailodash",
		Name:      "refresh_cycle_duration_seconds",
		Help:      "Time to run a full refresh cycle across all probes.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	})

	cyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hailodash",
		Name:      "refresh_cycles_total",
		Help:      "Completed refresh cycles by status.",
	}, []string{"status"})

	probeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hailodash",
		Name:      "probe_duration_seconds",
		Help:      "Time spent collecting each probe.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
	}, []string{"probe"})

	probeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hailodash",
		Name:      "probe_failures_total",
		Help:      "Probe collections that returned no fields or panicked.",
	}, []string{"probe"})

	sectionFields = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "hailodash",
		Name:      "section_fields",
		Help:      "Field count in the latest section per probe.",
	}, []string{"probe"})
)
