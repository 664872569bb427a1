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
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/hailodash/hailodash/pkg/defaults"
	"github.com/hailodash/hailodash/pkg/probe"
	"github.com/hailodash/hailodash/pkg/reading"
)

// DefaultInterval is the pause between the end of one refresh cycle
// and the start of the next.
const DefaultInterval = defaults.RefreshInterval

// Option configures a Publisher.
type Option func(*Publisher)

// WithInterval sets the refresh interval.
func WithInterval(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithLogger sets the logger used for cycle and probe diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(p *Publisher) {
		if log != nil {
			p.log = log
		}
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		if now != nil {
			p.now = now
		}
	}
}

// Publisher runs the probe registry on a cadence and publishes each
// completed cycle as an immutable Snapshot behind an atomic pointer.
// Readers always get the last fully assembled snapshot, never a
// partially written one.
type Publisher struct {
	probes   []probe.Probe
	interval time.Duration
	log      *slog.Logger
	now      func() time.Time

	current atomic.Pointer[Snapshot]
}

// NewPublisher creates a publisher over the given probes. The snapshot
// is empty until the first RefreshOnce or Start.
func NewPublisher(probes []probe.Probe, opts ...Option) *Publisher {
	p := &Publisher{
		probes:   probes,
		interval: DefaultInterval,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Latest returns the most recently published snapshot, or nil before
// the first refresh has completed.
func (p *Publisher) Latest() *Snapshot {
	return p.current.Load()
}

// RefreshOnce runs a single refresh cycle synchronously and publishes
// the result. It never returns an error: probe failures surface as
// empty sections, and the cycle always produces a snapshot with the
// full registry key set.
func (p *Publisher) RefreshOnce(ctx context.Context) *Snapshot {
	start := p.now()
	snap := &Snapshot{
		TS:       float64(start.UnixNano()) / float64(time.Second),
		Sections: make(map[string]reading.Section, len(p.probes)),
	}

	for _, pr := range p.probes {
		snap.Sections[pr.Name()] = p.collect(ctx, pr)
	}

	p.current.Store(snap)

	elapsed := p.now().Sub(start)
	cycleDuration.Observe(elapsed.Seconds())
	if elapsed > p.interval {
		cyclesTotal.WithLabelValues("overrun").Inc()
		p.log.Warn("refresh cycle overran interval",
			"elapsed", elapsed, "interval", p.interval)
	} else {
		cyclesTotal.WithLabelValues("ok").Inc()
	}
	p.log.Debug("refresh cycle complete",
		"elapsed", elapsed, "sections", len(snap.Sections))

	return snap
}

// collect runs one probe, absorbing panics so a single misbehaving
// subsystem cannot take the cycle down. A panicking probe yields an
// empty section, same as any other failure.
func (p *Publisher) collect(ctx context.Context, pr probe.Probe) (s reading.Section) {
	start := p.now()
	defer func() {
		probeDuration.WithLabelValues(pr.Name()).Observe(p.now().Sub(start).Seconds())
		if r := recover(); r != nil {
			probeFailures.WithLabelValues(pr.Name()).Inc()
			p.log.Error("probe panicked", "probe", pr.Name(), "panic", r)
			s = reading.Section{}
		}
		if s == nil {
			s = reading.Section{}
		}
		sectionFields.WithLabelValues(pr.Name()).Set(float64(len(s)))
	}()

	s = pr.Collect(ctx)
	if len(s) == 0 {
		probeFailures.WithLabelValues(pr.Name()).Inc()
	}
	return s
}

// Start runs refresh cycles until ctx is cancelled. Cycles never
// overlap: after an overrun the next cycle starts immediately, and the
// loop does not try to catch up with missed ticks.
func (p *Publisher) Start(ctx context.Context) {
	p.log.Info("snapshot publisher started", "interval", p.interval)
	for {
		cycleStart := p.now()
		p.RefreshOnce(ctx)

		wait := p.interval - p.now().Sub(cycleStart)
		if wait < 0 {
			wait = 0
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			p.log.Info("snapshot publisher stopped")
			return
		case <-timer.C:
		}
	}
}
