package probe

import (
	"github.com/hailodash/hailodash/pkg/probe/cpu"
	"github.com/hailodash/hailodash/pkg/probe/fan"
	"github.com/hailodash/hailodash/pkg/probe/hailo"
	"github.com/hailodash/hailodash/pkg/probe/hailoperf"
	"github.com/hailodash/hailodash/pkg/probe/mem"
	"github.com/hailodash/hailodash/pkg/probe/sentinel"
	"github.com/hailodash/hailodash/pkg/probe/system"
	"github.com/hailodash/hailodash/pkg/probe/unit"
)

// Factory creates probes with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHailoProbe() Probe
	CreateHailoPerfProbe() Probe
	CreateCPUProbe() Probe
	CreateMemoryProbe() Probe
	CreateFanProbe() Probe
	CreateSystemProbe() Probe
	CreateSentinelProbe() Probe
	CreateServicesProbe() Probe
}

// Option configures the DefaultFactory.
type Option func(*DefaultFactory)

// WithPerfQueryPath overrides the hailo_perf_query binary location.
func WithPerfQueryPath(path string) Option {
	return func(f *DefaultFactory) {
		f.PerfQueryPath = path
	}
}

// WithSentinelURL overrides the sentinel perf feed URL.
func WithSentinelURL(url string) Option {
	return func(f *DefaultFactory) {
		f.SentinelURL = url
	}
}

// WithServices overrides the systemd units reported in the services
// section.
func WithServices(services []string) Option {
	return func(f *DefaultFactory) {
		f.Services = services
	}
}

// DefaultFactory creates probes with production dependencies.
type DefaultFactory struct {
	PerfQueryPath string
	SentinelURL   string
	Services      []string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateHailoProbe creates the accelerator identity probe.
func (f *DefaultFactory) CreateHailoProbe() Probe {
	return hailo.NewCollector()
}

// CreateHailoPerfProbe creates the companion binary probe.
func (f *DefaultFactory) CreateHailoPerfProbe() Probe {
	return hailoperf.NewCollector(f.PerfQueryPath)
}

// CreateCPUProbe creates the host CPU probe.
func (f *DefaultFactory) CreateCPUProbe() Probe {
	return cpu.NewCollector()
}

// CreateMemoryProbe creates the memory probe.
func (f *DefaultFactory) CreateMemoryProbe() Probe {
	return mem.NewCollector()
}

// CreateFanProbe creates the fan probe.
func (f *DefaultFactory) CreateFanProbe() Probe {
	return fan.NewCollector()
}

// CreateSystemProbe creates the host identity/inventory probe.
func (f *DefaultFactory) CreateSystemProbe() Probe {
	return system.NewCollector()
}

// CreateSentinelProbe creates the peer inference-perf probe.
func (f *DefaultFactory) CreateSentinelProbe() Probe {
	return sentinel.NewCollector(f.SentinelURL)
}

// CreateServicesProbe creates the systemd unit state probe.
func (f *DefaultFactory) CreateServicesProbe() Probe {
	return unit.NewCollector(f.Services)
}

// Registry returns the fixed, ordered probe set that defines one
// snapshot's shape. The hailo identity probe and the perf-query binary
// touch the same device control channel, so their ordering here (and
// the publisher's sequential execution) keeps them from overlapping.
func Registry(f Factory) []Probe {
	return []Probe{
		f.CreateHailoProbe(),
		f.CreateHailoPerfProbe(),
		f.CreateCPUProbe(),
		f.CreateMemoryProbe(),
		f.CreateFanProbe(),
		f.CreateSystemProbe(),
		f.CreateSentinelProbe(),
		f.CreateServicesProbe(),
	}
}

// Names returns the section keys of a full registry, in order.
func Names() []string {
	return []string{
		NameHailo,
		NameHailoPerf,
		NameCPU,
		NameMemory,
		NameFan,
		NameSystem,
		NameSentinel,
		NameServices,
	}
}
