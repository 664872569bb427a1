// Package probe defines the probe contract and the fixed registry of
// subsystem probes that together shape one telemetry snapshot.
//
// A probe is an independent, bounded, read-only adapter around one data
// source: a vendor CLI, a kernel interface file, the companion
// perf-query binary, or the sentinel peer service. Probes absorb their
// own failures; the publisher only ever sees sections, never errors.
package probe
