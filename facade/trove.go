// File: facade/trove.go
// Unified facade layer for the trove-arc library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the TroveARC struct, which aggregates the ARC runtime
// and its control plane behind a single facade. It wires the metrics
// registry into the runtime, registers runtime and platform debug probes,
// and exposes config with hot-reload of the tunable runtime flags.

package facade

import (
	"github.com/momentics/trove-arc/api"
	"github.com/momentics/trove-arc/arc"
	"github.com/momentics/trove-arc/control"
)

// Config holds parameters applied at construction. WarnOnMissingPool can be
// changed at runtime through the config store; the other toggles are fixed
// per instance.
type Config struct {
	EnableMetrics     bool // Whether to wire a metrics registry into the runtime
	EnableDebug       bool // Whether to register debug and platform probes
	PoolRecycling     bool // Whether drained pools are kept for reuse
	WarnOnMissingPool bool // Whether registrations without a pool are logged
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		EnableMetrics:     true,
		EnableDebug:       true,
		PoolRecycling:     true,
		WarnOnMissingPool: true,
	}
}

// TroveARC is the main facade type.
type TroveARC struct {
	runtime *arc.Runtime
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
	config  *control.ConfigStore
}

// New constructs a TroveARC instance with its own runtime and control plane.
func New(cfg *Config) (*TroveARC, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	t := &TroveARC{
		config: control.NewConfigStore(),
	}

	opts := []arc.Option{
		arc.WithMissingPoolWarnings(cfg.WarnOnMissingPool),
		arc.WithPoolRecycling(cfg.PoolRecycling),
	}
	if cfg.EnableMetrics {
		t.metrics = control.NewMetricsRegistry()
		opts = append(opts, arc.WithMetricsSink(t.metrics))
	}
	t.runtime = arc.NewRuntime(opts...)

	if cfg.EnableDebug {
		t.probes = control.NewDebugProbes()
		t.probes.RegisterProbe("arc.pool_depth", func() any {
			return t.runtime.Depth()
		})
		t.probes.RegisterProbe("arc.pending_autoreleases", func() any {
			return t.runtime.Pending()
		})
		t.probes.RegisterProbe("arc.live_objects", func() any {
			return arc.LiveObjects()
		})
		control.RegisterPlatformProbes(t.probes)
	}

	// Apply the tunable runtime flags whenever the config store changes.
	t.config.OnReload(func() {
		if v, ok := t.config.Get("arc.warn_on_missing_pool"); ok {
			if on, ok := v.(bool); ok {
				t.runtime.SetMissingPoolWarnings(on)
			}
		}
	})
	t.config.SetConfig(map[string]any{
		"arc.warn_on_missing_pool": cfg.WarnOnMissingPool,
		"arc.pool_recycling":       cfg.PoolRecycling,
	})

	return t, nil
}

// OnReload registers fn both with this facade's config store and with the
// process-wide hot-reload hooks.
func (t *TroveARC) OnReload(fn func()) {
	t.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}

// Runtime returns the ARC runtime owned by this facade.
func (t *TroveARC) Runtime() *arc.Runtime { return t.runtime }

// Metrics returns the metrics registry, or nil when metrics are disabled.
func (t *TroveARC) Metrics() *control.MetricsRegistry { return t.metrics }

// Probes returns the debug probe registry, or nil when debug is disabled.
func (t *TroveARC) Probes() *control.DebugProbes { return t.probes }

// Config returns the dynamic config store.
func (t *TroveARC) Config() *control.ConfigStore { return t.config }

// Stats returns a point-in-time runtime snapshot.
func (t *TroveARC) Stats() api.RuntimeStats { return t.runtime.Stats() }

// DumpState returns the output of every registered debug probe, or nil when
// debug is disabled.
func (t *TroveARC) DumpState() map[string]any {
	if t.probes == nil {
		return nil
	}
	return t.probes.DumpState()
}
