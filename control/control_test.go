package control_test

import (
	"testing"

	"github.com/momentics/trove-arc/control"
)

func TestMetricsRegistryCounters(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Add("arc.retains", 1)
	reg.Add("arc.retains", 2)
	if got := reg.Counter("arc.retains"); got != 3 {
		t.Fatalf("counter = %d, want 3", got)
	}
	reg.Set("pool.depth", 4)

	snap := reg.GetSnapshot()
	if snap["arc.retains"] != int64(3) {
		t.Errorf("snapshot counter = %v, want 3", snap["arc.retains"])
	}
	if snap["pool.depth"] != 4 {
		t.Errorf("snapshot gauge = %v, want 4", snap["pool.depth"])
	}
}

func TestConfigReloadListener(t *testing.T) {
	cs := control.NewConfigStore()
	fired := 0
	cs.OnReload(func() { fired++ })

	cs.SetConfig(map[string]any{"arc.warn_on_missing_pool": false})
	if fired != 1 {
		t.Fatalf("listener fired %d times, want 1", fired)
	}
	v, ok := cs.Get("arc.warn_on_missing_pool")
	if !ok || v != false {
		t.Errorf("config value = %v (%v)", v, ok)
	}
}

func TestDebugProbesDump(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("arc.pool_depth", func() any { return 2 })

	out := dp.DumpState()
	if out["arc.pool_depth"] != 2 {
		t.Fatalf("probe output = %v, want 2", out["arc.pool_depth"])
	}
}

func TestHotReloadHooksSync(t *testing.T) {
	fired := 0
	control.RegisterReloadHook(func() { fired++ })
	control.TriggerHotReloadSync()
	if fired != 1 {
		t.Fatalf("hook fired %d times, want 1", fired)
	}
}
