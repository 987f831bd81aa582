package facade_test

import (
	"testing"

	"github.com/momentics/trove-arc/arc"
	"github.com/momentics/trove-arc/control"
	"github.com/momentics/trove-arc/facade"
	"github.com/momentics/trove-arc/managed"
)

func TestScopedAutoreleasedString(t *testing.T) {
	trove, err := facade.New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := trove.Runtime()

	var s *managed.String
	r.WithPool(func() {
		s = arc.AutoreleaseIn(r, managed.NewString("Hello, Trove ARC!"))
		if s.Value() != "Hello, Trove ARC!" {
			t.Fatalf("value inside scope = %q", s.Value())
		}
		if s.Finalized() {
			t.Fatal("object finalized inside the scope")
		}
	})

	if !s.Finalized() {
		t.Fatal("object survived scope exit")
	}
	if got := trove.Metrics().Counter("arc.finalizations"); got != 1 {
		t.Errorf("arc.finalizations = %d, want 1", got)
	}
	if got := trove.Stats().PoolDepth; got != 0 {
		t.Errorf("pool depth after scope = %d, want 0", got)
	}
}

func TestProbesAndStats(t *testing.T) {
	trove, err := facade.New(facade.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	state := trove.DumpState()
	if _, ok := state["arc.pool_depth"]; !ok {
		t.Error("arc.pool_depth probe missing")
	}
	if _, ok := state["arc.live_objects"]; !ok {
		t.Error("arc.live_objects probe missing")
	}
	if _, ok := state["platform.cpus"]; !ok {
		t.Error("platform probes not registered")
	}

	trove.Runtime().PoolPush()
	if got := trove.Stats().PoolDepth; got != 1 {
		t.Errorf("pool depth = %d, want 1", got)
	}
	trove.Runtime().PoolPop()

	if got := trove.Metrics().Counter("arc.pool_pushes"); got != 1 {
		t.Errorf("arc.pool_pushes = %d, want 1", got)
	}
}

func TestConfigReloadAppliesWarnFlag(t *testing.T) {
	trove, err := facade.New(facade.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !trove.Runtime().MissingPoolWarnings() {
		t.Fatal("warn flag not on by default")
	}

	trove.Config().SetConfig(map[string]any{"arc.warn_on_missing_pool": false})
	if trove.Runtime().MissingPoolWarnings() {
		t.Fatal("config reload did not disable the warn flag")
	}

	trove.Config().SetConfig(map[string]any{"arc.warn_on_missing_pool": true})
	if !trove.Runtime().MissingPoolWarnings() {
		t.Fatal("config reload did not re-enable the warn flag")
	}
}

func TestOnReloadBridgesListeners(t *testing.T) {
	trove, err := facade.New(facade.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	fired := 0
	trove.OnReload(func() { fired++ })

	trove.Config().SetConfig(map[string]any{"arc.pool_recycling": true})
	if fired != 1 {
		t.Fatalf("config listener fired %d times, want 1", fired)
	}

	control.TriggerHotReloadSync()
	if fired < 2 {
		t.Fatalf("global reload hook not bridged (fired=%d)", fired)
	}
}

func TestDisabledControlPlane(t *testing.T) {
	trove, err := facade.New(&facade.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if trove.Metrics() != nil {
		t.Error("metrics registry present despite EnableMetrics=false")
	}
	if trove.DumpState() != nil {
		t.Error("probe dump present despite EnableDebug=false")
	}

	// The runtime itself still works without a control plane.
	p := managed.NewString("bare")
	trove.Runtime().WithPool(func() {
		arc.AutoreleaseIn(trove.Runtime(), p)
	})
	if !p.Finalized() {
		t.Error("runtime broken without metrics/debug")
	}
}
