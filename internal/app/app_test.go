package app

import (
	"flag"
	"testing"

	"mapgen/internal/biome"
	"mapgen/internal/core"
	"mapgen/internal/mapgen"
	"mapgen/internal/terrain"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	cfg := mapgen.DefaultConfig()
	cfg.HalfGrid = 6
	m, err := mapgen.New(cfg, 100, terrain.Diagonal, terrain.Flat)
	if err != nil {
		t.Fatal(err)
	}
	return NewController(mapgen.NewStore(m), core.NewRNG(1))
}

func TestControllerRequestPublishes(t *testing.T) {
	c := newController(t)
	c.Request(200, terrain.Euclidean, terrain.Smooth)
	c.Wait()
	m := c.Map()
	if m.Seed() != 200 || m.Distance() != terrain.Euclidean || m.Reshape() != terrain.Smooth {
		t.Fatalf("map settings = %d %v %v", m.Seed(), m.Distance(), m.Reshape())
	}
	if c.Err() != nil {
		t.Fatal(c.Err())
	}
}

func TestControllerCoalescesRequests(t *testing.T) {
	c := newController(t)
	for seed := uint64(1); seed <= 5; seed++ {
		c.Request(seed, terrain.Diagonal, terrain.Flat)
	}
	c.Wait()
	if got := c.Map().Seed(); got != 5 {
		t.Fatalf("final seed = %d, want 5", got)
	}
}

func TestControllerCycles(t *testing.T) {
	c := newController(t)
	c.CycleDistance()
	c.Wait()
	if got := c.Map().Distance(); got != terrain.Manhattan {
		t.Fatalf("distance = %v, want Manhattan", got)
	}
	c.CycleReshape()
	c.Wait()
	if got := c.Map().Reshape(); got != terrain.Clamped {
		t.Fatalf("reshape = %v, want Clamped", got)
	}
	c.CycleClassifier()
	if got := c.Map().Classifier(); got != biome.Discrete {
		t.Fatalf("classifier = %v, want discrete", got)
	}
	c.Refresh()
	c.Wait()
	if got := c.Map().Classifier(); got != biome.Discrete {
		t.Fatalf("rebuild lost classifier: %v", got)
	}
	before := c.Map().Seed()
	c.NewSeed()
	c.Wait()
	if c.Map().Seed() == before {
		t.Fatal("NewSeed kept the seed")
	}
}

func TestSetIntParameter(t *testing.T) {
	c := newController(t)
	if !c.SetIntParameter(mapgen.KeyReshape, int(terrain.Archipelago)) {
		t.Fatal("reshape rejected")
	}
	c.Wait()
	if c.Map().Reshape() != terrain.Archipelago {
		t.Fatalf("reshape = %v", c.Map().Reshape())
	}
	if c.SetIntParameter(mapgen.KeyDistance, 99) {
		t.Fatal("out of range distance accepted")
	}
	if c.SetIntParameter("jitter", 1) {
		t.Fatal("unknown key accepted")
	}
	if !c.SetIntParameter(mapgen.KeyClassifier, int(biome.Discrete)) || c.Map().Classifier() != biome.Discrete {
		t.Fatal("classifier not applied")
	}
	if p, ok := c.Parameters().Lookup(mapgen.KeyReshape); !ok || p.Description != "Archipelago" {
		t.Fatalf("snapshot reshape = %+v", p)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "77", "-reshape", "Smooth", "-classifier", "discrete", "-set", "half_grid=10, jitter=0.3,bad"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 77 || cfg.Reshape != "Smooth" {
		t.Fatalf("flags not bound: %+v", cfg)
	}
	mc := cfg.MapConfig()
	if mc.HalfGrid != 10 || mc.Jitter != 0.3 || mc.Classifier != biome.Discrete {
		t.Fatalf("map config = %+v", mc)
	}
}

func TestControllerFeedsHUD(t *testing.T) {
	c := newController(t)
	var src core.ParameterProvider = c
	controls, ok := src.(core.ParameterControlsProvider)
	if !ok {
		t.Fatal("controller does not list HUD controls")
	}
	if _, ok := src.(core.IntParameterSetter); !ok {
		t.Fatal("controller does not accept HUD adjustments")
	}
	for _, ctrl := range controls.ParameterControls() {
		if _, ok := c.Parameters().Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no parameter value", ctrl.Key)
		}
	}
}
