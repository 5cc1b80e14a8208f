package app

import (
	"fmt"
	"sync"

	"mapgen/internal/biome"
	"mapgen/internal/core"
	"mapgen/internal/mapgen"
	"mapgen/internal/terrain"
)

// Controller turns viewer input into map regenerations. Builds run on a
// background goroutine and are published through the store; requests that
// arrive mid-build are coalesced into one follow-up build.
type Controller struct {
	store *mapgen.Store
	rng   *core.RNG

	mu       sync.Mutex
	seed     uint64
	distance terrain.DistanceFn
	reshape  terrain.ReshapingFn
	policy   biome.Policy
	busy     bool
	pending  bool
	lastErr  error
	wg       sync.WaitGroup
}

// NewController wraps store, whose current map provides the initial
// settings. rng picks fresh seeds.
func NewController(store *mapgen.Store, rng *core.RNG) *Controller {
	c := &Controller{store: store, rng: rng}
	if m := store.Current(); m != nil {
		c.seed, c.distance, c.reshape, c.policy = m.Seed(), m.Distance(), m.Reshape(), m.Classifier()
	}
	return c
}

// Map returns the map to draw.
func (c *Controller) Map() *mapgen.Map { return c.store.Current() }

// Request schedules a build with the given settings.
func (c *Controller) Request(seed uint64, df terrain.DistanceFn, rf terrain.ReshapingFn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seed, c.distance, c.reshape = seed, df, rf
	if c.busy {
		c.pending = true
		return
	}
	c.busy = true
	c.wg.Add(1)
	go c.run()
}

func (c *Controller) run() {
	defer c.wg.Done()
	for {
		c.mu.Lock()
		seed, df, rf := c.seed, c.distance, c.reshape
		c.mu.Unlock()

		_, err := c.store.Update(func(cur *mapgen.Map) (*mapgen.Map, error) {
			next, err := cur.Regenerate(seed, df, rf)
			if err != nil {
				return nil, err
			}
			// The classifier may have changed while the build ran.
			if p := c.currentPolicy(); next.Classifier() != p {
				next = next.Reclassify(p)
			}
			return next, nil
		})

		c.mu.Lock()
		c.lastErr = err
		if c.pending {
			c.pending = false
			c.mu.Unlock()
			continue
		}
		c.busy = false
		c.mu.Unlock()
		return
	}
}

// Wait blocks until no build is running.
func (c *Controller) Wait() { c.wg.Wait() }

// NewSeed regenerates with a random seed.
func (c *Controller) NewSeed() {
	seed := c.rng.Uint64() >> 32
	c.mu.Lock()
	df, rf := c.distance, c.reshape
	c.mu.Unlock()
	c.Request(seed, df, rf)
}

// Refresh rebuilds with the current settings.
func (c *Controller) Refresh() {
	c.mu.Lock()
	seed, df, rf := c.seed, c.distance, c.reshape
	c.mu.Unlock()
	c.Request(seed, df, rf)
}

// CycleDistance switches to the next distance function.
func (c *Controller) CycleDistance() {
	c.mu.Lock()
	seed, df, rf := c.seed, c.distance.Next(), c.reshape
	c.mu.Unlock()
	c.Request(seed, df, rf)
}

// CycleReshape switches to the next reshaping function.
func (c *Controller) CycleReshape() {
	c.mu.Lock()
	seed, df, rf := c.seed, c.distance, c.reshape.Next()
	c.mu.Unlock()
	c.Request(seed, df, rf)
}

func (c *Controller) currentPolicy() biome.Policy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.policy
}

// SetClassifier recolors the current map in place of a rebuild.
func (c *Controller) SetClassifier(p biome.Policy) {
	c.mu.Lock()
	c.policy = p
	c.mu.Unlock()
	_, _ = c.store.Update(func(cur *mapgen.Map) (*mapgen.Map, error) {
		return cur.Reclassify(p), nil
	})
}

// CycleClassifier switches to the next coloring policy.
func (c *Controller) CycleClassifier() {
	c.SetClassifier(c.currentPolicy().Next())
}

// Name identifies the panel.
func (c *Controller) Name() string { return "island map" }

// Parameters describes the map on screen.
func (c *Controller) Parameters() core.ParameterSnapshot {
	if m := c.Map(); m != nil {
		return m.Parameters()
	}
	return core.ParameterSnapshot{}
}

// ParameterControls lists the HUD controls.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return mapgen.ParameterControls()
}

// SetIntParameter applies a HUD adjustment.
func (c *Controller) SetIntParameter(key string, value int) bool {
	c.mu.Lock()
	seed, df, rf := c.seed, c.distance, c.reshape
	c.mu.Unlock()
	switch key {
	case mapgen.KeySeed:
		if value < 0 {
			return false
		}
		c.Request(uint64(value), df, rf)
	case mapgen.KeyDistance:
		if value < 0 || value >= len(terrain.DistanceFns()) {
			return false
		}
		c.Request(seed, terrain.DistanceFn(value), rf)
	case mapgen.KeyReshape:
		if value < 0 || value >= len(terrain.ReshapingFns()) {
			return false
		}
		c.Request(seed, df, terrain.ReshapingFn(value))
	case mapgen.KeyClassifier:
		if value < 0 || value >= len(biome.Policies()) {
			return false
		}
		c.SetClassifier(biome.Policy(value))
	default:
		return false
	}
	return true
}

// Status summarises the pending work and the last failure for the HUD.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := "G new seed  R rebuild\nD/F shape  C colors\n1 sites  2 wire  3 border"
	if c.busy {
		s += "\ngenerating..."
	}
	if c.lastErr != nil {
		s += fmt.Sprintf("\nerror: %v", c.lastErr)
	}
	return s
}

// Err returns the error of the last finished build.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
