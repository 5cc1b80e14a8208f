package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. The map seed
// drives both PCG words so neighbouring seeds do not share a stream prefix.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Jitter returns amp*(u1-u2) for two uniform draws, a symmetric triangular
// distribution on (-amp, amp).
func (r *RNG) Jitter(amp float64) float64 {
	return amp * (r.r.Float64() - r.r.Float64())
}

// Uint64 returns a uniformly distributed 64-bit value, used to pick fresh
// map seeds.
func (r *RNG) Uint64() uint64 { return r.r.Uint64() }
