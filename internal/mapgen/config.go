package mapgen

import (
	"strconv"

	"github.com/golang/geo/r2"

	"mapgen/internal/biome"
	"mapgen/internal/geom"
	"mapgen/internal/terrain"
	"mapgen/internal/voronoi"
)

// Config holds the map geometry and generation tunables that stay fixed
// across regenerations.
type Config struct {
	// HalfGrid is N in the sampling range [-N, N) along both axes.
	HalfGrid int
	Jitter   float64

	RayClamp         float64
	RelaxPasses      int
	RelaxSkipLength2 float64

	Classifier biome.Policy
	Noise      terrain.NoiseParams
}

// DefaultConfig returns the standard 64x64 island configuration.
func DefaultConfig() Config {
	return Config{
		HalfGrid:         32,
		Jitter:           0.5,
		RayClamp:         voronoi.DefaultRayClamp,
		RelaxPasses:      1,
		RelaxSkipLength2: voronoi.DefaultSkipLength2,
		Classifier:       biome.Continuous,
		Noise:            terrain.DefaultNoiseParams(),
	}
}

// GridSize is the world extent normalised onto the unit square when
// sampling noise.
func (c Config) GridSize() float64 { return float64(2 * c.HalfGrid) }

// Boundary is the square [-N, N] with its top-left corner at (-N, N).
func (c Config) Boundary() geom.Boundary {
	n := float64(c.HalfGrid)
	return geom.FromTopLeft(r2.Point{X: -n, Y: n}, 2*n, 2*n)
}

// RelaxOptions returns the relaxation settings implied by the config.
func (c Config) RelaxOptions() voronoi.RelaxOptions {
	return voronoi.RelaxOptions{Clamp: c.RayClamp, SkipLength2: c.RelaxSkipLength2}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["half_grid"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.HalfGrid = parsed
		}
	}
	if v, ok := cfg["jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Jitter = parsed
		}
	}
	if v, ok := cfg["ray_clamp"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.RayClamp = parsed
		}
	}
	if v, ok := cfg["relax_passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RelaxPasses = parsed
		}
	}
	if v, ok := cfg["relax_skip_length2"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.RelaxSkipLength2 = parsed
		}
	}
	if v, ok := cfg["classifier"]; ok {
		if parsed, err := biome.ParsePolicy(v); err == nil {
			c.Classifier = parsed
		}
	}
	if v, ok := cfg["noise_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["noise_gain"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.Noise.Gain = parsed
		}
	}
	if v, ok := cfg["noise_lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Lacunarity = parsed
		}
	}
	if v, ok := cfg["noise_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Frequency = parsed
		}
	}
	// A full cell of jitter lets neighbouring sites swap places.
	if c.Jitter >= 1 {
		c.Jitter = DefaultConfig().Jitter
	}
	return c
}
