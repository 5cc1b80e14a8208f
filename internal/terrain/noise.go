package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"

	"mapgen/internal/geom"
)

// NoiseParams configures the fractal Brownian motion sum.
type NoiseParams struct {
	Octaves    int
	Gain       float64
	Lacunarity float64
	Frequency  float64
}

// DefaultNoiseParams returns five octaves with gain 0.6, lacunarity 2 and
// base frequency 2.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{Octaves: 5, Gain: 0.6, Lacunarity: 2, Frequency: 2}
}

func (p NoiseParams) normalised() NoiseParams {
	def := DefaultNoiseParams()
	if p.Octaves < 1 {
		p.Octaves = def.Octaves
	}
	if !(p.Gain > 0) {
		p.Gain = def.Gain
	}
	if !(p.Lacunarity > 0) {
		p.Lacunarity = def.Lacunarity
	}
	if !(p.Frequency > 0) {
		p.Frequency = def.Frequency
	}
	return p
}

// NoiseField samples seeded fBm noise in [-1, 1].
type NoiseField struct {
	p     *perlin.Perlin
	freq  float64
	scale float64
}

// NewNoiseField creates a field for seed. Two fields with the same seed and
// parameters return identical values everywhere.
func NewNoiseField(seed uint64, params NoiseParams) *NoiseField {
	params = params.normalised()
	amp, sum := 1.0, 0.0
	for i := 0; i < params.Octaves; i++ {
		sum += amp
		amp *= params.Gain
	}
	return &NoiseField{
		p:     perlin.NewPerlin(1/params.Gain, params.Lacunarity, int32(params.Octaves), int64(seed)),
		freq:  params.Frequency,
		scale: 1 / sum,
	}
}

// At returns the noise value at (x, y), clamped to [-1, 1].
func (f *NoiseField) At(x, y float64) float64 {
	n := f.p.Noise2D(x*f.freq, y*f.freq) * f.scale
	if math.IsNaN(n) {
		return 0
	}
	return geom.Clamp(n, -1, 1)
}
