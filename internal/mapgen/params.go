package mapgen

import (
	"mapgen/internal/biome"
	"mapgen/internal/core"
	"mapgen/internal/terrain"
)

// Parameter keys shared by the HUD, the HTTP service and FromMap.
const (
	KeySeed       = "seed"
	KeyDistance   = "distance"
	KeyReshape    = "reshape"
	KeyClassifier = "classifier"
)

// Name identifies the generator on the HUD.
func (m *Map) Name() string { return "island map" }

// Parameters describes the settings the map was built with.
func (m *Map) Parameters() core.ParameterSnapshot {
	c := m.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.Uint64Param(KeySeed, "Seed", m.seed),
				core.EnumParam(KeyDistance, "Distance", int(m.distance), m.distance.String()),
				core.EnumParam(KeyReshape, "Reshaping", int(m.reshape), m.reshape.String()),
				core.EnumParam(KeyClassifier, "Classifier", int(c.Classifier), c.Classifier.String()),
			},
		},
		{
			Name: "Sites",
			Params: []core.Parameter{
				core.IntParam("half_grid", "Half grid", c.HalfGrid),
				core.FloatParam("jitter", "Jitter", c.Jitter),
				core.FloatParam("ray_clamp", "Ray clamp", c.RayClamp),
				core.IntParam("relax_passes", "Relax passes", c.RelaxPasses),
				core.FloatParam("relax_skip_length2", "Relax skip length²", c.RelaxSkipLength2),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				core.IntParam("noise_octaves", "Octaves", c.Noise.Octaves),
				core.FloatParam("noise_gain", "Gain", c.Noise.Gain),
				core.FloatParam("noise_lacunarity", "Lacunarity", c.Noise.Lacunarity),
				core.FloatParam("noise_frequency", "Frequency", c.Noise.Frequency),
			},
		},
	}}
}

// ParameterControls lists the settings adjustable from the HUD.
func ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeySeed, Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: KeyDistance, Label: "Distance", Type: core.ParamTypeEnum, Options: names(terrain.DistanceFns())},
		{Key: KeyReshape, Label: "Reshaping", Type: core.ParamTypeEnum, Options: names(terrain.ReshapingFns())},
		{Key: KeyClassifier, Label: "Classifier", Type: core.ParamTypeEnum, Options: names(biome.Policies())},
	}
}

func names[T interface{ String() string }](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
