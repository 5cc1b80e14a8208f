package mapgen

import "mapgen/internal/biome"

// Stats summarises the terrain of a map.
type Stats struct {
	Regions       int
	Degenerate    int
	LandFraction  float64
	MeanElevation float64
	MeanMoisture  float64
	Biomes        map[biome.Biome]int
}

// Stats computes the summary; land is elevation at or above biome.Midline.
func (m *Map) Stats() Stats {
	s := Stats{Regions: len(m.regions), Biomes: make(map[biome.Biome]int)}
	if len(m.regions) == 0 {
		return s
	}
	land := 0
	for _, r := range m.regions {
		if len(r.Outline()) < 3 {
			s.Degenerate++
		}
		if r.Elevation >= biome.Midline {
			land++
		}
		s.MeanElevation += r.Elevation
		s.MeanMoisture += r.Moisture
		s.Biomes[r.Biome()]++
	}
	n := float64(len(m.regions))
	s.LandFraction = float64(land) / n
	s.MeanElevation /= n
	s.MeanMoisture /= n
	return s
}
