package server

import (
	"fmt"

	"mapgen/internal/mapgen"
)

// PointDTO is a world-space point.
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionDTO is one map cell.
type RegionDTO struct {
	Site      PointDTO   `json:"site"`
	Vertices  []PointDTO `json:"vertices"`
	Color     string     `json:"color"`
	Biome     string     `json:"biome"`
	Elevation float64    `json:"elevation"`
	Moisture  float64    `json:"moisture"`
}

// BoundaryDTO describes the map rectangle.
type BoundaryDTO struct {
	TopLeft PointDTO `json:"top_left"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
}

// MapDTO is the JSON form of a map snapshot.
type MapDTO struct {
	Seed       uint64      `json:"seed"`
	Distance   string      `json:"distance"`
	Reshape    string      `json:"reshape"`
	Classifier string      `json:"classifier"`
	Boundary   BoundaryDTO `json:"boundary"`
	Regions    []RegionDTO `json:"regions"`
}

// OptionsDTO lists the selectable strategy names.
type OptionsDTO struct {
	Distance    []string `json:"distance"`
	Reshape     []string `json:"reshape"`
	Classifiers []string `json:"classifiers"`
}

func toMapDTO(m *mapgen.Map) MapDTO {
	b := m.Boundary()
	out := MapDTO{
		Seed:       m.Seed(),
		Distance:   m.Distance().String(),
		Reshape:    m.Reshape().String(),
		Classifier: m.Classifier().String(),
		Boundary: BoundaryDTO{
			TopLeft: PointDTO{X: b.TopLeft().X, Y: b.TopLeft().Y},
			Width:   b.Width(),
			Height:  b.Height(),
		},
		Regions: make([]RegionDTO, len(m.Regions())),
	}
	for i, r := range m.Regions() {
		outline := r.Outline()
		verts := make([]PointDTO, len(outline))
		for j, p := range outline {
			verts[j] = PointDTO{X: p.X, Y: p.Y}
		}
		out.Regions[i] = RegionDTO{
			Site:      PointDTO{X: r.Site.X, Y: r.Site.Y},
			Vertices:  verts,
			Color:     fmt.Sprintf("#%02x%02x%02x", r.Color.R, r.Color.G, r.Color.B),
			Biome:     r.Biome().String(),
			Elevation: r.Elevation,
			Moisture:  r.Moisture,
		}
	}
	return out
}
