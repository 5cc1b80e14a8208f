// Package mapgen assembles the island map: sampling, triangulation,
// relaxation, region extraction, terrain and coloring. A Map is immutable;
// regenerating yields a new Map.
package mapgen

import (
	"image/color"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"mapgen/internal/biome"
	"mapgen/internal/core"
	"mapgen/internal/delaunay"
	"mapgen/internal/geom"
	"mapgen/internal/terrain"
	"mapgen/internal/voronoi"
)

// ErrConfig reports a configuration that cannot produce a map.
var ErrConfig = errors.New("mapgen: invalid config")

// Region is one colored cell of the final map.
type Region struct {
	Site      r2.Point
	Vertices  []r2.Point
	Color     color.NRGBA
	Elevation float64
	Moisture  float64
}

// Outline returns the polygon without repeated consecutive vertices.
func (r Region) Outline() []r2.Point {
	return voronoi.Region{Site: r.Site, Vertices: r.Vertices}.Outline()
}

// Biome returns the discrete class of the region regardless of the policy
// used for its color.
func (r Region) Biome() biome.Biome {
	return biome.Bucket(geom.Clamp(r.Elevation, 0, 1), geom.Clamp(r.Moisture, 0, 1))
}

// Map is a fully built snapshot. None of its methods mutate it, so it can
// be shared between goroutines.
type Map struct {
	cfg      Config
	seed     uint64
	distance terrain.DistanceFn
	reshape  terrain.ReshapingFn
	boundary geom.Boundary
	tri      *delaunay.Triangulation
	regions  []Region
}

// New generates a map. Sampling and both noise fields derive from seed, so
// equal arguments always produce equal maps.
func New(cfg Config, seed uint64, df terrain.DistanceFn, rf terrain.ReshapingFn) (*Map, error) {
	if cfg.HalfGrid <= 0 {
		return nil, errors.Wrapf(ErrConfig, "half grid %d", cfg.HalfGrid)
	}
	if !(cfg.RayClamp > 0) {
		return nil, errors.Wrapf(ErrConfig, "ray clamp %v", cfg.RayClamp)
	}

	sites := voronoi.SampleJitteredGrid(core.NewRNG(seed), cfg.HalfGrid, cfg.Jitter)
	tri, err := voronoi.Triangulate(sites)
	if err != nil {
		return nil, errors.Wrap(err, "triangulate sites")
	}
	tri, err = voronoi.RelaxPasses(tri, cfg.RelaxPasses, cfg.RelaxOptions())
	if err != nil {
		return nil, err
	}

	boundary := cfg.Boundary()
	cells := voronoi.Extract(tri, boundary, cfg.RayClamp)
	field := terrain.NewHeightField(seed, cfg.GridSize(), cfg.Noise, df, rf)

	regions := make([]Region, len(cells))
	for i, cell := range cells {
		s := field.Sample(cell.Site)
		regions[i] = Region{
			Site:      cell.Site,
			Vertices:  cell.Vertices,
			Color:     cfg.Classifier.Classify(s.Elevation, s.Moisture),
			Elevation: s.Elevation,
			Moisture:  s.Moisture,
		}
	}

	return &Map{
		cfg:      cfg,
		seed:     seed,
		distance: df,
		reshape:  rf,
		boundary: boundary,
		tri:      tri,
		regions:  regions,
	}, nil
}

// Regenerate builds a new map with the same config. The receiver is left
// untouched.
func (m *Map) Regenerate(seed uint64, df terrain.DistanceFn, rf terrain.ReshapingFn) (*Map, error) {
	return New(m.cfg, seed, df, rf)
}

// Reclassify returns a copy of the map colored by another policy. Geometry
// and terrain samples are shared with the receiver.
func (m *Map) Reclassify(p biome.Policy) *Map {
	next := *m
	next.cfg.Classifier = p
	next.regions = make([]Region, len(m.regions))
	for i, r := range m.regions {
		r.Color = p.Classify(r.Elevation, r.Moisture)
		next.regions[i] = r
	}
	return &next
}

// Regions returns the map cells. The slice is shared and must be treated as
// read-only.
func (m *Map) Regions() []Region { return m.regions }

func (m *Map) Boundary() geom.Boundary                { return m.boundary }
func (m *Map) Triangulation() *delaunay.Triangulation { return m.tri }
func (m *Map) Config() Config                         { return m.cfg }
func (m *Map) Seed() uint64                           { return m.seed }
func (m *Map) Distance() terrain.DistanceFn           { return m.distance }
func (m *Map) Reshape() terrain.ReshapingFn           { return m.reshape }
func (m *Map) Classifier() biome.Policy               { return m.cfg.Classifier }
