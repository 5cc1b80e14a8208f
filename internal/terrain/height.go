package terrain

import (
	"github.com/golang/geo/r2"
)

// HeightSample is the raw terrain data of one site.
type HeightSample struct {
	Elevation float64
	Moisture  float64
}

// HeightField combines an elevation and a moisture noise field with the
// selected falloff and reshaping strategies.
type HeightField struct {
	elevation *NoiseField
	moisture  *NoiseField
	gridSize  float64
	distance  DistanceFn
	reshape   ReshapingFn
}

// NewHeightField seeds the elevation field with seed and the moisture field
// with seed+1. gridSize is the world extent mapped onto the unit square.
func NewHeightField(seed uint64, gridSize float64, params NoiseParams, df DistanceFn, rf ReshapingFn) *HeightField {
	if !(gridSize > 0) {
		gridSize = 1
	}
	return &HeightField{
		elevation: NewNoiseField(seed, params),
		moisture:  NewNoiseField(seed+1, params),
		gridSize:  gridSize,
		distance:  df,
		reshape:   rf,
	}
}

// Sample evaluates the field at a site. Elevation and moisture lie in
// [0, 1].
func (h *HeightField) Sample(site r2.Point) HeightSample {
	nx, ny := site.X/h.gridSize, site.Y/h.gridSize
	e := (1 + h.elevation.At(nx, ny)) / 2
	d := h.distance.Apply(nx, ny)
	return HeightSample{
		Elevation: h.reshape.Apply(e, d),
		Moisture:  (1 - h.moisture.At(nx, ny)) / 2,
	}
}
