// Package render converts maps into drawable geometry: screen projection,
// fan triangulation of regions, SVG output and raster fills.
package render

import (
	"math"

	"github.com/golang/geo/r2"

	"mapgen/internal/geom"
)

// Projection maps world coordinates (y up) into pixel space (y down) with a
// uniform scale, centering the boundary in the viewport.
type Projection struct {
	origin r2.Point
	scale  float64
	offX   float64
	offY   float64
}

// NewProjection fits bounds into a width x height viewport leaving margin
// pixels on every side.
func NewProjection(bounds geom.Boundary, width, height int, margin float64) Projection {
	availW := math.Max(float64(width)-2*margin, 1)
	availH := math.Max(float64(height)-2*margin, 1)
	scale := 1.0
	if bounds.Width() > 0 && bounds.Height() > 0 {
		scale = math.Min(availW/bounds.Width(), availH/bounds.Height())
	}
	return Projection{
		origin: bounds.TopLeft(),
		scale:  scale,
		offX:   (float64(width) - bounds.Width()*scale) / 2,
		offY:   (float64(height) - bounds.Height()*scale) / 2,
	}
}

// Scale returns pixels per world unit.
func (p Projection) Scale() float64 { return p.scale }

// ToScreen projects a world point.
func (p Projection) ToScreen(pt r2.Point) (float64, float64) {
	return p.offX + (pt.X-p.origin.X)*p.scale, p.offY + (p.origin.Y-pt.Y)*p.scale
}

// ToWorld inverts ToScreen.
func (p Projection) ToWorld(x, y float64) r2.Point {
	return r2.Point{X: p.origin.X + (x-p.offX)/p.scale, Y: p.origin.Y - (y-p.offY)/p.scale}
}
