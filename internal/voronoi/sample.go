// Package voronoi turns a point set into closed Voronoi regions: jittered
// site sampling, the triangulation adapter, region extraction with clamped
// hull rays, and Lloyd relaxation.
package voronoi

import (
	"github.com/golang/geo/r2"

	"mapgen/internal/core"
)

// SampleJitteredGrid places one site per integer cell (x, y) with x and y in
// [-half, half). Each coordinate is displaced by jitter*(u1-u2). Sites are
// returned row-major: x is the outer loop, y the inner one.
func SampleJitteredGrid(rng *core.RNG, half int, jitter float64) []r2.Point {
	if half <= 0 {
		return nil
	}
	side := 2 * half
	pts := make([]r2.Point, 0, side*side)
	for x := -half; x < half; x++ {
		for y := -half; y < half; y++ {
			pts = append(pts, r2.Point{
				X: float64(x) + rng.Jitter(jitter),
				Y: float64(y) + rng.Jitter(jitter),
			})
		}
	}
	return pts
}
