// Package geom holds the small amount of planar geometry shared by the map
// pipeline: the map boundary, oriented segments and vector helpers on top of
// r2.Point.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Norm2 returns the squared length of v.
func Norm2(v r2.Point) float64 { return v.Dot(v) }

// ClampLength rescales v to max when it is longer than max and returns it
// unchanged otherwise.
func ClampLength(v r2.Point, max float64) r2.Point {
	if Norm2(v) > max*max {
		return v.Normalize().Mul(max)
	}
	return v
}

// Finite reports whether both coordinates are neither NaN nor infinite.
func Finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Mean returns the arithmetic mean of pts. The second result is false for
// an empty slice.
func Mean(pts []r2.Point) (r2.Point, bool) {
	if len(pts) == 0 {
		return r2.Point{}, false
	}
	var sum r2.Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts))), true
}

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }
