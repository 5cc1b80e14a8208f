// Package terrain derives per-site elevation and moisture from fractal noise
// shaped by a radial falloff.
package terrain

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"mapgen/internal/geom"
)

// DistanceFn selects the radial falloff used to push elevation down towards
// the map edge. Inputs are normalised coordinates in roughly [-0.5, 0.5];
// results lie in [0, 1].
type DistanceFn int

const (
	Euclidean DistanceFn = iota
	Euclidean2
	Hyperboloid
	Squircle
	SquareBump
	TrigProduct
	Diagonal
	Manhattan
)

var distanceNames = [...]string{
	Euclidean:   "Euclidean",
	Euclidean2:  "Euclidean2",
	Hyperboloid: "Hyperboloid",
	Squircle:    "Squircle",
	SquareBump:  "SquareBump",
	TrigProduct: "TrigProduct",
	Diagonal:    "Diagonal",
	Manhattan:   "Manhattan",
}

const hyperboloidA = 0.2

// DistanceFns lists every variant in declaration order.
func DistanceFns() []DistanceFn {
	out := make([]DistanceFn, len(distanceNames))
	for i := range out {
		out[i] = DistanceFn(i)
	}
	return out
}

func (d DistanceFn) String() string {
	if d < 0 || int(d) >= len(distanceNames) {
		return "DistanceFn(" + itoa(int(d)) + ")"
	}
	return distanceNames[d]
}

// ParseDistanceFn accepts a variant name, case-insensitively.
func ParseDistanceFn(s string) (DistanceFn, error) {
	for i, name := range distanceNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return DistanceFn(i), nil
		}
	}
	return 0, errors.Errorf("unknown distance function %q", s)
}

// Next cycles to the following variant.
func (d DistanceFn) Next() DistanceFn { return DistanceFn((int(d) + 1) % len(distanceNames)) }

// Apply evaluates the falloff at (x, y).
func (d DistanceFn) Apply(x, y float64) float64 {
	u, v := 2*x, 2*y
	var r float64
	switch d {
	case Euclidean:
		r = math.Sqrt(u*u+v*v) / math.Sqrt2
	case Euclidean2:
		r = (u*u + v*v) / 2
	case Hyperboloid:
		a := hyperboloidA
		r = (math.Sqrt(u*u+v*v+a*a) - a) / (math.Sqrt(2+a*a) - a)
	case Squircle:
		r = math.Sqrt(math.Sqrt(u*u*u*u + v*v*v*v))
	case SquareBump:
		r = 1 - (1-u*u)*(1-v*v)
	case TrigProduct:
		r = 1 - math.Cos(u*math.Pi/2)*math.Cos(v*math.Pi/2)
	case Diagonal:
		r = math.Max(math.Abs(u), math.Abs(v))
	case Manhattan:
		r = (math.Abs(u) + math.Abs(v)) / 2
	}
	return geom.Clamp(r, 0, 1)
}
