package terrain

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"mapgen/internal/geom"
)

// ReshapingFn blends a noise elevation e in [0, 1] with the falloff d from a
// DistanceFn. g = 1-d is the "island" target the variants pull towards.
type ReshapingFn int

const (
	Input ReshapingFn = iota
	Flat
	Clamped
	Linear
	LinearSteep
	Smooth
	Smooth2
	Smooth3
	ClampedLess
	SmoothLow
	Smooth3Low
	Archipelago
)

var reshapeNames = [...]string{
	Input:       "Input",
	Flat:        "Flat",
	Clamped:     "Clamped",
	Linear:      "Linear",
	LinearSteep: "LinearSteep",
	Smooth:      "Smooth",
	Smooth2:     "Smooth2",
	Smooth3:     "Smooth3",
	ClampedLess: "ClampedLess",
	SmoothLow:   "SmoothLow",
	Smooth3Low:  "Smooth3Low",
	Archipelago: "Archipelago",
}

// ReshapingFns lists every variant in declaration order.
func ReshapingFns() []ReshapingFn {
	out := make([]ReshapingFn, len(reshapeNames))
	for i := range out {
		out[i] = ReshapingFn(i)
	}
	return out
}

func (r ReshapingFn) String() string {
	if r < 0 || int(r) >= len(reshapeNames) {
		return "ReshapingFn(" + itoa(int(r)) + ")"
	}
	return reshapeNames[r]
}

// ParseReshapingFn accepts a variant name, case-insensitively.
func ParseReshapingFn(s string) (ReshapingFn, error) {
	for i, name := range reshapeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return ReshapingFn(i), nil
		}
	}
	return 0, errors.Errorf("unknown reshaping function %q", s)
}

// Next cycles to the following variant.
func (r ReshapingFn) Next() ReshapingFn { return ReshapingFn((int(r) + 1) % len(reshapeNames)) }

// Apply reshapes elevation e using falloff d. The result is clamped to
// [0, 1].
func (r ReshapingFn) Apply(e, d float64) float64 {
	g := 1 - d
	var out float64
	switch r {
	case Input:
		out = e
	case Flat:
		out = (e + g) / 2
	case Clamped:
		out = geom.Clamp(e, g-0.25, g+0.25)
	case Linear:
		out = geom.Lerp(e, g, 0.3)
	case LinearSteep:
		out = geom.Lerp(e, g, 0.7)
	case Smooth:
		out = Bezier3(0, e, 1, g)
	case Smooth2:
		out = Bezier3(0, e, e, g)
	case Smooth3:
		out = Bezier3(0, e, 0.8, g)
	case ClampedLess:
		out = (e+g)/2 - 0.1
	case SmoothLow:
		out = Bezier3(0, e*0.5, 1, g)
	case Smooth3Low:
		out = Bezier3(0, e, 0.5, g)
	case Archipelago:
		out = e - 0.3*d
	default:
		out = e
	}
	return geom.Clamp(out, 0, 1)
}

// Bezier3 evaluates the quadratic Bezier curve through control values p0,
// p1 and p2 in the form p1 + (1-t)^2(p0-p1) + t^2(p2-p1).
func Bezier3(p0, p1, p2, t float64) float64 {
	s := 1 - t
	return p1 + s*s*(p0-p1) + t*t*(p2-p1)
}

func itoa(i int) string { return strconv.Itoa(i) }
