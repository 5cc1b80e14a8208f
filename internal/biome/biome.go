// Package biome turns elevation and moisture into map colors.
package biome

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"

	"mapgen/internal/geom"
)

// Policy selects how a (elevation, moisture) pair is colored.
type Policy int

const (
	// Continuous blends water and land hues without hard borders.
	Continuous Policy = iota
	// Discrete picks one of the fixed Biome colors.
	Discrete
)

var policyNames = [...]string{Continuous: "continuous", Discrete: "discrete"}

// Policies lists every policy.
func Policies() []Policy { return []Policy{Continuous, Discrete} }

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "unknown"
	}
	return policyNames[p]
}

// ParsePolicy accepts a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Policy(i), nil
		}
	}
	return 0, errors.Errorf("unknown classifier %q", s)
}

// Next cycles to the following policy.
func (p Policy) Next() Policy { return Policy((int(p) + 1) % len(policyNames)) }

// Classify maps elevation and moisture, both expected in [0, 1], to a color.
// Out-of-range and NaN inputs are clamped first.
func (p Policy) Classify(elevation, moisture float64) color.NRGBA {
	e := geom.Clamp(elevation, 0, 1)
	m := geom.Clamp(moisture, 0, 1)
	if p == Discrete {
		return Bucket(e, m).Color()
	}
	return continuous(e, m)
}

// Midline separates water from land in the continuous policy.
const Midline = 0.5

var (
	deepWater    = color.NRGBA{R: 18, G: 36, B: 96, A: 255}
	shallowWater = color.NRGBA{R: 64, G: 118, B: 196, A: 255}
	dryLand      = color.NRGBA{R: 210, G: 185, B: 139, A: 255}
	wetLand      = color.NRGBA{R: 85, G: 135, B: 60, A: 255}
	snow         = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func continuous(e, m float64) color.NRGBA {
	if e < Midline {
		return blendColors(deepWater, shallowWater, e/Midline)
	}
	land := blendColors(dryLand, wetLand, m)
	return blendColors(land, snow, (e-Midline)/(1-Midline))
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
