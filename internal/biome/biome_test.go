package biome

import (
	"image/color"
	"math"
	"testing"
)

func TestBucketThresholds(t *testing.T) {
	cases := []struct {
		e, m float64
		want Biome
	}{
		{0, 0.5, Ocean},
		{0.35, 0.9, Coast},
		{0.42, 0.1, Beach},
		{0.5, 0.1, Desert},
		{0.5, 0.5, Grassland},
		{0.5, 0.9, Forest},
		{0.75, 0.9, Mountain},
		{0.9, 0.0, SnowyMountain},
	}
	for _, tc := range cases {
		if got := Bucket(tc.e, tc.m); got != tc.want {
			t.Fatalf("Bucket(%v, %v) = %v, want %v", tc.e, tc.m, got, tc.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	inputs := []float64{math.NaN(), math.Inf(-1), -0.5, 0, 0.25, 0.5, 0.75, 1, 2, math.Inf(1)}
	for _, p := range Policies() {
		for _, e := range inputs {
			for _, m := range inputs {
				c := p.Classify(e, m)
				if c.A != 255 {
					t.Fatalf("%v.Classify(%v, %v) alpha = %d", p, e, m, c.A)
				}
				if c != p.Classify(e, m) {
					t.Fatalf("%v.Classify(%v, %v) not deterministic", p, e, m)
				}
			}
		}
	}
}

func TestContinuousEndpoints(t *testing.T) {
	if got := Continuous.Classify(0, 0.5); got != deepWater {
		t.Fatalf("lowest point = %v, want deep water", got)
	}
	if got := Continuous.Classify(1, 0.5); got != snow {
		t.Fatalf("highest point = %v, want snow", got)
	}
	if got := Continuous.Classify(Midline, 0); got != dryLand {
		t.Fatalf("dry shore = %v, want %v", got, dryLand)
	}
	if got := Continuous.Classify(Midline, 1); got != wetLand {
		t.Fatalf("wet shore = %v, want %v", got, wetLand)
	}
	a, b := Continuous.Classify(0.6, 0.4), Continuous.Classify(0.6001, 0.4)
	if diff(a.R, b.R) > 1 || diff(a.G, b.G) > 1 || diff(a.B, b.B) > 1 {
		t.Fatalf("continuous policy jumps: %v vs %v", a, b)
	}
}

func diff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestBlendColors(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 100, G: 200, B: 0, A: 255}
	if got := blendColors(a, b, 0.5); got != (color.NRGBA{R: 50, G: 150, B: 100, A: 255}) {
		t.Fatalf("blend = %v", got)
	}
	if blendColors(a, b, -1) != a || blendColors(a, b, 2) != b {
		t.Fatal("blend weights outside [0,1] should saturate")
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies() {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("ParsePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("voronoi"); err == nil {
		t.Fatal("expected error")
	}
	if Discrete.Next() != Continuous {
		t.Fatal("Next does not wrap")
	}
}
