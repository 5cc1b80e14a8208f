package terrain

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func TestStrategiesAreTotal(t *testing.T) {
	for x := -1.0; x <= 1.0; x += 0.125 {
		for y := -1.0; y <= 1.0; y += 0.125 {
			for _, df := range DistanceFns() {
				d := df.Apply(x, y)
				if !finite(d) || d < 0 || d > 1 {
					t.Fatalf("%v(%v,%v) = %v", df, x, y, d)
				}
				for _, rf := range ReshapingFns() {
					e := rf.Apply((x+1)/2, d)
					if !finite(e) || e < 0 || e > 1 {
						t.Fatalf("%v(%v, %v) = %v", rf, (x+1)/2, d, e)
					}
				}
			}
		}
	}
}

func TestStrategiesSurviveOddInputs(t *testing.T) {
	odd := []float64{math.NaN(), math.Inf(1), math.Inf(-1), -3, 7}
	for _, v := range odd {
		for _, df := range DistanceFns() {
			if d := df.Apply(v, v); !finite(d) {
				t.Fatalf("%v(%v) = %v", df, v, d)
			}
		}
		for _, rf := range ReshapingFns() {
			if e := rf.Apply(v, 0.5); !finite(e) {
				t.Fatalf("%v(%v) = %v", rf, v, e)
			}
		}
	}
}

func TestDistanceShape(t *testing.T) {
	for _, df := range DistanceFns() {
		if c := df.Apply(0, 0); c != 0 {
			t.Fatalf("%v at center = %v, want 0", df, c)
		}
		if edge := df.Apply(0.5, 0.5); edge < 0.99 {
			t.Fatalf("%v at corner = %v, want 1", df, edge)
		}
	}
	if got := Diagonal.Apply(0.25, -0.1); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("Diagonal = %v, want 0.5", got)
	}
	if got := Manhattan.Apply(0.25, -0.25); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("Manhattan = %v, want 0.5", got)
	}
}

func TestBezier3(t *testing.T) {
	if got := Bezier3(0, 0.5, 1, 0); got != 0 {
		t.Fatalf("Bezier3(0, 0.5, 1, 0) = %v, want 0", got)
	}
	if got := Bezier3(0, 0.5, 1, 1); got != 1 {
		t.Fatalf("Bezier3(0, 0.5, 1, 1) = %v, want 1", got)
	}
	if got := Bezier3(0.2, 0.9, 0.4, 0.5); math.Abs(got-(0.9+0.25*(0.2-0.9)+0.25*(0.4-0.9))) > 1e-12 {
		t.Fatalf("Bezier3 midpoint = %v", got)
	}
}

func TestParseNames(t *testing.T) {
	for _, df := range DistanceFns() {
		got, err := ParseDistanceFn(df.String())
		if err != nil || got != df {
			t.Fatalf("ParseDistanceFn(%q) = %v, %v", df.String(), got, err)
		}
	}
	for _, rf := range ReshapingFns() {
		got, err := ParseReshapingFn(rf.String())
		if err != nil || got != rf {
			t.Fatalf("ParseReshapingFn(%q) = %v, %v", rf.String(), got, err)
		}
	}
	if got, err := ParseDistanceFn(" diagonal "); err != nil || got != Diagonal {
		t.Fatalf("case-insensitive parse failed: %v %v", got, err)
	}
	if _, err := ParseReshapingFn("nope"); err == nil {
		t.Fatal("expected error for unknown name")
	}
	if len(DistanceFns()) != 8 || len(ReshapingFns()) != 12 {
		t.Fatalf("variant counts = %d/%d", len(DistanceFns()), len(ReshapingFns()))
	}
	if Manhattan.Next() != Euclidean || Archipelago.Next() != Input {
		t.Fatal("Next does not wrap")
	}
}

func TestNoiseFieldDeterministic(t *testing.T) {
	a := NewNoiseField(99, DefaultNoiseParams())
	b := NewNoiseField(99, DefaultNoiseParams())
	c := NewNoiseField(100, DefaultNoiseParams())
	differs := false
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.037-0.9, float64(i)*0.021-0.5
		va, vb := a.At(x, y), b.At(x, y)
		if va != vb {
			t.Fatalf("same seed differs at (%v,%v): %v vs %v", x, y, va, vb)
		}
		if va < -1 || va > 1 {
			t.Fatalf("noise %v out of range", va)
		}
		if c.At(x, y) != va {
			differs = true
		}
	}
	if !differs {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestHeightFieldRanges(t *testing.T) {
	h := NewHeightField(12345, 64, DefaultNoiseParams(), Diagonal, Flat)
	again := NewHeightField(12345, 64, DefaultNoiseParams(), Diagonal, Flat)
	for x := -32.0; x <= 32; x += 4 {
		for y := -32.0; y <= 32; y += 4 {
			s := h.Sample(r2.Point{X: x, Y: y})
			if s.Elevation < 0 || s.Elevation > 1 || s.Moisture < 0 || s.Moisture > 1 {
				t.Fatalf("sample at (%v,%v) out of range: %+v", x, y, s)
			}
			if s != again.Sample(r2.Point{X: x, Y: y}) {
				t.Fatalf("sample at (%v,%v) not deterministic", x, y)
			}
		}
	}
	// Diagonal falloff reaches 1 at the corners, so Flat caps them at half height.
	if e := h.Sample(r2.Point{X: 32, Y: 32}).Elevation; e > 0.5 {
		t.Fatalf("corner elevation = %v, want <= 0.5", e)
	}
}
