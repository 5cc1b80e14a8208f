package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestBoundaryCornersAndEdges(t *testing.T) {
	b := FromTopLeft(r2.Point{X: -10, Y: 10}, 20, 20)

	want := [4]r2.Point{{X: -10, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: -10}, {X: -10, Y: -10}}
	if got := b.Corners(); got != want {
		t.Fatalf("corners = %v, want %v", got, want)
	}
	edges := b.Edges()
	for i, e := range edges {
		next := edges[(i+1)%4]
		if e.End != next.Start {
			t.Fatalf("edge %d does not connect to edge %d: %v vs %v", i, (i+1)%4, e.End, next.Start)
		}
	}
	if !b.Contains(r2.Point{X: 10, Y: -10}) {
		t.Fatal("corner should be contained")
	}
	if b.Contains(r2.Point{X: 10.01, Y: 0}) {
		t.Fatal("point right of the boundary should not be contained")
	}
	if c := b.Center(); c != (r2.Point{}) {
		t.Fatalf("center = %v, want origin", c)
	}
}

func TestBoundaryExpanded(t *testing.T) {
	b := FromTopLeft(r2.Point{X: -10, Y: 10}, 20, 20).Expanded(10)
	if b.TopLeft() != (r2.Point{X: -20, Y: 20}) || b.Width() != 40 || b.Height() != 40 {
		t.Fatalf("unexpected expanded boundary: %v %v %v", b.TopLeft(), b.Width(), b.Height())
	}
}

func TestInterceptByRay(t *testing.T) {
	seg := Segment{Start: r2.Point{X: 0, Y: -1}, End: r2.Point{X: 0, Y: 1}}

	cases := []struct {
		name   string
		origin r2.Point
		dir    r2.Point
		want   r2.Point
		ok     bool
	}{
		{"hit", r2.Point{X: -2, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 0}, true},
		{"hit endpoint", r2.Point{X: -2, Y: 1}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1}, true},
		{"parallel", r2.Point{X: -2, Y: 0}, r2.Point{X: 0, Y: 1}, r2.Point{}, false},
		{"backwards", r2.Point{X: -2, Y: 0}, r2.Point{X: -1, Y: 0}, r2.Point{}, false},
		{"miss beyond end", r2.Point{X: -2, Y: 3}, r2.Point{X: 1, Y: 0}, r2.Point{}, false},
		{"diagonal", r2.Point{X: -1, Y: -1}, r2.Point{X: 1, Y: 1}, r2.Point{X: 0, Y: 0}, true},
	}
	for _, tc := range cases {
		got, ok := seg.InterceptByRay(tc.origin, tc.dir)
		if ok != tc.ok {
			t.Fatalf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
		}
		if ok && Norm2(got.Sub(tc.want)) > 1e-18 {
			t.Fatalf("%s: hit = %v, want %v", tc.name, got, tc.want)
		}
		again, ok2 := seg.InterceptByRay(tc.origin, tc.dir)
		if again != got || ok2 != ok {
			t.Fatalf("%s: recomputation differs", tc.name)
		}
	}
}

func TestSegmentContainsAndCloser(t *testing.T) {
	seg := Segment{Start: r2.Point{X: 0, Y: 0}, End: r2.Point{X: 4, Y: 0}}
	if !seg.Contains(r2.Point{X: 2, Y: 0}) {
		t.Fatal("midpoint should be on the segment")
	}
	if seg.Contains(r2.Point{X: 5, Y: 0}) {
		t.Fatal("point past the end should not be on the segment")
	}
	if seg.Contains(r2.Point{X: 2, Y: 0.1}) {
		t.Fatal("point off the line should not be on the segment")
	}
	if !seg.CloserToStart(r2.Point{X: 1, Y: 3}) {
		t.Fatal("x=1 is closer to start")
	}
	if seg.CloserToStart(r2.Point{X: 3, Y: -2}) {
		t.Fatal("x=3 is closer to end")
	}
}

func TestRayExit(t *testing.T) {
	b := FromTopLeft(r2.Point{X: -10, Y: 10}, 20, 20)
	p, ok := b.RayExit(r2.Point{}, r2.Point{X: 0, Y: 3})
	if !ok || p != (r2.Point{X: 0, Y: 10}) {
		t.Fatalf("exit = %v %v, want (0,10)", p, ok)
	}
	if _, ok := b.RayExit(r2.Point{}, r2.Point{}); ok {
		t.Fatal("zero direction should not exit")
	}
}

func TestClampLength(t *testing.T) {
	long := ClampLength(r2.Point{X: 30, Y: 40}, 10)
	if math.Abs(long.Norm()-10) > 1e-12 {
		t.Fatalf("clamped length = %v, want 10", long.Norm())
	}
	short := r2.Point{X: 3, Y: 4}
	if got := ClampLength(short, 10); got != short {
		t.Fatalf("short vector changed: %v", got)
	}
	if got := Clamp(math.NaN(), 0, 1); got != 0 {
		t.Fatalf("Clamp(NaN) = %v, want 0", got)
	}
}

func TestClip(t *testing.T) {
	b := FromTopLeft(r2.Point{X: -10, Y: 10}, 20, 20)
	inside := r2.Point{X: 3, Y: -4}
	if got := b.Clip(r2.Point{}, inside); got != inside {
		t.Fatalf("inside point moved to %v", got)
	}
	got := b.Clip(r2.Point{X: 2, Y: 0}, r2.Point{X: 2, Y: 400})
	if math.Abs(got.X-2) > 1e-9 || math.Abs(got.Y-10) > 1e-9 {
		t.Fatalf("clip = %v, want (2,10)", got)
	}
	got = b.Clip(r2.Point{}, r2.Point{X: 40, Y: 20})
	if math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y-5) > 1e-9 {
		t.Fatalf("clip = %v, want (10,5)", got)
	}
	if got := b.Clip(r2.Point{X: 50, Y: 0}, r2.Point{X: 60, Y: -30}); got != (r2.Point{X: 10, Y: -10}) {
		t.Fatalf("clip from outside = %v, want (10,-10)", got)
	}
}

func TestMean(t *testing.T) {
	if _, ok := Mean(nil); ok {
		t.Fatal("empty mean should report false")
	}
	m, ok := Mean([]r2.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 3}})
	if !ok || math.Abs(m.X-1) > 1e-12 || math.Abs(m.Y-1) > 1e-12 {
		t.Fatalf("mean = %v, want (1,1)", m)
	}
}
