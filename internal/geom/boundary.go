package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Boundary is an axis-aligned rectangle anchored at its top-left corner.
// World space has y growing upwards, so the bottom edge sits at
// top-left.Y - height.
type Boundary struct {
	topLeft r2.Point
	width   float64
	height  float64
}

// FromTopLeft builds a boundary from its top-left corner and extent.
// Negative extents are folded to their absolute value.
func FromTopLeft(topLeft r2.Point, width, height float64) Boundary {
	return Boundary{topLeft: topLeft, width: math.Abs(width), height: math.Abs(height)}
}

func (b Boundary) Width() float64  { return b.width }
func (b Boundary) Height() float64 { return b.height }

func (b Boundary) TopLeft() r2.Point { return b.topLeft }

func (b Boundary) TopRight() r2.Point {
	return r2.Point{X: b.topLeft.X + b.width, Y: b.topLeft.Y}
}

func (b Boundary) BottomRight() r2.Point {
	return r2.Point{X: b.topLeft.X + b.width, Y: b.topLeft.Y - b.height}
}

func (b Boundary) BottomLeft() r2.Point {
	return r2.Point{X: b.topLeft.X, Y: b.topLeft.Y - b.height}
}

// Center returns the midpoint of the rectangle.
func (b Boundary) Center() r2.Point {
	return r2.Point{X: b.topLeft.X + b.width/2, Y: b.topLeft.Y - b.height/2}
}

// Corners lists the corners clockwise starting at the top-left.
func (b Boundary) Corners() [4]r2.Point {
	return [4]r2.Point{b.TopLeft(), b.TopRight(), b.BottomRight(), b.BottomLeft()}
}

// Edges returns the top, right, bottom and left edges, each oriented
// clockwise so consecutive edges share an endpoint.
func (b Boundary) Edges() [4]Segment {
	c := b.Corners()
	return [4]Segment{
		{Start: c[0], End: c[1]},
		{Start: c[1], End: c[2]},
		{Start: c[2], End: c[3]},
		{Start: c[3], End: c[0]},
	}
}

// Rect converts the boundary into an r2.Rect.
func (b Boundary) Rect() r2.Rect {
	return r2.RectFromPoints(b.BottomLeft(), b.TopRight())
}

// Contains reports whether p lies inside the boundary or on its edges.
func (b Boundary) Contains(p r2.Point) bool {
	return b.Rect().ContainsPoint(p)
}

// Expanded grows the boundary by margin on every side.
func (b Boundary) Expanded(margin float64) Boundary {
	return FromTopLeft(
		r2.Point{X: b.topLeft.X - margin, Y: b.topLeft.Y + margin},
		b.width+2*margin,
		b.height+2*margin,
	)
}

// RayExit returns the point where a ray cast from origin along dir first
// crosses the boundary edges. The ray is tested against every edge and the
// nearest hit wins.
func (b Boundary) RayExit(origin, dir r2.Point) (r2.Point, bool) {
	best := math.Inf(1)
	var hit r2.Point
	found := false
	for _, edge := range b.Edges() {
		p, ok := edge.InterceptByRay(origin, dir)
		if !ok {
			continue
		}
		d := Norm2(p.Sub(origin))
		if d < best {
			best = d
			hit = p
			found = true
		}
	}
	return hit, found
}

// Clip pulls p back along the ray from origin until it lies inside the
// boundary. Points already inside are returned unchanged. origin should lie
// inside the boundary; otherwise p is clamped coordinate-wise.
func (b Boundary) Clip(origin, p r2.Point) r2.Point {
	if b.Contains(p) {
		return p
	}
	if b.Contains(origin) {
		if hit, ok := b.RayExit(origin, p.Sub(origin)); ok {
			return hit
		}
	}
	r := b.Rect()
	return r2.Point{X: Clamp(p.X, r.X.Lo, r.X.Hi), Y: Clamp(p.Y, r.Y.Lo, r.Y.Hi)}
}
