package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the tolerance used by the segment predicates.
const Epsilon = 1e-9

// Segment is an oriented line piece from Start to End.
type Segment struct {
	Start r2.Point
	End   r2.Point
}

// Vector returns End - Start.
func (s Segment) Vector() r2.Point { return s.End.Sub(s.Start) }

// InterceptByRay intersects the ray origin + s*dir (s >= 0) with the
// segment. Parallel rays, rays pointing away from the segment and rays
// whose hit falls outside the segment report false. Hits within Epsilon of
// an endpoint are clamped onto the segment's [0,1] parameter range.
func (s Segment) InterceptByRay(origin, dir r2.Point) (r2.Point, bool) {
	seg := s.Vector()
	denom := dir.Cross(seg)
	if math.Abs(denom) < Epsilon {
		return r2.Point{}, false
	}
	diff := s.Start.Sub(origin)
	along := diff.Cross(seg) / denom
	if along < 0 {
		return r2.Point{}, false
	}
	t := diff.Cross(dir) / denom
	if t < -Epsilon || t > 1+Epsilon {
		return r2.Point{}, false
	}
	t = Clamp(t, 0, 1)
	return s.Start.Add(seg.Mul(t)), true
}

// Contains reports whether p lies on the segment.
func (s Segment) Contains(p r2.Point) bool {
	seg := s.Vector()
	rel := p.Sub(s.Start)
	length := seg.Norm()
	if length < Epsilon {
		return rel.Norm() < Epsilon
	}
	if math.Abs(seg.Cross(rel))/length > Epsilon {
		return false
	}
	t := seg.Dot(rel) / (length * length)
	return t >= -Epsilon && t <= 1+Epsilon
}

// CloserToStart reports whether p is strictly nearer Start than End.
func (s Segment) CloserToStart(p r2.Point) bool {
	return Norm2(p.Sub(s.Start)) < Norm2(p.Sub(s.End))
}
