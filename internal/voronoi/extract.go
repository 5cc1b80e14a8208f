package voronoi

import (
	"github.com/golang/geo/r2"

	"mapgen/internal/delaunay"
	"mapgen/internal/geom"
)

// DefaultRayClamp is the maximum length, in world units, of a ray standing
// in for an unbounded Voronoi edge.
const DefaultRayClamp = 10.0

// Region is the Voronoi cell of one site. Vertices follows the rotation of
// the dual face walk; consecutive vertices are joined by an edge and the
// last one closes back to the first. Shared circumcenters appear twice in a
// row, once for each dual edge meeting there.
type Region struct {
	Vertex   delaunay.VertexHandle
	Site     r2.Point
	Vertices []r2.Point
}

// Outline returns the polygon with consecutive duplicates removed,
// including a duplicate of the first vertex at the end.
func (r Region) Outline() []r2.Point {
	out := make([]r2.Point, 0, len(r.Vertices))
	for _, p := range r.Vertices {
		if n := len(out); n > 0 && geom.Norm2(out[n-1].Sub(p)) < geom.Epsilon*geom.Epsilon {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && geom.Norm2(out[0].Sub(out[len(out)-1])) < geom.Epsilon*geom.Epsilon {
		out = out[:len(out)-1]
	}
	return out
}

// Degenerate reports whether the region has too few distinct vertices to
// enclose any area.
func (r Region) Degenerate() bool { return len(r.Outline()) < 3 }

// Extract builds one region per site lying inside bounds. Rays are clamped
// to clamp units; edges with no finite end or a zero-length ray contribute
// nothing. Every vertex is then pulled towards its site until it lies within
// bounds grown by clamp, which also catches the far circumcenters of thin
// hull triangles.
func Extract(g DualGraph, bounds geom.Boundary, clamp float64) []Region {
	sites := g.VerticesInRect(bounds.Rect())
	limit := bounds.Expanded(clamp)
	regions := make([]Region, 0, len(sites))
	for _, v := range sites {
		site := g.Position(v)
		var verts []r2.Point
		for _, e := range g.DualEdges(v) {
			to, from, ok := edgeEnds(e, clamp)
			if !ok {
				continue
			}
			verts = append(verts, limit.Clip(site, to), limit.Clip(site, from))
		}
		regions = append(regions, Region{Vertex: v, Site: site, Vertices: verts})
	}
	return regions
}

// edgeEnds resolves a dual edge into its two finite endpoints, to first.
func edgeEnds(e delaunay.DualEdge, clamp float64) (r2.Point, r2.Point, bool) {
	switch {
	case !e.From.Outer && !e.To.Outer:
		return e.To.Point, e.From.Point, true
	case !e.From.Outer:
		end, ok := rayEnd(e.From.Point, e.To.Direction, clamp)
		return end, e.From.Point, ok
	case !e.To.Outer:
		end, ok := rayEnd(e.To.Point, e.From.Direction, clamp)
		return e.To.Point, end, ok
	default:
		return r2.Point{}, r2.Point{}, false
	}
}

func rayEnd(origin, dir r2.Point, clamp float64) (r2.Point, bool) {
	if geom.Norm2(dir) == 0 || !geom.Finite(dir) {
		return r2.Point{}, false
	}
	return origin.Add(geom.ClampLength(dir, clamp)), true
}
