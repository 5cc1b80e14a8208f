package voronoi

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"mapgen/internal/delaunay"
	"mapgen/internal/geom"
)

// DefaultSkipLength2 is the squared edge length above which a cell is left
// where it is during relaxation.
const DefaultSkipLength2 = 9.0

// RelaxOptions tunes a relaxation pass.
type RelaxOptions struct {
	Clamp       float64
	SkipLength2 float64
}

// DefaultRelaxOptions matches the extractor's ray clamp.
func DefaultRelaxOptions() RelaxOptions {
	return RelaxOptions{Clamp: DefaultRayClamp, SkipLength2: DefaultSkipLength2}
}

// Relax moves every site to the mean of its cell vertices. Each vertex is
// first held within Clamp units of the site. Sites whose cell has an edge
// longer than the skip threshold, or no finite vertex at all, keep their
// position. The result is indexed by vertex handle.
func Relax(g DualGraph, opts RelaxOptions) []r2.Point {
	vs := g.Vertices()
	out := make([]r2.Point, len(vs))
	for i, v := range vs {
		out[i] = relaxedSite(g, v, opts)
	}
	return out
}

// RelaxedSites reports which vertices Relax would move.
func RelaxedSites(g DualGraph, opts RelaxOptions) []bool {
	vs := g.Vertices()
	out := make([]bool, len(vs))
	for i, v := range vs {
		out[i] = relaxedSite(g, v, opts) != g.Position(v)
	}
	return out
}

func relaxedSite(g DualGraph, v delaunay.VertexHandle, opts RelaxOptions) r2.Point {
	site := g.Position(v)
	var verts []r2.Point
	for _, e := range g.DualEdges(v) {
		to, from, ok := edgeEnds(e, opts.Clamp)
		if !ok {
			continue
		}
		to = site.Add(geom.ClampLength(to.Sub(site), opts.Clamp))
		from = site.Add(geom.ClampLength(from.Sub(site), opts.Clamp))
		if geom.Norm2(to.Sub(from)) > opts.SkipLength2 {
			return site
		}
		verts = append(verts, to, from)
	}
	c, ok := geom.Mean(verts)
	if !ok || !geom.Finite(c) {
		return site
	}
	return c
}

// RelaxPasses runs passes rounds of relaxation, rebuilding the
// triangulation from scratch after each.
func RelaxPasses(tri *delaunay.Triangulation, passes int, opts RelaxOptions) (*delaunay.Triangulation, error) {
	for i := 0; i < passes; i++ {
		next, err := Triangulate(Relax(tri, opts))
		if err != nil {
			return nil, errors.Wrapf(err, "triangulate relaxed sites (pass %d)", i+1)
		}
		tri = next
	}
	return tri, nil
}
