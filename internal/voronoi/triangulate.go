package voronoi

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"mapgen/internal/delaunay"
	"mapgen/internal/geom"
)

// DualGraph is the subset of the triangulation the extractor and the
// relaxer rely on.
type DualGraph interface {
	Vertices() []delaunay.VertexHandle
	Position(v delaunay.VertexHandle) r2.Point
	DualEdges(v delaunay.VertexHandle) []delaunay.DualEdge
	VerticesInRect(r r2.Rect) []delaunay.VertexHandle
}

// Triangulate inserts every point in order. The first rejected point fails
// the whole build; the error keeps the delaunay sentinel for errors.Is.
func Triangulate(points []r2.Point) (*delaunay.Triangulation, error) {
	bounds := r2.EmptyRect()
	for _, p := range points {
		if geom.Finite(p) {
			bounds = bounds.AddPoint(p)
		}
	}
	tri := delaunay.New(bounds)
	for i, p := range points {
		if _, err := tri.Insert(p); err != nil {
			return nil, errors.Wrapf(err, "insert site %d", i)
		}
	}
	return tri, nil
}
