package render

import (
	"image/color"

	"github.com/golang/geo/r2"

	"mapgen/internal/mapgen"
)

// Triangle is one flat-colored piece of a region.
type Triangle struct {
	A, B, C r2.Point
	Color   color.NRGBA
}

// FanTriangles splits every region into triangles fanned from its site over
// consecutive outline vertices, closing the last vertex back to the first.
// Degenerate regions produce nothing.
func FanTriangles(regions []mapgen.Region) []Triangle {
	var out []Triangle
	for _, r := range regions {
		outline := r.Outline()
		if len(outline) < 3 {
			continue
		}
		for i := range outline {
			out = append(out, Triangle{
				A:     r.Site,
				B:     outline[i],
				C:     outline[(i+1)%len(outline)],
				Color: r.Color,
			})
		}
	}
	return out
}

// WireSegments returns the outline edges of every region as point pairs.
func WireSegments(regions []mapgen.Region) [][2]r2.Point {
	var out [][2]r2.Point
	for _, r := range regions {
		outline := r.Outline()
		if len(outline) < 2 {
			continue
		}
		for i := range outline {
			out = append(out, [2]r2.Point{outline[i], outline[(i+1)%len(outline)]})
		}
	}
	return out
}
