package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"mapgen/internal/mapgen"
)

// SVGOptions controls WriteSVG.
type SVGOptions struct {
	Width    int
	Height   int
	Margin   float64
	Sites    bool
	Wire     bool
	Boundary bool
}

// DefaultSVGOptions renders a 640x640 image with the boundary outlined.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 640, Height: 640, Margin: 16, Boundary: true}
}

// WriteSVG draws the regions of m as filled polygons.
func WriteSVG(w io.Writer, m *mapgen.Map, opts SVGOptions) {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultSVGOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	proj := NewProjection(m.Boundary(), opts.Width, opts.Height, opts.Margin)

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:rgb(12,14,20)")

	stroke := "stroke:none"
	if opts.Wire {
		stroke = "stroke:rgb(20,20,20);stroke-width:0.5"
	}
	for _, r := range m.Regions() {
		outline := r.Outline()
		if len(outline) < 3 {
			continue
		}
		xs := make([]int, len(outline))
		ys := make([]int, len(outline))
		for i, p := range outline {
			x, y := proj.ToScreen(p)
			xs[i], ys[i] = int(math.Round(x)), int(math.Round(y))
		}
		canvas.Polygon(xs, ys, fill(r.Color)+";"+stroke)
	}

	if opts.Sites {
		for _, r := range m.Regions() {
			x, y := proj.ToScreen(r.Site)
			canvas.Circle(int(math.Round(x)), int(math.Round(y)), 2, "fill:rgb(255,255,255)")
		}
	}
	if opts.Boundary {
		b := m.Boundary()
		x, y := proj.ToScreen(b.TopLeft())
		canvas.Rect(int(math.Round(x)), int(math.Round(y)),
			int(math.Round(b.Width()*proj.Scale())), int(math.Round(b.Height()*proj.Scale())),
			"fill:none;stroke:rgb(230,60,60);stroke-width:2")
	}
	canvas.End()
}

func fill(c color.NRGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
}
