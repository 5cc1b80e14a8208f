//go:build ebiten

package render

import (
	"image/color"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mapgen/internal/mapgen"
)

const maxBatchVertices = 1<<16 - 3

// Painter draws a map with DrawTriangles, caching the vertex batches until
// the map or the projection changes.
type Painter struct {
	white *ebiten.Image

	m       *mapgen.Map
	proj    Projection
	batches []batch
	wire    [][4]float32
}

type batch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewPainter allocates the solid fill source image.
func NewPainter() *Painter {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Painter{white: white}
}

// DrawRegions fills every region of m.
func (p *Painter) DrawRegions(screen *ebiten.Image, m *mapgen.Map, proj Projection) {
	if m == nil {
		return
	}
	p.prepare(m, proj)
	op := &ebiten.DrawTrianglesOptions{}
	for _, b := range p.batches {
		screen.DrawTriangles(b.vertices, b.indices, p.white, op)
	}
}

// DrawWire strokes the region outlines.
func (p *Painter) DrawWire(screen *ebiten.Image, m *mapgen.Map, proj Projection, col color.Color) {
	if m == nil {
		return
	}
	p.prepare(m, proj)
	for _, s := range p.wire {
		vector.StrokeLine(screen, s[0], s[1], s[2], s[3], 1, col, false)
	}
}

// DrawSites marks every site with a dot.
func (p *Painter) DrawSites(screen *ebiten.Image, m *mapgen.Map, proj Projection, col color.Color) {
	if m == nil {
		return
	}
	for _, r := range m.Regions() {
		x, y := proj.ToScreen(r.Site)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 1.5, col, false)
	}
}

// DrawBoundary outlines the map boundary.
func (p *Painter) DrawBoundary(screen *ebiten.Image, m *mapgen.Map, proj Projection, col color.Color) {
	if m == nil {
		return
	}
	b := m.Boundary()
	x, y := proj.ToScreen(b.TopLeft())
	w, h := b.Width()*proj.Scale(), b.Height()*proj.Scale()
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, col, false)
}

func (p *Painter) prepare(m *mapgen.Map, proj Projection) {
	if p.m == m && p.proj == proj {
		return
	}
	p.m, p.proj = m, proj
	p.batches = p.batches[:0]
	p.wire = p.wire[:0]

	var cur batch
	for _, tri := range FanTriangles(m.Regions()) {
		if len(cur.vertices)+3 > maxBatchVertices {
			p.batches = append(p.batches, cur)
			cur = batch{}
		}
		r := float32(tri.Color.R) / 255
		g := float32(tri.Color.G) / 255
		bl := float32(tri.Color.B) / 255
		a := float32(tri.Color.A) / 255
		base := uint16(len(cur.vertices))
		for _, pt := range [3]r2.Point{tri.A, tri.B, tri.C} {
			x, y := proj.ToScreen(pt)
			cur.vertices = append(cur.vertices, ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: bl, ColorA: a,
			})
		}
		cur.indices = append(cur.indices, base, base+1, base+2)
	}
	if len(cur.vertices) > 0 {
		p.batches = append(p.batches, cur)
	}

	for _, s := range WireSegments(m.Regions()) {
		x0, y0 := proj.ToScreen(s[0])
		x1, y1 := proj.ToScreen(s[1])
		p.wire = append(p.wire, [4]float32{float32(x0), float32(y0), float32(x1), float32(y1)})
	}
}
