//go:build ebiten

package ui

import (
	"image/color"

	"mapgen/internal/mapgen"
	"mapgen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the filled regions:
// site dots, the Voronoi wireframe and the map boundary.
type Overlay struct {
	painter *render.Painter

	showSites    bool
	showWire     bool
	showBoundary bool
}

// NewOverlay constructs an overlay drawing through painter. The boundary is
// shown by default.
func NewOverlay(painter *render.Painter) *Overlay {
	return &Overlay{painter: painter, showBoundary: true}
}

// Update toggles layers with the digit keys 1 to 3.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSites = !o.showSites
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWire = !o.showWire
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showBoundary = !o.showBoundary
	}
}

// Draw renders the enabled layers for m.
func (o *Overlay) Draw(screen *ebiten.Image, m *mapgen.Map, proj render.Projection) {
	if m == nil || o.painter == nil {
		return
	}
	if o.showWire {
		o.painter.DrawWire(screen, m, proj, color.RGBA{R: 20, G: 20, B: 24, A: 160})
	}
	if o.showSites {
		o.painter.DrawSites(screen, m, proj, color.RGBA{R: 250, G: 250, B: 250, A: 220})
	}
	if o.showBoundary {
		o.painter.DrawBoundary(screen, m, proj, color.RGBA{R: 230, G: 60, B: 60, A: 255})
	}
}
