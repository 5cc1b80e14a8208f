//go:build ebiten

package app

import (
	"image/color"

	"mapgen/internal/render"
	"mapgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the map controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD

	width  int
	height int
	panel  int
	proj   render.Projection
}

// New constructs a Game drawing a width x height map view with a HUD panel
// of panelWidth pixels to its right.
func New(ctrl *Controller, width, height, panelWidth int) *Game {
	painter := render.NewPainter()
	g := &Game{
		ctrl:    ctrl,
		painter: painter,
		overlay: ui.NewOverlay(painter),
		width:   width,
		height:  height,
		panel:   panelWidth,
	}
	if panelWidth > 0 {
		g.hud = ui.NewHUD(ctrl, panelWidth)
	}
	if m := ctrl.Map(); m != nil {
		g.proj = render.NewProjection(m.Boundary(), width, height, 8)
	}
	return g
}

// Update handles keyboard shortcuts and HUD clicks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.ctrl.NewSeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.ctrl.CycleDistance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.ctrl.CycleReshape()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.CycleClassifier()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.width)
	}
	return nil
}

// Draw renders the current map snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 20, A: 255})
	m := g.ctrl.Map()
	if m == nil {
		return
	}
	g.proj = render.NewProjection(m.Boundary(), g.width, g.height, 8)
	g.painter.DrawRegions(screen, m, g.proj)
	if g.overlay != nil {
		g.overlay.Draw(screen, m, g.proj)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.width, g.height)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.panel, g.height
}
