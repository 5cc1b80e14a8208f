//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mapgen/internal/app"
	"mapgen/internal/biome"
	"mapgen/internal/core"
	"mapgen/internal/mapgen"
	"mapgen/internal/terrain"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	df, err := terrain.ParseDistanceFn(cfg.Distance)
	if err != nil {
		log.Fatalf("distance: %v", err)
	}
	rf, err := terrain.ParseReshapingFn(cfg.Reshape)
	if err != nil {
		log.Fatalf("reshape: %v", err)
	}
	if _, err := biome.ParsePolicy(cfg.Classifier); err != nil {
		log.Fatalf("classifier: %v", err)
	}

	m, err := mapgen.New(cfg.MapConfig(), cfg.Seed, df, rf)
	if err != nil {
		log.Fatalf("generate map: %v", err)
	}
	ctrl := app.NewController(mapgen.NewStore(m), core.NewRNG(cfg.Seed))
	game := app.New(ctrl, cfg.Width, cfg.Height, cfg.PanelWidth)

	ebiten.SetWindowTitle("mapgen: " + m.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.PanelWidth, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	ctrl.Wait()
}
