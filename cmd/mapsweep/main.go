package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"mapgen/internal/app"
	"mapgen/internal/mapgen"
	"mapgen/internal/render"
	"mapgen/internal/terrain"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type combo struct {
	distance terrain.DistanceFn
	reshape  terrain.ReshapingFn
}

func (c combo) String() string {
	return fmt.Sprintf("%s/%s", c.distance, c.reshape)
}

type comboResult struct {
	combo
	maps          int
	failures      int
	landFraction  float64
	meanElevation float64
	degenerate    int
}

func main() {
	seeds := flag.Int("seeds", 8, "number of seeds per combination")
	first := flag.Uint64("start", 1, "first seed of the sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	svgOut := flag.Bool("svg", false, "print one map as SVG to stdout instead of sweeping")
	distance := flag.String("distance", "Diagonal", "distance function for -svg")
	reshape := flag.String("reshape", "Flat", "reshaping function for -svg")
	var overrides kvList
	flag.Var(&overrides, "set", "generator setting in key=value form (repeatable)")
	flag.Parse()

	cfg := mapgen.FromMap(app.ParseSettings(overrides.String()))

	if *svgOut {
		if err := writeSVG(cfg, *first, *distance, *reshape); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *seeds <= 0 || *workers <= 0 {
		log.Fatalf("-seeds and -workers must be positive")
	}

	var combos []combo
	for _, df := range terrain.DistanceFns() {
		for _, rf := range terrain.ReshapingFns() {
			combos = append(combos, combo{distance: df, reshape: rf})
		}
	}

	fmt.Printf("Sweeping %d combinations x %d seeds (%d workers, half grid %d)\n", len(combos), *seeds, *workers, cfg.HalfGrid)

	jobs := make(chan combo)
	results := make(chan comboResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				results <- runCombo(cfg, c, *first, *seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, c := range combos {
			jobs <- c
		}
		close(jobs)
	}()

	start := time.Now()
	var all []comboResult
	for res := range results {
		all = append(all, res)
		if res.failures > 0 {
			log.Printf("%s: %d of %d maps failed", res.combo, res.failures, res.failures+res.maps)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].landFraction != all[j].landFraction {
			return all[i].landFraction > all[j].landFraction
		}
		return all[i].combo.String() < all[j].combo.String()
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%3d) %-26s land=%.3f elev=%.3f degenerate=%d maps=%d\n",
			i+1, res.combo, res.landFraction, res.meanElevation, res.degenerate, res.maps)
	}
}

func runCombo(cfg mapgen.Config, c combo, first uint64, seeds int) comboResult {
	res := comboResult{combo: c}
	for i := 0; i < seeds; i++ {
		m, err := mapgen.New(cfg, first+uint64(i), c.distance, c.reshape)
		if err != nil {
			res.failures++
			continue
		}
		s := m.Stats()
		res.maps++
		res.landFraction += s.LandFraction
		res.meanElevation += s.MeanElevation
		res.degenerate += s.Degenerate
	}
	if res.maps > 0 {
		res.landFraction /= float64(res.maps)
		res.meanElevation /= float64(res.maps)
	}
	return res
}

func writeSVG(cfg mapgen.Config, seed uint64, distance, reshape string) error {
	df, err := terrain.ParseDistanceFn(distance)
	if err != nil {
		return err
	}
	rf, err := terrain.ParseReshapingFn(reshape)
	if err != nil {
		return err
	}
	m, err := mapgen.New(cfg, seed, df, rf)
	if err != nil {
		return err
	}
	render.WriteSVG(os.Stdout, m, render.DefaultSVGOptions())
	return nil
}
