package app

import (
	"flag"

	"mapgen/internal/mapgen"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width      int
	Height     int
	PanelWidth int
	TPS        int
	Seed       uint64
	Distance   string
	Reshape    string
	Classifier string
	Settings   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      768,
		Height:     768,
		PanelWidth: 240,
		TPS:        60,
		Seed:       12345,
		Distance:   "Diagonal",
		Reshape:    "Flat",
		Classifier: "continuous",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "map view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "map view height in pixels")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "map seed")
	fs.StringVar(&c.Distance, "distance", c.Distance, "distance function")
	fs.StringVar(&c.Reshape, "reshape", c.Reshape, "reshaping function")
	fs.StringVar(&c.Classifier, "classifier", c.Classifier, "biome classifier (continuous or discrete)")
	fs.StringVar(&c.Settings, "set", c.Settings, "comma separated key=value generator settings")
}

// MapConfig builds the generator config from the -set and -classifier flags.
func (c *Config) MapConfig() mapgen.Config {
	kv := ParseSettings(c.Settings)
	if _, ok := kv["classifier"]; !ok && c.Classifier != "" {
		kv["classifier"] = c.Classifier
	}
	return mapgen.FromMap(kv)
}
