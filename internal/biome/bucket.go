package biome

import "image/color"

// Biome is a discrete terrain class.
type Biome uint8

const (
	Ocean Biome = iota
	Coast
	Beach
	Mountain
	SnowyMountain
	Desert
	Grassland
	Forest
)

var biomeInfo = [...]struct {
	name string
	rgb  color.NRGBA
}{
	Ocean:         {"ocean", color.NRGBA{R: 30, G: 60, B: 140, A: 255}},
	Coast:         {"coast", color.NRGBA{R: 70, G: 130, B: 200, A: 255}},
	Beach:         {"beach", color.NRGBA{R: 230, G: 215, B: 160, A: 255}},
	Mountain:      {"mountain", color.NRGBA{R: 125, G: 115, B: 105, A: 255}},
	SnowyMountain: {"snowy-mountain", color.NRGBA{R: 240, G: 240, B: 245, A: 255}},
	Desert:        {"desert", color.NRGBA{R: 215, G: 190, B: 120, A: 255}},
	Grassland:     {"grassland", color.NRGBA{R: 135, G: 180, B: 80, A: 255}},
	Forest:        {"forest", color.NRGBA{R: 40, G: 105, B: 50, A: 255}},
}

func (b Biome) String() string {
	if int(b) >= len(biomeInfo) {
		return "unknown"
	}
	return biomeInfo[b].name
}

// Color returns the fixed color of the biome.
func (b Biome) Color() color.NRGBA {
	if int(b) >= len(biomeInfo) {
		return color.NRGBA{A: 255}
	}
	return biomeInfo[b].rgb
}

// Bucket picks the biome for clamped elevation e and moisture m.
func Bucket(e, m float64) Biome {
	switch {
	case e < 0.3:
		return Ocean
	case e < 0.4:
		return Coast
	case e < 0.45:
		return Beach
	case e > 0.85:
		return SnowyMountain
	case e > 0.7:
		return Mountain
	case m < 0.33:
		return Desert
	case m < 0.66:
		return Grassland
	default:
		return Forest
	}
}
