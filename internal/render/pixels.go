package render

import (
	"image"
	"image/color"
	"math"

	"mapgen/internal/mapgen"
)

// Rasterize paints the map into a width x height image using the fan
// triangles of every region. Pixels not covered by any region keep bg.
func Rasterize(m *mapgen.Map, width, height int, bg color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fillSolidRGBA(img.Pix, bg)
	proj := NewProjection(m.Boundary(), width, height, 0)
	for _, tri := range FanTriangles(m.Regions()) {
		ax, ay := proj.ToScreen(tri.A)
		bx, by := proj.ToScreen(tri.B)
		cx, cy := proj.ToScreen(tri.C)
		fillTriangleRGBA(img.Pix, img.Stride, width, height, [6]float64{ax, ay, bx, by, cx, cy}, tri.Color)
	}
	return img
}

// fillSolidRGBA sets every pixel of buf to col.
func fillSolidRGBA(buf []byte, col color.NRGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillTriangleRGBA writes col into every pixel whose center lies inside the
// triangle given as x0,y0,x1,y1,x2,y2. Either winding is accepted.
func fillTriangleRGBA(buf []byte, stride, width, height int, t [6]float64, col color.NRGBA) {
	minX := int(math.Max(0, math.Floor(math.Min(t[0], math.Min(t[2], t[4])))))
	maxX := int(math.Min(float64(width-1), math.Ceil(math.Max(t[0], math.Max(t[2], t[4])))))
	minY := int(math.Max(0, math.Floor(math.Min(t[1], math.Min(t[3], t[5])))))
	maxY := int(math.Min(float64(height-1), math.Ceil(math.Max(t[1], math.Max(t[3], t[5])))))

	area := edge(t[0], t[1], t[2], t[3], t[4], t[5])
	if area == 0 || math.IsNaN(area) {
		return
	}
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(t[2], t[3], t[4], t[5], px, py)
			w1 := edge(t[4], t[5], t[0], t[1], px, py)
			w2 := edge(t[0], t[1], t[2], t[3], px, py)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			base := y*stride + x*4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}
