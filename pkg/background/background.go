// Package background computes the static sky gradient and edge vignette.
package background

import (
	"image/color"
	"math"
)

// Sky gradient endpoints, top to horizon.
var (
	SkyTop     = color.RGBA{10, 10, 40, 255}
	SkyHorizon = color.RGBA{50, 30, 120, 255}
)

// MaxVignetteAlpha is the darkening applied at the screen edges.
const MaxVignetteAlpha = 120

// Generator builds the per-row and per-column lookup tables for a screen size.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Sky returns one colour per scanline above the horizon.
func (g *Generator) Sky(horizon int) []color.RGBA {
	rows := make([]color.RGBA, horizon)
	span := float64(horizon - 1)
	if span <= 0 {
		span = 1
	}

	for y := range rows {
		t := float64(y) / span
		rows[y] = color.RGBA{
			R: lerp(SkyTop.R, SkyHorizon.R, t),
			G: lerp(SkyTop.G, SkyHorizon.G, t),
			B: lerp(SkyTop.B, SkyHorizon.B, t),
			A: 255,
		}
	}
	return rows
}

// Vignette returns the black overlay alpha for each screen column, darkest
// at the edges and clear in the middle.
func (g *Generator) Vignette() []uint8 {
	cols := make([]uint8, g.Width)
	half := float64(g.Width) / 2

	for x := range cols {
		cols[x] = uint8(MaxVignetteAlpha * math.Abs((float64(x)-half)/half))
	}
	return cols
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
