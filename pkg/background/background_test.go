package background

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSky(t *testing.T) {
	g := NewGenerator(800, 600)
	rows := g.Sky(150)

	require.Len(t, rows, 150)
	assert.Equal(t, color.RGBA{10, 10, 40, 255}, rows[0])
	assert.Equal(t, color.RGBA{50, 30, 120, 255}, rows[149])

	// y = 75: t = 75/149
	tt := 75.0 / 149
	assert.Equal(t, uint8(10+40*tt), rows[75].R)
	assert.Equal(t, uint8(10+20*tt), rows[75].G)
	assert.Equal(t, uint8(40+80*tt), rows[75].B)

	for y := 1; y < len(rows); y++ {
		assert.GreaterOrEqual(t, rows[y].B, rows[y-1].B)
	}
}

func TestSkyDegenerateHorizon(t *testing.T) {
	g := NewGenerator(10, 2)
	assert.Len(t, g.Sky(1), 1)
	assert.Empty(t, g.Sky(0))
}

func TestVignette(t *testing.T) {
	g := NewGenerator(800, 600)
	cols := g.Vignette()

	require.Len(t, cols, 800)
	assert.Equal(t, uint8(120), cols[0])
	assert.Equal(t, uint8(0), cols[400])
	assert.Equal(t, uint8(119), cols[799])
	assert.Equal(t, uint8(60), cols[200])
	assert.Equal(t, cols[100], cols[700])
}
