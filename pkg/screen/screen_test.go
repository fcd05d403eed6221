package screen

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickBit/fly-game/pkg/render"
)

func TestVertexColor(t *testing.T) {
	tests := []struct {
		name       string
		c          color.Color
		r, g, b, a float32
	}{
		{"opaque", color.RGBA{255, 0, 51, 255}, 1, 0, 0.2, 1},
		{"straight alpha", color.NRGBA{0, 0, 0, 51}, 0, 0, 0, 0.2},
		{"premultiplied half white", color.RGBA{128, 128, 128, 128}, 1, 1, 1, 128.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := vertexColor(tt.c)
			assert.InDelta(t, tt.r, r, 1e-6)
			assert.InDelta(t, tt.g, g, 1e-6)
			assert.InDelta(t, tt.b, b, 1e-6)
			assert.InDelta(t, tt.a, a, 1e-6)
		})
	}
}

func TestFontFaces(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)

	face, scale := fonts.face(12)
	assert.Equal(t, fonts.Small, face)
	assert.Equal(t, 0.75, scale)

	face, scale = fonts.face(80)
	assert.Equal(t, 1.0, scale)
	bold, ok := face.(*text.GoTextFace)
	require.True(t, ok)
	assert.Equal(t, 80.0, bold.Size)
}

func TestTextAlign(t *testing.T) {
	assert.Equal(t, text.AlignStart, textAlign(render.AlignLeft))
	assert.Equal(t, text.AlignCenter, textAlign(render.AlignCenter))
}
