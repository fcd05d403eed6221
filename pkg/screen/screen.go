// Package screen implements render.Surface on an Ebiten image.
package screen

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tickBit/fly-game/pkg/render"
)

var whiteSubImage *ebiten.Image

// white returns a 1x1 white source for DrawTriangles. It is cut from the
// middle of a larger image so sampling never reaches the edges.
func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Screen draws onto dst. It is cheap and meant to be rebuilt every frame.
type Screen struct {
	dst   *ebiten.Image
	fonts *Fonts

	vertices []ebiten.Vertex
	indices  []uint16
}

// New wraps dst. fonts may be nil, in which case Text draws nothing.
func New(dst *ebiten.Image, fonts *Fonts) *Screen {
	return &Screen{dst: dst, fonts: fonts}
}

// Reset points the screen at a new target image, keeping its buffers.
func (s *Screen) Reset(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Screen) Overlay(x, y, w, h float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Screen) Line(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, false)
}

// FillPolygon fans the convex polygon out from its first point.
func (s *Screen) FillPolygon(pts []render.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := vertexColor(c)

	s.vertices = s.vertices[:0]
	for _, p := range pts {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	s.indices = s.indices[:0]
	for i := 1; i < len(pts)-1; i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.dst.DrawTriangles(s.vertices, s.indices, white(), op)
}

// Text draws str vertically centred on y and anchored at x by align.
func (s *Screen) Text(str string, x, y, size float64, align render.Align, c color.Color) {
	if s.fonts == nil {
		return
	}
	face, scale := s.fonts.face(size)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LayoutOptions.PrimaryAlign = textAlign(align)
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.Filter = ebiten.FilterLinear

	text.Draw(s.dst, str, face, op)
}

// Blit draws a sprite scaled into the w x h box at (x, y), rotated about the
// box centre. Sprites that are not Ebiten images are ignored.
func (s *Screen) Blit(sprite render.Sprite, x, y, w, h, angle float64) {
	img, ok := sprite.(*ebiten.Image)
	if !ok {
		return
	}
	b := img.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/sw, h/sh)
	op.GeoM.Translate(-w/2, -h/2)
	// screen y grows downward, so counter-clockwise is a negative rotation
	op.GeoM.Rotate(-angle * math.Pi / 180)
	op.GeoM.Translate(x+w/2, y+h/2)
	op.Filter = ebiten.FilterLinear

	s.dst.DrawImage(img, op)
}

func textAlign(a render.Align) text.Align {
	if a == render.AlignLeft {
		return text.AlignStart
	}
	return text.AlignCenter
}

// vertexColor converts c to the straight-alpha components DrawTriangles
// expects.
func vertexColor(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

var _ render.Surface = (*Screen)(nil)
