// Package render draws the road, the sky and the ship onto a Surface.
package render

import (
	"image"
	"image/color"
)

// Point is a screen position in logical pixels.
type Point struct {
	X, Y float64
}

// Sprite is an opaque image handle with a natural size.
type Sprite interface {
	Bounds() image.Rectangle
}

// Align is the horizontal anchor of a line of text.
type Align int

const (
	AlignCenter Align = iota
	// AlignLeft puts the start of the text at x.
	AlignLeft
)

// Surface is the 2D raster canvas the renderer draws onto.
type Surface interface {
	Size() (width, height int)

	FillRect(x, y, w, h float64, c color.Color)
	// FillPolygon fills a convex polygon.
	FillPolygon(pts []Point, c color.Color)
	Line(x0, y0, x1, y1, width float64, c color.Color)
	// Text draws s anchored at x by align and vertically centred on y, with
	// a glyph height of size pixels.
	Text(s string, x, y, size float64, align Align, c color.Color)
	// Overlay blends a translucent rectangle over what is already drawn.
	Overlay(x, y, w, h float64, c color.NRGBA)
	// Blit draws sprite scaled to w x h with its top-left corner at (x, y),
	// rotated counter-clockwise by angle degrees about its centre.
	Blit(sprite Sprite, x, y, w, h, angle float64)
}
