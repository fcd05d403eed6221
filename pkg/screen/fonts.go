package screen

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// bitmapHeight is the natural glyph height of the bitmap face.
const bitmapHeight = 16.0

// LargeText is the size from which text switches to the vector face.
const LargeText = 32.0

// Fonts holds the faces used for on-screen text.
type Fonts struct {
	Small text.Face
	Bold  *text.GoTextFaceSource
}

// NewFonts loads the bitmap face for small text and Go Bold for banners.
func NewFonts() (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &Fonts{
		Small: text.NewGoXFace(bitmapfont.Face),
		Bold:  src,
	}, nil
}

// face returns the face for size and the extra scale to apply to it.
func (f *Fonts) face(size float64) (text.Face, float64) {
	if size >= LargeText {
		return &text.GoTextFace{Source: f.Bold, Size: size}, 1
	}
	return f.Small, size / bitmapHeight
}
