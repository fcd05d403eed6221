// Package assets provides the ship sprite, embedded or loaded from disk.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed ship.png
var shipPNG []byte

// DefaultShip decodes the embedded ship sprite.
func DefaultShip() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(shipPNG))
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded ship: %w", err)
	}
	return img, nil
}

// LoadShip returns the sprite at path, or the embedded one when path is
// empty.
func LoadShip(path string) (*ebiten.Image, error) {
	if path != "" {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load ship sprite %s: %w", path, err)
		}
		return img, nil
	}

	img, err := DefaultShip()
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
