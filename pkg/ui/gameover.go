// Package ui draws the text overlays on top of the road.
package ui

import (
	"image/color"

	"github.com/tickBit/fly-game/pkg/render"
)

const (
	gameOverText = "GAME OVER"
	gameOverSize = 80
	restartText  = "Press SPACE to restart"
	hintSize     = 12
)

var (
	GameOverColor = color.RGBA{255, 235, 255, 255}
	HintColor     = color.RGBA{180, 180, 200, 255}
)

// DrawGameOver draws the GAME OVER banner centred on the screen.
func DrawGameOver(dst render.Surface) {
	width, height := dst.Size()
	centerX := float64(width) / 2
	centerY := float64(height) / 2

	dst.Text(gameOverText, centerX, centerY, gameOverSize, render.AlignCenter, GameOverColor)
	dst.Text(restartText, centerX, centerY+gameOverSize*0.75, hintSize, render.AlignCenter, HintColor)
}
