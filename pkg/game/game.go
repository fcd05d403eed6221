package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements the ebiten.Game interface and hands each tick to the
// current screen.
type Game struct {
	currentScreen Screen
	width, height int
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// New creates a game that starts on screen.
func New(screen Screen, width, height int) *Game {
	return &Game{
		currentScreen: screen,
		width:         width,
		height:        height,
	}
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
