package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key bindings.
const (
	KeyLeft  = ebiten.KeyArrowLeft
	KeyRight = ebiten.KeyArrowRight
	KeyDebug = ebiten.KeyD
	KeyReset = ebiten.KeySpace
	KeySave  = ebiten.KeyF5
	KeyLoad  = ebiten.KeyF9
	KeyQuit  = ebiten.KeyEscape
)

// Keyboard reads intents from Ebiten's keyboard state. Poll must be called
// from the game's Update.
type Keyboard struct{}

// Poll handles input for the current tick
func (Keyboard) Poll() Intent {
	return Intent{
		Steer: resolveSteer(
			inpututil.KeyPressDuration(KeyLeft),
			inpututil.KeyPressDuration(KeyRight),
		),
		Debug: ebiten.IsKeyPressed(KeyDebug),
		Reset: inpututil.IsKeyJustReleased(KeyReset),
		Save:  inpututil.IsKeyJustPressed(KeySave),
		Load:  inpututil.IsKeyJustPressed(KeyLoad),
		Quit:  inpututil.IsKeyJustPressed(KeyQuit),
	}
}
