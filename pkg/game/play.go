package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tickBit/fly-game/pkg/input"
	"github.com/tickBit/fly-game/pkg/models"
	"github.com/tickBit/fly-game/pkg/render"
	"github.com/tickBit/fly-game/pkg/screen"
	"github.com/tickBit/fly-game/pkg/ui"
)

// PlayScreen runs the world and draws it.
type PlayScreen struct {
	world    *World
	input    input.Source
	renderer *render.Renderer
	surface  *screen.Screen
	notice   ui.Notice
	savePath string
}

// NewPlayScreen creates the in-game screen. sprite is the ship image and
// fonts may be nil when no text should be drawn.
func NewPlayScreen(world *World, src input.Source, sprite render.Sprite, fonts *screen.Fonts, savePath string) *PlayScreen {
	return &PlayScreen{
		world:    world,
		input:    src,
		renderer: render.NewRenderer(world.Viewport, sprite),
		surface:  screen.New(nil, fonts),
		savePath: savePath,
	}
}

// World returns the simulated world.
func (ps *PlayScreen) World() *World {
	return ps.world
}

func (ps *PlayScreen) Update() error {
	in := ps.input.Poll()
	if in.Quit {
		return ebiten.Termination
	}

	switch {
	case in.Save:
		ps.save()
	case in.Load:
		ps.load()
	}

	ps.world.Tick(in)
	ps.notice.Update()
	return nil
}

func (ps *PlayScreen) save() {
	snap, err := ps.world.Snapshot()
	if err == nil {
		err = snap.SaveToFile(ps.savePath)
	}
	if err != nil {
		log.Printf("Failed to save snapshot: %v", err)
		ps.notice.Show("Save failed")
		return
	}
	log.Printf("Saved snapshot to %s at tick %d", ps.savePath, snap.Tick)
	ps.notice.Show("Saved")
}

func (ps *PlayScreen) load() {
	snap, err := models.LoadFromFile(ps.savePath)
	if err == nil {
		err = ps.world.Restore(snap)
	}
	if err != nil {
		log.Printf("Failed to load snapshot: %v", err)
		if errors.Is(err, models.ErrVersion) {
			ps.notice.Show("Save is from another version")
		} else {
			ps.notice.Show("Load failed")
		}
		return
	}
	ps.notice.Show("Loaded")
}

func (ps *PlayScreen) Draw(dst *ebiten.Image) {
	ps.surface.Reset(dst)
	ps.draw(ps.surface)
}

func (ps *PlayScreen) draw(dst render.Surface) {
	frame := ps.world.Frame()
	ps.renderer.Draw(dst, &frame)

	if ps.world.Debug && ps.world.State == StatePlay {
		ui.DrawReadout(dst, ps.world.Readout())
	}
	if ps.world.State == StateGameOver {
		ui.DrawGameOver(dst)
	}
	ps.notice.Draw(dst)
}
