package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tickBit/fly-game/assets"
	"github.com/tickBit/fly-game/pkg/config"
	"github.com/tickBit/fly-game/pkg/game"
	"github.com/tickBit/fly-game/pkg/input"
	"github.com/tickBit/fly-game/pkg/projection"
	"github.com/tickBit/fly-game/pkg/screen"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	sprite, err := assets.LoadShip(cfg.SpritePath)
	if err != nil {
		log.Fatal(err)
	}

	fonts, err := screen.NewFonts()
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.RoadSeed()
	world := game.NewWorld(seed)
	log.Printf("Game started: seed %d, snapshots in %s", seed, cfg.SavePath)

	play := game.NewPlayScreen(world, input.Keyboard{}, sprite, fonts, cfg.SavePath)
	g := game.New(play, projection.ScreenWidth, projection.ScreenHeight)

	ebiten.SetWindowSize(projection.ScreenWidth*cfg.WindowScale, projection.ScreenHeight*cfg.WindowScale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(game.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
