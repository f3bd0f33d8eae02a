package main

import (
	"flag"
	"log"

	"wurm-game/ebitenui"
	"wurm-game/game/config"
	"wurm-game/game/manager"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/exp/rand"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	face, err := ebitenui.LoadFont()
	if err != nil {
		log.Fatal(err)
	}

	driver, err := manager.NewDriver(manager.Options{
		Grid:     cfg.Grid(),
		Interval: cfg.TickInterval(),
		Length:   cfg.Length,
		Rand:     rand.New(rand.NewSource(cfg.RandSeed())),
		Autoplay: cfg.Demo,
		Attract:  true,
	})
	if err != nil {
		log.Fatal(err)
	}

	g := ebitenui.NewGame(driver, cfg.Grid(), cfg.CellSize, face)
	g.OnModeChange(func(from, to manager.Mode) {
		s := driver.Session()
		switch to {
		case manager.ModePlaying:
			log.Printf("session %s started", s.ID())
		case manager.ModeGameOver:
			snap := s.Snapshot()
			log.Printf("session %s over after %d ticks: %s collision, score %d (best %d)",
				s.ID(), snap.Ticks, snap.Collision, snap.Score, driver.Best())
		case manager.ModeCleared:
			log.Printf("session %s cleared the grid, score %d", s.ID(), s.Score())
		default:
			log.Printf("%s -> %s", from, to)
		}
	})

	width, height := cfg.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Wurm the Game")
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
