package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"wurm-game/game/config"
	"wurm-game/game/manager"
	"wurm-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	verbose := flag.Bool("v", false, "Verbose raylib logging")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
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

	if !*verbose {
		rl.SetTraceLogLevel(rl.LogWarning)
	}

	width, height := cfg.WindowSize()
	rl.InitWindow(int32(width), int32(height), "Wurm the Game")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer(cfg.CellSize)
	mode := driver.Mode()

	for !rl.WindowShouldClose() {
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		if err := driver.Update(dt, ui.PollControls()); err != nil {
			rl.TraceLog(rl.LogError, "WURM: %v", err)
		}

		if m := driver.Mode(); m != mode {
			logTransition(driver, mode, m)
			mode = m
		}

		renderer.Draw(driver)
	}
}

func logTransition(d *manager.Driver, from, to manager.Mode) {
	s := d.Session()
	switch to {
	case manager.ModePlaying:
		rl.TraceLog(rl.LogInfo, "WURM: session %s started", s.ID())
		rl.SetWindowTitle("Wurm the Game")
	case manager.ModeGameOver:
		snap := s.Snapshot()
		rl.TraceLog(rl.LogWarning, "WURM: session %s over after %d ticks: %s collision, score %d (best %d)",
			s.ID(), snap.Ticks, snap.Collision, snap.Score, d.Best())
		rl.SetWindowTitle(fmt.Sprintf("Wurm the Game - score %d", snap.Score))
	case manager.ModeCleared:
		rl.TraceLog(rl.LogWarning, "WURM: session %s cleared the grid, score %d", s.ID(), s.Score())
	default:
		rl.TraceLog(rl.LogInfo, "WURM: %s -> %s", from, to)
	}
}
