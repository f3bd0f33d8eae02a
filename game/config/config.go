package config

import (
	"flag"
	"time"

	"wurm-game/game/types"

	"github.com/pkg/errors"
)

// Reference timing
const (
	DefaultSpeedMs = 100
	DefaultFPS     = 30
)

// Config holds everything a frontend needs to set up a game window.
type Config struct {
	Width    int
	Height   int
	CellSize int
	SpeedMs  int
	FPS      int
	Length   int
	Seed     uint64
	Demo     bool
}

func Default() Config {
	return Config{
		Width:    types.DefaultWidth,
		Height:   types.DefaultHeight,
		CellSize: types.DefaultCellSize,
		SpeedMs:  DefaultSpeedMs,
		FPS:      DefaultFPS,
		Length:   types.DefaultStartLength,
	}
}

// RegisterFlags binds the config fields to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "Grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	fs.IntVar(&c.SpeedMs, "speed", c.SpeedMs, "Game speed in milliseconds per tick (lower = faster)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "Frame rate cap")
	fs.IntVar(&c.Length, "length", c.Length, "Starting snake length")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = time based)")
	fs.BoolVar(&c.Demo, "demo", c.Demo, "Let the autopilot play")
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must be positive, got %dx%d", c.Width, c.Height)
	case c.CellSize < 2:
		return errors.Errorf("cell size must be at least 2 pixels, got %d", c.CellSize)
	case c.SpeedMs <= 0:
		return errors.Errorf("speed must be positive, got %dms", c.SpeedMs)
	case c.FPS <= 0:
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	case c.Length < 1 || c.Length > c.Grid().MaxStartLength():
		return errors.Errorf("length %d does not fit a %d wide grid", c.Length, c.Width)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

// WindowSize is the canvas size in pixels.
func (c Config) WindowSize() (int, int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}

// RandSeed returns Seed, or a time based seed when Seed is zero.
func (c Config) RandSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
