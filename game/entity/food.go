package entity

import (
	"wurm-game/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrGridFull is returned when no free cell is left for the food.
var ErrGridFull = errors.New("grid full")

// sampleAttempts bounds rejection sampling before falling back to a scan of
// the free cells.
const sampleAttempts = 64

type Food struct {
	grid   types.Grid
	rng    *rand.Rand
	pos    types.Cell
	placed bool
}

// NewFood places a food on a random cell of grid that is not in excluded.
func NewFood(grid types.Grid, rng *rand.Rand, excluded ...types.Cell) (*Food, error) {
	f := &Food{grid: grid, rng: rng}
	if err := f.Respawn(excluded); err != nil {
		return f, err
	}
	return f, nil
}

func (f *Food) Position() types.Cell {
	return f.pos
}

// Placed is false only after a respawn failed with ErrGridFull.
func (f *Food) Placed() bool {
	return f.placed
}

// Update does nothing: food only moves when the snake eats it.
func (f *Food) Update(Step) error {
	return nil
}

func (f *Food) Cells() []types.Cell {
	if !f.placed {
		return nil
	}
	return []types.Cell{f.pos}
}

// Respawn moves the food to a uniformly random in-bounds cell outside excluded.
func (f *Food) Respawn(excluded []types.Cell) error {
	occupied := make(map[types.Cell]struct{}, len(excluded))
	for _, c := range excluded {
		if f.grid.Contains(c) {
			occupied[c] = struct{}{}
		}
	}

	area := f.grid.Area()
	if len(occupied) >= area {
		f.placed = false
		return errors.Wrapf(ErrGridFull, "%d of %d cells occupied", len(occupied), area)
	}

	for i := 0; i < sampleAttempts; i++ {
		c := types.Cell{
			X: f.rng.Intn(f.grid.Width),
			Y: f.rng.Intn(f.grid.Height),
		}
		if _, taken := occupied[c]; !taken {
			f.pos, f.placed = c, true
			return nil
		}
	}

	free := make([]types.Cell, 0, area-len(occupied))
	for y := 0; y < f.grid.Height; y++ {
		for x := 0; x < f.grid.Width; x++ {
			c := types.Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	f.pos, f.placed = free[f.rng.Intn(len(free))], true
	return nil
}
