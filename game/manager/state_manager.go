package manager

import (
	"wurm-game/game/entity"
	"wurm-game/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Snapshot is a read-only copy of everything a frontend needs to draw a frame.
type Snapshot struct {
	Grid       types.Grid
	Snake      []types.Cell
	Heading    types.Direction
	Food       types.Cell
	FoodPlaced bool
	Alive      bool
	Collision  types.CollisionType
	Score      int
	Ticks      int
}

// StateManager owns one game session: a snake and the food it chases.
type StateManager struct {
	id      string
	grid    types.Grid
	snake   *entity.Snake
	food    *entity.Food
	ticks   int
	cleared bool
}

// NewStateManager starts a session with a snake of length segments centred
// on grid. A length that does not fit leftwards from the centre is rejected.
func NewStateManager(grid types.Grid, length int, rng *rand.Rand) (*StateManager, error) {
	if err := checkStart(grid, length); err != nil {
		return nil, err
	}
	snake := entity.NewSnake(grid, length)
	food, err := entity.NewFood(grid, rng, snake.Cells()...)
	if err != nil {
		return nil, errors.Wrap(err, "place initial food")
	}
	return &StateManager{
		id:    uuid.New().String(),
		grid:  grid,
		snake: snake,
		food:  food,
	}, nil
}

func checkStart(grid types.Grid, length int) error {
	if grid.Area() == 0 {
		return errors.Errorf("invalid grid %dx%d", grid.Width, grid.Height)
	}
	if length > grid.MaxStartLength() {
		return errors.Errorf("start length %d does not fit a %d wide grid (max %d)",
			length, grid.Width, grid.MaxStartLength())
	}
	return nil
}

func (sm *StateManager) ID() string {
	return sm.id
}

func (sm *StateManager) Grid() types.Grid {
	return sm.grid
}

// Alive mirrors the snake's alive flag.
func (sm *StateManager) Alive() bool {
	return sm.snake.Alive()
}

// Cleared reports that the snake filled the grid and no food could be placed.
func (sm *StateManager) Cleared() bool {
	return sm.cleared
}

// Running is true while ticks still change the session.
func (sm *StateManager) Running() bool {
	return sm.snake.Alive() && !sm.cleared
}

// Score is the number of foods eaten this session.
func (sm *StateManager) Score() int {
	return sm.snake.Eaten()
}

// Ticks counts the ticks that reached the snake; it stops once the session ends.
func (sm *StateManager) Ticks() int {
	return sm.ticks
}

// Tick advances the session once using the held direction keys.
func (sm *StateManager) Tick(keys types.Keys) error {
	return sm.step(keys.Candidates()...)
}

// Steer advances the session once with a single requested heading.
func (sm *StateManager) Steer(dir types.Direction) error {
	return sm.step(dir)
}

func (sm *StateManager) step(requested ...types.Direction) error {
	if !sm.Running() {
		return nil
	}
	sm.ticks++
	step := entity.Step{Food: sm.food, Requested: requested}
	for _, e := range []entity.Entity{sm.snake, sm.food} {
		if err := e.Update(step); err != nil {
			if errors.Is(err, entity.ErrGridFull) {
				sm.cleared = true
			}
			return errors.Wrapf(err, "session %s tick %d", sm.id, sm.ticks)
		}
	}
	return nil
}

func (sm *StateManager) Snapshot() Snapshot {
	return Snapshot{
		Grid:       sm.grid,
		Snake:      sm.snake.Cells(),
		Heading:    sm.snake.Heading(),
		Food:       sm.food.Position(),
		FoodPlaced: sm.food.Placed(),
		Alive:      sm.snake.Alive(),
		Collision:  sm.snake.Collision(),
		Score:      sm.snake.Eaten(),
		Ticks:      sm.ticks,
	}
}

// Entities lists the drawable entities, food first.
func (sm *StateManager) Entities() []entity.Entity {
	return []entity.Entity{sm.food, sm.snake}
}
