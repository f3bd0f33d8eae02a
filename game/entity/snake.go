package entity

import (
	"wurm-game/game/types"

	"github.com/pkg/errors"
)

// Snake is the player's creature. Body[0] is the head.
type Snake struct {
	grid      types.Grid
	body      []types.Cell
	heading   types.Direction
	alive     bool
	collision types.CollisionType
	eaten     int
}

// NewSnake lays length segments leftwards from the grid centre, heading right.
// length is clamped to [1, grid.MaxStartLength()].
func NewSnake(grid types.Grid, length int) *Snake {
	if limit := grid.MaxStartLength(); length > limit {
		length = limit
	}
	if length < 1 {
		length = 1
	}
	center := grid.Center()
	body := make([]types.Cell, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, types.Cell{X: center.X - i, Y: center.Y})
	}
	return NewSnakeWithBody(grid, body, types.Right)
}

// NewSnakeWithBody builds a live snake from an explicit body, head first.
func NewSnakeWithBody(grid types.Grid, body []types.Cell, heading types.Direction) *Snake {
	if heading == types.None {
		heading = types.Right
	}
	return &Snake{
		grid:    grid,
		body:    append([]types.Cell(nil), body...),
		heading: heading,
		alive:   len(body) > 0,
	}
}

// Head is the front segment, the one that moved last.
func (s *Snake) Head() types.Cell {
	return s.body[0]
}

// Heading is the direction the next tick moves in.
func (s *Snake) Heading() types.Direction {
	return s.heading
}

// Len is the number of segments, including the head.
func (s *Snake) Len() int {
	return len(s.body)
}

// Alive is false from the first tick that hit a wall or the body.
func (s *Snake) Alive() bool {
	return s.alive
}

// Collision reports what killed the snake, or NoCollision while it lives.
func (s *Snake) Collision() types.CollisionType {
	return s.collision
}

// Eaten is the number of foods consumed so far.
func (s *Snake) Eaten() int {
	return s.eaten
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Cell {
	return append([]types.Cell(nil), s.body...)
}

// Turn applies the first requested direction that is not a 180-degree turn.
// Requests are expected in priority order.
func (s *Snake) Turn(requested ...types.Direction) bool {
	for _, dir := range requested {
		if dir == types.None || dir.IsReverseOf(s.heading) {
			continue
		}
		s.heading = dir
		return true
	}
	return false
}

// Update runs one tick with the food and requests carried by step.
func (s *Snake) Update(step Step) error {
	return s.Tick(step.Food, step.Requested...)
}

// Tick advances the snake by one cell. A dead snake is left untouched.
func (s *Snake) Tick(food Feeder, requested ...types.Direction) error {
	if !s.alive {
		return nil
	}

	s.Turn(requested...)

	newHead := s.Head().Step(s.heading)
	s.body = append(s.body, types.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if c := s.grid.Classify(newHead, s.body[1:]); c != types.NoCollision {
		s.alive = false
		s.collision = c
		return nil
	}

	if food != nil && food.Placed() && newHead == food.Position() {
		s.eaten++
		if err := food.Respawn(s.body); err != nil {
			return errors.Wrapf(err, "respawn food after eating at %v", newHead)
		}
		return nil
	}

	s.body = s.body[:len(s.body)-1]
	return nil
}
