package entity

import "wurm-game/game/types"

// Step is what an entity sees during one tick.
type Step struct {
	Food      Feeder
	Requested []types.Direction // in priority order
}

// Entity is anything the session updates once per tick and a frontend draws
// as a list of occupied cells.
type Entity interface {
	Update(step Step) error
	Cells() []types.Cell
}

// Feeder is the view of the food the snake borrows during a tick.
type Feeder interface {
	Position() types.Cell
	Placed() bool
	Respawn(excluded []types.Cell) error
}

var (
	_ Entity = (*Snake)(nil)
	_ Entity = (*Food)(nil)
	_ Feeder = (*Food)(nil)
)
