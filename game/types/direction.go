package types

// Direction is a cardinal heading. None means "no request".
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Priority is the order in which simultaneously pressed directions are honoured.
var Priority = [...]Direction{Up, Down, Left, Right}

// Delta converts a Direction into a unit displacement.
func (d Direction) Delta() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse heading; None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// IsReverseOf reports whether turning from heading to d would be a 180-degree turn.
func (d Direction) IsReverseOf(heading Direction) bool {
	return d != None && d == heading.Opposite()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
