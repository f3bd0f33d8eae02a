package types

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Classify checks a freshly advanced head against the walls and against the
// body segments behind it. body must not include the head itself.
func (g Grid) Classify(head Cell, body []Cell) CollisionType {
	if !g.Contains(head) {
		return WallCollision
	}
	for _, part := range body {
		if part == head {
			return SelfCollision
		}
	}
	return NoCollision
}
