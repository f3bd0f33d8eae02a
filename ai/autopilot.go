package ai

import "wurm-game/game/types"

// Autopilot steers a snake toward the food while avoiding walls and its own
// body. It only looks one cell ahead.
type Autopilot struct {
	grid types.Grid
}

func NewAutopilot(grid types.Grid) *Autopilot {
	return &Autopilot{grid: grid}
}

// Next picks a heading for the snake whose body (head first) and heading are
// given. The tail still counts as occupied: it only moves after the head has
// been checked.
func (a *Autopilot) Next(body []types.Cell, heading types.Direction, food types.Cell) types.Direction {
	if len(body) == 0 {
		return heading
	}
	head := body[0]

	best := types.None
	bestDist := 0
	for _, dir := range types.Priority {
		if dir.IsReverseOf(heading) {
			continue
		}
		next := head.Step(dir)
		if a.isDanger(next, body) {
			continue
		}
		dist := manhattan(next, food)
		if best == types.None || dist < bestDist {
			best, bestDist = dir, dist
		}
	}

	// No safe direction: keep going and accept the collision.
	if best == types.None {
		return heading
	}
	return best
}

func (a *Autopilot) isDanger(p types.Cell, body []types.Cell) bool {
	if !a.grid.Contains(p) {
		return true
	}
	for _, part := range body {
		if part == p {
			return true
		}
	}
	return false
}

func manhattan(a, b types.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
