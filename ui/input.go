package ui

import (
	"wurm-game/game/manager"
	"wurm-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	dir  types.Direction
	keys []int32
}{
	{types.Up, []int32{rl.KeyUp, rl.KeyW}},
	{types.Down, []int32{rl.KeyDown, rl.KeyS}},
	{types.Left, []int32{rl.KeyLeft, rl.KeyA}},
	{types.Right, []int32{rl.KeyRight, rl.KeyD}},
}

// PollControls samples the keyboard for one frame.
func PollControls() manager.Controls {
	var c manager.Controls
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if rl.IsKeyDown(k) {
				c.Keys = c.Keys.Press(dk.dir)
			}
		}
	}
	c.Start = rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter)
	c.Pause = rl.IsKeyPressed(rl.KeyP)
	return c
}
