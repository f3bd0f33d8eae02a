package ui

import (
	"fmt"

	"wurm-game/game/manager"
	"wurm-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	titleFontSize = 40
	fontSize      = 20
	hudFontSize   = 10
)

var (
	snakeColor = rl.Green
	headColor  = rl.Lime
	foodColor  = rl.Red
	deadColor  = rl.Maroon
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cellSize int) *Renderer {
	r := &Renderer{cellSize: int32(cellSize)}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(d *manager.Driver) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch d.Mode() {
	case manager.ModeTitle:
		if demo := d.Demo(); demo != nil {
			r.drawSnapshot(demo.Snapshot(), 0.35)
		}
		r.drawCentered("WURM", -titleFontSize, titleFontSize, rl.White)
		r.drawCentered("PRESS SPACE TO START", titleFontSize/2, fontSize, rl.LightGray)
	case manager.ModePlaying:
		r.drawSnapshot(d.Session().Snapshot(), 1)
		r.drawHUD(d)
		if d.Paused() {
			r.drawCentered("PAUSED", -fontSize/2, titleFontSize, rl.Yellow)
		}
	case manager.ModeGameOver:
		snap := d.Session().Snapshot()
		r.drawSnapshot(snap, 0.5)
		r.drawCentered("GAME OVER", -titleFontSize, titleFontSize, rl.Red)
		r.drawCentered(fmt.Sprintf("Hit the %s - score %d", snap.Collision, snap.Score), titleFontSize/2, fontSize, rl.White)
		r.drawCentered("PRESS SPACE TO RESTART", titleFontSize/2+fontSize*2, fontSize, rl.LightGray)
	case manager.ModeCleared:
		r.drawSnapshot(d.Session().Snapshot(), 0.5)
		r.drawCentered("GRID CLEARED", -titleFontSize, titleFontSize, rl.Gold)
		r.drawCentered(fmt.Sprintf("Score %d", d.Session().Score()), titleFontSize/2, fontSize, rl.White)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawSnapshot(snap manager.Snapshot, alpha float32) {
	if snap.FoodPlaced {
		r.drawCell(snap.Food, rl.Fade(foodColor, alpha))
	}
	body := snakeColor
	if !snap.Alive {
		body = deadColor
	}
	for j := len(snap.Snake) - 1; j >= 0; j-- {
		color := body
		if j == 0 && snap.Alive {
			color = headColor
		}
		r.drawCell(snap.Snake[j], rl.Fade(color, alpha))
	}
}

// drawCell leaves a one pixel gap between neighbouring cells.
func (r *Renderer) drawCell(c types.Cell, color rl.Color) {
	rl.DrawRectangle(
		int32(c.X)*r.cellSize,
		int32(c.Y)*r.cellSize,
		r.cellSize-1, r.cellSize-1, color)
}

func (r *Renderer) drawHUD(d *manager.Driver) {
	s := d.Session()
	label := fmt.Sprintf("Score: %d  Best: %d", s.Score(), d.Best())
	rl.DrawText(label, 5, 5, hudFontSize, rl.White)
}

func (r *Renderer) drawCentered(text string, dy, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (r.screenWidth-w)/2, r.screenHeight/2+dy, size, color)
}
