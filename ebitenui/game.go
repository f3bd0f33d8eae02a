package ebitenui

import (
	"image/color"
	"strconv"
	"time"

	"wurm-game/game/manager"
	"wurm-game/game/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/math/f64"
)

const (
	fontSize      = 8
	titleFontSize = fontSize * 2
)

var (
	snakeColor = color.RGBA{0x00, 0xe4, 0x30, 0xff}
	headColor  = color.RGBA{0x90, 0xff, 0x90, 0xff}
	deadColor  = color.RGBA{0x80, 0x20, 0x20, 0xff}
	foodColor  = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

var directionKeys = []struct {
	dir  types.Direction
	keys []ebiten.Key
}{
	{types.Up, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{types.Down, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{types.Left, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{types.Right, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

// Game adapts a manager.Driver to ebiten.Game.
type Game struct {
	driver   *manager.Driver
	cellSize int
	width    int
	height   int
	face     *text.GoTextFaceSource
	square   *ebiten.Image
	onChange func(from, to manager.Mode)
}

func NewGame(driver *manager.Driver, grid types.Grid, cellSize int, face *text.GoTextFaceSource) *Game {
	return &Game{
		driver:   driver,
		cellSize: cellSize,
		width:    grid.Width * cellSize,
		height:   grid.Height * cellSize,
		face:     face,
	}
}

// OnModeChange registers a callback run after each mode transition.
func (g *Game) OnModeChange(fn func(from, to manager.Mode)) {
	g.onChange = fn
}

func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	before := g.driver.Mode()
	if err := g.driver.Update(dt, pollControls()); err != nil {
		return err
	}
	if after := g.driver.Mode(); after != before && g.onChange != nil {
		g.onChange(before, after)
	}
	return nil
}

func pollControls() manager.Controls {
	var c manager.Controls
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if ebiten.IsKeyPressed(k) {
				c.Keys = c.Keys.Press(dk.dir)
			}
		}
	}
	c.Start = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	c.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	return c
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.driver.Mode() {
	case manager.ModeTitle:
		if demo := g.driver.Demo(); demo != nil {
			g.drawSnapshot(screen, demo.Snapshot(), 0.35)
		}
		g.drawCentered(screen, "WURM", 5, titleFontSize)
		g.drawCentered(screen, "PRESS SPACE KEY TO START", 7, fontSize)
	case manager.ModePlaying:
		s := g.driver.Session()
		g.drawSnapshot(screen, s.Snapshot(), 1)
		g.drawText(screen, "Score: "+strconv.Itoa(s.Score())+"  Best: "+strconv.Itoa(g.driver.Best()), 3, 3, fontSize, text.AlignStart)
		if g.driver.Paused() {
			g.drawCentered(screen, "PAUSED", 5, titleFontSize)
		}
	case manager.ModeGameOver:
		snap := g.driver.Session().Snapshot()
		g.drawSnapshot(screen, snap, 0.5)
		g.drawCentered(screen, "GAME OVER", 5, titleFontSize)
		g.drawCentered(screen, "Hit the "+snap.Collision.String()+" - score "+strconv.Itoa(snap.Score), 7, fontSize)
		g.drawCentered(screen, "PRESS SPACE KEY TO RESTART", 8, fontSize)
	case manager.ModeCleared:
		g.drawSnapshot(screen, g.driver.Session().Snapshot(), 0.5)
		g.drawCentered(screen, "GRID CLEARED", 5, titleFontSize)
		g.drawCentered(screen, "Score "+strconv.Itoa(g.driver.Session().Score()), 7, fontSize)
	}
}

func (g *Game) drawSnapshot(screen *ebiten.Image, snap manager.Snapshot, alpha float64) {
	if snap.FoodPlaced {
		g.drawCell(screen, snap.Food, fade(foodColor, alpha))
	}
	body := snakeColor
	if !snap.Alive {
		body = deadColor
	}
	for j := len(snap.Snake) - 1; j >= 0; j-- {
		clr := body
		if j == 0 && snap.Alive {
			clr = headColor
		}
		g.drawCell(screen, snap.Snake[j], fade(clr, alpha))
	}
}

// cellOrigin maps a grid cell to the top-left pixel of its square.
func (g *Game) cellOrigin(c types.Cell) f64.Vec2 {
	return f64.Vec2{float64(c.X * g.cellSize), float64(c.Y * g.cellSize)}
}

// drawCell tints a white square one pixel smaller than a cell and places it
// at the cell's origin.
func (g *Game) drawCell(screen *ebiten.Image, c types.Cell, clr color.Color) {
	if g.square == nil {
		side := max(g.cellSize-1, 1)
		g.square = ebiten.NewImage(side, side)
		g.square.Fill(color.White)
	}
	o := g.cellOrigin(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o[0], o[1])
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(g.square, op)
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, line float64, size float64) {
	g.drawText(screen, s, float64(g.width)/2, line*titleFontSize+float64(g.height)/4, size, text.AlignCenter)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, size float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = size
	op.PrimaryAlign = align
	text.Draw(screen, s, &text.GoTextFace{
		Source: g.face,
		Size:   size,
	}, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
