package types

// Cell is one discrete grid position.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell one unit away in direction d.
func (c Cell) Step(d Direction) Cell {
	delta := d.Delta()
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Default grid and session settings
const (
	DefaultWidth       = 80
	DefaultHeight      = 60
	DefaultCellSize    = 10
	DefaultStartLength = 1
)

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Area is the number of cells in the grid.
func (g Grid) Area() int {
	if g.Width <= 0 || g.Height <= 0 {
		return 0
	}
	return g.Width * g.Height
}

// Center is the cell a new snake's head starts on.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// MaxStartLength is the longest body that fits leftwards from Center.
func (g Grid) MaxStartLength() int {
	if g.Area() == 0 {
		return 0
	}
	return g.Width/2 + 1
}
