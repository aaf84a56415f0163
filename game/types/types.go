package types

import "time"

// Point is a tile position on the grid, not a pixel position.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of tiles on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Game constants
const (
	CanvasSize = 400 // Drawing surface size in pixels
	CellSize   = 20  // Tile size in pixels
	TileCount  = CanvasSize / CellSize

	ScoreIncrement = 10
	SpeedStep      = 5 * time.Millisecond
	MinSpeed       = 80 * time.Millisecond

	MaxFoodAttempts     = 100 // Redraws before food placement gives up
	MaxObstacleAttempts = 200 // Redraws shared by a whole obstacle batch
)

// StartPosition is where a fresh snake is placed.
var StartPosition = Point{X: 10, Y: 10}

// DefaultGrid returns the standard 20x20 board.
func DefaultGrid() Grid {
	return Grid{Width: TileCount, Height: TileCount}
}
