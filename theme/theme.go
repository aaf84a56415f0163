// Package theme holds the colors and head geometry shared by the renderers.
package theme

import (
	"image"
	"image/color"

	"snake-classic/game/types"
)

var (
	Background    = color.RGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff}
	GridLine      = color.RGBA{R: 0xe9, G: 0xec, B: 0xef, A: 0xff}
	SnakeHead     = color.RGBA{R: 0x76, G: 0x4b, B: 0xa2, A: 0xff}
	SnakeBody     = color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	Food          = color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
	FoodHighlight = color.RGBA{R: 0xff, G: 0x87, B: 0x87, A: 0xff}
	Obstacle      = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	Eye           = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Text          = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	HUDBackground = color.RGBA{R: 0x2d, G: 0x2d, B: 0x44, A: 0xff} // Behind light HUD text
	OverlayShade  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x99}
	OverlayText   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	HUDHeight     = 72 // Pixels below the board for score and status lines
	EyeSize       = 3
	eyeOffset     = 5
	headInset     = 2
	bodyInset     = 1
	obstacleInset = 2
)

// Cell returns the pixel rectangle of a tile.
func Cell(p types.Point, cell int) image.Rectangle {
	x, y := p.X*cell, p.Y*cell
	return image.Rect(x, y, x+cell, y+cell)
}

// HeadRect is the head block: anchored at the tile origin, 2px short.
func HeadRect(p types.Point, cell int) image.Rectangle {
	r := Cell(p, cell)
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X-headInset, r.Max.Y-headInset)
}

// BodyRect is a body segment, inset 1px on every side.
func BodyRect(p types.Point, cell int) image.Rectangle {
	return Cell(p, cell).Inset(bodyInset)
}

// ObstacleRect is an obstacle block, inset 2px on every side.
func ObstacleRect(p types.Point, cell int) image.Rectangle {
	return Cell(p, cell).Inset(obstacleInset)
}

// Eyes returns the top-left corners of the two eyes of a head at p facing dir.
// A head that has not moved yet has no eyes.
func Eyes(p types.Point, dir types.Direction, cell int) []image.Point {
	x, y := p.X*cell, p.Y*cell
	switch dir {
	case types.Right:
		return []image.Point{
			{X: x + cell - eyeOffset, Y: y + eyeOffset},
			{X: x + cell - eyeOffset, Y: y + cell - eyeOffset - EyeSize},
		}
	case types.Left:
		return []image.Point{
			{X: x + eyeOffset - EyeSize, Y: y + eyeOffset},
			{X: x + eyeOffset - EyeSize, Y: y + cell - eyeOffset - EyeSize},
		}
	case types.Down:
		return []image.Point{
			{X: x + eyeOffset, Y: y + cell - eyeOffset},
			{X: x + cell - eyeOffset, Y: y + cell - eyeOffset},
		}
	case types.Up:
		return []image.Point{
			{X: x + eyeOffset, Y: y + eyeOffset - EyeSize},
			{X: x + cell - eyeOffset, Y: y + eyeOffset - EyeSize},
		}
	}
	return nil
}

// FoodCircle returns the center and radius of the food disc and its highlight.
func FoodCircle(p types.Point, cell int) (center image.Point, radius int, highlight image.Point, highlightRadius int) {
	c := image.Pt(p.X*cell+cell/2, p.Y*cell+cell/2)
	return c, cell/2 - 2, c.Sub(image.Pt(3, 3)), cell / 4
}
