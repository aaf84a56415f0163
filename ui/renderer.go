package ui

import (
	"image"
	"image/color"

	"snake-classic/game"
	"snake-classic/theme"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	lineHeight = 22
	hudPadding = 8
)

// Renderer paints snapshots into the raylib window. It only draws between
// BeginDrawing and EndDrawing, which the window loop owns.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	boardSize    int32
}

func NewRenderer(cellSize, tiles int) *Renderer {
	r := &Renderer{
		cellSize:  int32(cellSize),
		boardSize: int32(cellSize * tiles),
	}
	r.screenWidth = r.boardSize
	r.screenHeight = r.boardSize + theme.HUDHeight
	return r
}

func (r *Renderer) Size() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func fillRect(rect image.Rectangle, c color.RGBA) {
	rl.DrawRectangle(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()), toRL(c))
}

// Draw paints one frame of s.
func (r *Renderer) Draw(s game.Snapshot) {
	rl.ClearBackground(toRL(theme.Background))
	r.drawGrid()
	r.drawObstacles(s)
	r.drawFood(s)
	r.drawSnake(s)
	r.drawHUD(s)
	if s.State == game.Over && s.Result != nil {
		r.drawGameOver(s)
	}
}

func (r *Renderer) drawGrid() {
	grid := toRL(theme.GridLine)
	for i := int32(0); i <= r.boardSize; i += r.cellSize {
		rl.DrawLine(i, 0, i, r.boardSize, grid)
		rl.DrawLine(0, i, r.boardSize, i, grid)
	}
}

func (r *Renderer) drawObstacles(s game.Snapshot) {
	for _, o := range s.Obstacles {
		fillRect(theme.ObstacleRect(o, int(r.cellSize)), theme.Obstacle)
	}
}

func (r *Renderer) drawFood(s game.Snapshot) {
	center, radius, highlight, hr := theme.FoodCircle(s.Food, int(r.cellSize))
	rl.DrawCircle(int32(center.X), int32(center.Y), float32(radius), toRL(theme.Food))
	rl.DrawCircle(int32(highlight.X), int32(highlight.Y), float32(hr), toRL(theme.FoodHighlight))
}

func (r *Renderer) drawSnake(s game.Snapshot) {
	cell := int(r.cellSize)
	// Tail first so the head stays on top.
	for i := len(s.Snake) - 1; i > 0; i-- {
		fillRect(theme.BodyRect(s.Snake[i], cell), theme.SnakeBody)
	}
	head := s.Head()
	fillRect(theme.HeadRect(head, cell), theme.SnakeHead)
	for _, eye := range theme.Eyes(head, s.Direction, cell) {
		rl.DrawRectangle(int32(eye.X), int32(eye.Y), theme.EyeSize, theme.EyeSize, toRL(theme.Eye))
	}
}

func (r *Renderer) drawHUD(s game.Snapshot) {
	text := toRL(theme.Text)
	y := r.boardSize + hudPadding
	rl.DrawText(scoreLine(s), hudPadding, y, fontSize, text)
	y += lineHeight
	rl.DrawText(s.Status, hudPadding, y, fontSize, text)
	y += lineHeight
	rl.DrawText(helpLine, hudPadding, y, fontSize-4, text)
}

func (r *Renderer) drawGameOver(s game.Snapshot) {
	rl.DrawRectangle(0, 0, r.boardSize, r.boardSize, toRL(theme.OverlayShade))
	msg := s.Result.String()
	width := rl.MeasureText(msg, fontSize+4)
	rl.DrawText(msg, (r.boardSize-width)/2, r.boardSize/2-fontSize, fontSize+4, toRL(theme.OverlayText))
	hint := "Enter to play again"
	width = rl.MeasureText(hint, fontSize)
	rl.DrawText(hint, (r.boardSize-width)/2, r.boardSize/2+lineHeight, fontSize, toRL(theme.OverlayText))
}
