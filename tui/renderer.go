// Package tui plays the game in a terminal through tcell.
package tui

import (
	"fmt"
	"image/color"

	"snake-classic/game"
	"snake-classic/theme"

	"github.com/gdamore/tcell/v2"
)

// Each tile is two columns wide so the board looks square in most fonts.
const tileWidth = 2

const (
	glyphHead     = '@'
	glyphBody     = 'o'
	glyphFood     = '*'
	glyphObstacle = '#'
	glyphBorderH  = '-'
	glyphBorderV  = '|'
	glyphCorner   = '+'
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer draws snapshots onto a tcell screen. The board sits inside a
// border at the top left, with the HUD lines underneath.
type Renderer struct {
	screen   tcell.Screen
	defStyle tcell.Style
	styles   map[rune]tcell.Style
}

func NewRenderer(s tcell.Screen) *Renderer {
	def := tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault)
	return &Renderer{
		screen:   s,
		defStyle: def,
		styles: map[rune]tcell.Style{
			glyphHead:     def.Foreground(rgb(theme.SnakeHead)).Bold(true),
			glyphBody:     def.Foreground(rgb(theme.SnakeBody)),
			glyphFood:     def.Foreground(rgb(theme.Food)).Bold(true),
			glyphObstacle: def.Foreground(rgb(theme.Obstacle)).Reverse(true),
		},
	}
}

// tile puts glyph on board tile (x, y), offset by the border.
func (r *Renderer) tile(x, y int, glyph rune) {
	style := r.styles[glyph]
	col := 1 + x*tileWidth
	for i := 0; i < tileWidth; i++ {
		r.screen.SetContent(col+i, 1+y, glyph, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, c := range []rune(s) {
		r.screen.SetContent(x+i, y, c, nil, style)
	}
}

func (r *Renderer) border(w, h int) {
	right, bottom := w*tileWidth+1, h+1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, glyphBorderH, nil, r.defStyle)
		r.screen.SetContent(x, bottom, glyphBorderH, nil, r.defStyle)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, glyphBorderV, nil, r.defStyle)
		r.screen.SetContent(right, y, glyphBorderV, nil, r.defStyle)
	}
	for _, c := range [][2]int{{0, 0}, {right, 0}, {0, bottom}, {right, bottom}} {
		r.screen.SetContent(c[0], c[1], glyphCorner, nil, r.defStyle)
	}
}

// Draw clears the screen and paints s. It does not call Show.
func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()
	r.border(s.Grid.Width, s.Grid.Height)

	for _, o := range s.Obstacles {
		r.tile(o.X, o.Y, glyphObstacle)
	}
	r.tile(s.Food.X, s.Food.Y, glyphFood)
	for i := len(s.Snake) - 1; i > 0; i-- {
		r.tile(s.Snake[i].X, s.Snake[i].Y, glyphBody)
	}
	head := s.Head()
	r.tile(head.X, head.Y, glyphHead)

	y := s.Grid.Height + 3
	r.text(0, y, fmt.Sprintf("Score: %d  High: %d  Difficulty: %s", s.Score, s.HighScore, s.Difficulty), r.defStyle)
	r.text(0, y+1, s.Status, r.defStyle.Bold(true))
	if s.State == game.Over && s.Result != nil {
		r.text(0, y+2, s.Result.String(), r.defStyle.Foreground(rgb(theme.Food)))
	}
	r.text(0, y+3, "Enter start  p pause  r reset  1-4 difficulty  q quit", r.defStyle.Dim(true))
}
