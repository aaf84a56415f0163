// Package web plays the game through ebiten. The same code runs in a desktop
// window and, built with GOOS=js GOARCH=wasm, in a browser canvas.
package web

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"snake-classic/game"
	"snake-classic/theme"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Config controls the ebiten frontend.
type Config struct {
	CellSize int
	TPS      int
}

var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyEnter:      "Enter",
	ebiten.KeySpace:      " ",
	ebiten.KeyP:          "p",
	ebiten.KeyR:          "r",
	ebiten.KeyDigit1:     "1",
	ebiten.KeyDigit2:     "2",
	ebiten.KeyDigit3:     "3",
	ebiten.KeyDigit4:     "4",
}

// App adapts a game.Game to ebiten.Game. Ebiten calls Update at a fixed
// rate; the loop inside decides when the snake actually moves.
type App struct {
	game      *game.Game
	loop      *game.Loop
	snapshot  game.Snapshot
	scheduled bool
	clock     func() time.Duration
	cell      int
	keys      []ebiten.Key
}

func NewApp(g *game.Game, cellSize int) *App {
	start := time.Now()
	a := &App{
		game:     g,
		snapshot: g.Snapshot(),
		clock:    func() time.Duration { return time.Since(start) },
		cell:     cellSize,
	}
	a.loop = game.NewLoop(g, game.RendererFunc(func(s game.Snapshot) {
		a.snapshot = s
	}))
	return a
}

func (a *App) press(keys []ebiten.Key) {
	for _, k := range keys {
		name, ok := keyNames[k]
		if !ok {
			continue
		}
		if err := a.game.Press(name); err != nil {
			log.Printf("key %q: %v", name, err)
		}
		a.snapshot = a.game.Snapshot()
		a.scheduled = a.game.State() == game.Running
	}
}

func (a *App) frame() {
	if a.scheduled {
		a.scheduled = a.loop.Frame(a.clock())
	}
}

func (a *App) Update() error {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
	}
	a.press(a.keys)
	a.frame()
	return nil
}

func (a *App) boardSize() int {
	return a.snapshot.Grid.Width * a.cell
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.boardSize(), a.snapshot.Grid.Height*a.cell + theme.HUDHeight
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func (a *App) Draw(screen *ebiten.Image) {
	s := a.snapshot
	size := a.boardSize()
	boardHeight := s.Grid.Height * a.cell
	screen.Fill(theme.Background)

	for i := 0; i <= size; i += a.cell {
		vector.StrokeLine(screen, float32(i), 0, float32(i), float32(boardHeight), 1, theme.GridLine, false)
	}
	for i := 0; i <= boardHeight; i += a.cell {
		vector.StrokeLine(screen, 0, float32(i), float32(size), float32(i), 1, theme.GridLine, false)
	}

	for _, o := range s.Obstacles {
		fillRect(screen, theme.ObstacleRect(o, a.cell), theme.Obstacle)
	}

	center, radius, highlight, hr := theme.FoodCircle(s.Food, a.cell)
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(radius), theme.Food, true)
	vector.DrawFilledCircle(screen, float32(highlight.X), float32(highlight.Y), float32(hr), theme.FoodHighlight, true)

	for i := len(s.Snake) - 1; i > 0; i-- {
		fillRect(screen, theme.BodyRect(s.Snake[i], a.cell), theme.SnakeBody)
	}
	head := s.Head()
	fillRect(screen, theme.HeadRect(head, a.cell), theme.SnakeHead)
	for _, eye := range theme.Eyes(head, s.Direction, a.cell) {
		fillRect(screen, image.Rect(eye.X, eye.Y, eye.X+theme.EyeSize, eye.Y+theme.EyeSize), theme.Eye)
	}

	vector.DrawFilledRect(screen, 0, float32(boardHeight), float32(size), theme.HUDHeight, theme.HUDBackground, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  High: %d  %s", s.Score, s.HighScore, s.Difficulty), 8, boardHeight+6)
	ebitenutil.DebugPrintAt(screen, s.Status, 8, boardHeight+26)
	ebitenutil.DebugPrintAt(screen, "Enter start  P pause  R reset  1-4 level", 8, boardHeight+46)

	if s.State == game.Over && s.Result != nil {
		vector.DrawFilledRect(screen, 0, 0, float32(size), float32(boardHeight), theme.OverlayShade, false)
		ebitenutil.DebugPrintAt(screen, s.Result.String(), size/2-80, boardHeight/2-16)
		ebitenutil.DebugPrintAt(screen, "Enter to play again", size/2-60, boardHeight/2+8)
	}
}

// Run opens the ebiten window (or canvas) and blocks until it closes.
func Run(g *game.Game, cfg Config) error {
	app := NewApp(g, cfg.CellSize)
	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Snake")
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(app)
}
