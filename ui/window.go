package ui

import (
	"fmt"
	"log"
	"time"

	"snake-classic/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const helpLine = "Enter start  P pause  R reset  1-4 difficulty  Esc quit"

// Config controls the desktop window.
type Config struct {
	CellSize int
	FPS      int
}

// keyNames translates raylib key codes into the key names the game understands.
var keyNames = map[int32]string{
	rl.KeyUp:    "ArrowUp",
	rl.KeyDown:  "ArrowDown",
	rl.KeyLeft:  "ArrowLeft",
	rl.KeyRight: "ArrowRight",
	rl.KeyW:     "w",
	rl.KeyA:     "a",
	rl.KeyS:     "s",
	rl.KeyD:     "d",
	rl.KeyEnter: "Enter",
	rl.KeySpace: " ",
	rl.KeyP:     "p",
	rl.KeyR:     "r",
	rl.KeyOne:   "1",
	rl.KeyTwo:   "2",
	rl.KeyThree: "3",
	rl.KeyFour:  "4",
}

func scoreLine(s game.Snapshot) string {
	return fmt.Sprintf("Score: %d   High: %d   Difficulty: %s", s.Score, s.HighScore, s.Difficulty)
}

// Run opens the window and drives g until the window is closed.
func Run(g *game.Game, cfg Config) {
	renderer := NewRenderer(cfg.CellSize, g.Grid.Width)
	width, height := renderer.Size()

	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(rl.KeyEscape)

	snapshot := g.Snapshot()
	loop := game.NewLoop(g, game.RendererFunc(func(s game.Snapshot) {
		snapshot = s
	}))
	scheduled := false

	for !rl.WindowShouldClose() {
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			name, ok := keyNames[key]
			if !ok {
				continue
			}
			if err := g.Press(name); err != nil {
				log.Printf("key %q: %v", name, err)
			}
			snapshot = g.Snapshot()
			scheduled = g.State() == game.Running
		}

		if scheduled {
			now := time.Duration(rl.GetTime() * float64(time.Second))
			scheduled = loop.Frame(now)
		}

		rl.BeginDrawing()
		renderer.Draw(snapshot)
		rl.EndDrawing()
	}
}
