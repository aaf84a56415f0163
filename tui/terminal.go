package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snake-classic/game"

	"github.com/gdamore/tcell/v2"
)

// Config controls the terminal frontend.
type Config struct {
	FPS int
}

// keyName maps a tcell key event to the key name the game understands.
func keyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp", true
	case tcell.KeyDown:
		return "ArrowDown", true
	case tcell.KeyLeft:
		return "ArrowLeft", true
	case tcell.KeyRight:
		return "ArrowRight", true
	case tcell.KeyEnter:
		return "Enter", true
	case tcell.KeyRune:
		return string(ev.Rune()), true
	}
	return "", false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Run takes over the terminal and plays g until the player quits or ctx is
// cancelled.
func Run(ctx context.Context, g *game.Game, cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Log lines would corrupt the screen while tcell owns it.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	return run(ctx, screen, g, cfg)
}

func run(ctx context.Context, screen tcell.Screen, g *game.Game, cfg Config) error {
	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}

	renderer := NewRenderer(screen)
	snapshot := g.Snapshot()
	loop := game.NewLoop(g, game.RendererFunc(func(s game.Snapshot) {
		snapshot = s
	}))
	scheduled := false
	start := time.Now()

	evChan := make(chan tcell.Event, 100)
	quitChan := make(chan struct{})
	go screen.ChannelEvents(evChan, quitChan)
	defer close(quitChan)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		renderer.Draw(snapshot)
		screen.Show()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if scheduled {
				scheduled = loop.Frame(time.Since(start))
			}
		case ev := <-evChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				name, ok := keyName(ev)
				if !ok {
					continue
				}
				if err := g.Press(name); err != nil {
					log.Printf("key %q: %v", name, err)
				}
				snapshot = g.Snapshot()
				scheduled = g.State() == game.Running
			}
		}
	}
}
