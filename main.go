package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/tui"
	"snake-classic/ui"
)

func main() {
	frontend := flag.String("ui", "window", "Frontend: window (raylib) or terminal")
	level := flag.String("difficulty", types.DefaultDifficulty().Level, "Difficulty: easy, medium, hard or expert")
	dataFile := flag.String("data", manager.DefaultStatsFile, "Stats file holding the high score and game history")
	seed := flag.Uint64("seed", 0, "Random seed for food and obstacles (0 = time based)")
	cellSize := flag.Int("cell", types.CellSize, "Cell size in pixels for the window frontend")
	fps := flag.Int("fps", 60, "Frames per second for the window and terminal frontends")
	flag.Parse()

	difficulty, err := types.ParseDifficulty(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	stats := manager.NewStatsManager(*dataFile)
	g := game.NewGame(types.DefaultGrid(), game.Options{
		Seed:     *seed,
		Store:    stats,
		Recorder: stats,
	})
	if err := g.SetDifficulty(difficulty); err != nil {
		log.Fatalf("select difficulty: %v", err)
	}

	switch *frontend {
	case "window":
		ui.Run(g, ui.Config{CellSize: *cellSize, FPS: *fps})
	case "terminal":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := tui.Run(ctx, g, tui.Config{FPS: *fps}); err != nil {
			log.Fatalf("terminal: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown frontend %q\n", *frontend)
		flag.Usage()
		os.Exit(2)
	}

	if n := stats.GamesPlayed(); n > 0 {
		log.Printf("%d games on record, high score %d, average %.1f over %s (longest %s)",
			n, stats.GetHighScore(), stats.AverageScore(), stats.AverageDuration().Round(time.Second), stats.MaxDuration().Round(time.Second))
	}
}
