//go:build !js

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/web"
)

func main() {
	level := flag.String("difficulty", types.DefaultDifficulty().Level, "Difficulty: easy, medium, hard or expert")
	dataFile := flag.String("data", manager.DefaultStatsFile, "Stats file holding the high score and game history")
	seed := flag.Uint64("seed", 0, "Random seed for food and obstacles (0 = time based)")
	cellSize := flag.Int("cell", types.CellSize, "Cell size in pixels")
	tps := flag.Int("tps", 60, "Ebiten updates per second")
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

	if err := web.Run(g, web.Config{CellSize: *cellSize, TPS: *tps}); err != nil {
		log.Fatalf("ebiten: %v", err)
	}
}
