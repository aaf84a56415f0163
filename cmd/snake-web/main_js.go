//go:build js && wasm

package main

import (
	"log"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/web"
)

func main() {
	g := game.NewGame(types.DefaultGrid(), game.Options{
		Store: manager.NewLocalStorage(),
	})
	if err := web.Run(g, web.Config{CellSize: types.CellSize}); err != nil {
		log.Fatal(err)
	}
}
