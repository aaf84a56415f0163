package game

import (
	"strings"

	"snake-classic/game/types"
)

// keyMap maps lower-cased key names to directions. Key names follow the
// browser KeyboardEvent.key values; frontends translate native codes to them.
var keyMap = map[string]types.Direction{
	"arrowup":    types.Up,
	"w":          types.Up,
	"arrowdown":  types.Down,
	"s":          types.Down,
	"arrowleft":  types.Left,
	"a":          types.Left,
	"arrowright": types.Right,
	"d":          types.Right,
}

// DirectionForKey resolves a key name, case-insensitively.
func DirectionForKey(key string) (types.Direction, bool) {
	dir, ok := keyMap[strings.ToLower(key)]
	return dir, ok
}

// HandleKey feeds a key press to the game. Keys are ignored unless the game
// is running; unmapped keys are always ignored.
func (g *Game) HandleKey(key string) bool {
	if g.state != Running {
		return false
	}
	dir, ok := DirectionForKey(key)
	if !ok {
		return false
	}
	return g.SetDirection(dir)
}
