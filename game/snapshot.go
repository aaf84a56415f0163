package game

import "snake-classic/game/types"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid       types.Grid
	Snake      []types.Point
	Food       types.Point
	Obstacles  []types.Point
	Direction  types.Direction
	Score      int
	HighScore  int
	Difficulty string
	State      RunState
	Status     string
	Result     *Result
}

// StatusText is the short status line for a run state.
func StatusText(s RunState) string {
	switch s {
	case Running:
		return "Playing..."
	case Paused:
		return "Paused"
	case Over:
		return "Game over!"
	default:
		return "Press Enter to start"
	}
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:       g.Grid,
		Snake:      g.Snake(),
		Food:       g.food,
		Obstacles:  g.Obstacles(),
		Direction:  g.direction,
		Score:      g.score,
		HighScore:  g.highScore,
		Difficulty: g.difficulty.Name,
		State:      g.state,
		Status:     StatusText(g.state),
	}
	if g.lastResult != nil {
		r := *g.lastResult
		snap.Result = &r
	}
	return snap
}

// Head returns the first snake segment.
func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}
