package game

import "time"

// Renderer paints a snapshot to some surface.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }

// Loop paces Update and Render from a per-frame callback. The frame rate
// of the host is decoupled from the tick rate of the game.
type Loop struct {
	game     *Game
	renderer Renderer
	lastTick time.Duration
}

func NewLoop(g *Game, r Renderer) *Loop {
	return &Loop{
		game:     g,
		renderer: r,
	}
}

// Frame is called by the host once per frame with a monotonically
// increasing timestamp. It applies at most one Update+Render pair, when at
// least one tick interval has elapsed since the last applied tick, and
// reports whether the host should keep scheduling frames.
// lastTick survives pause, reset and restart, so the first frame after a
// break longer than one interval ticks at once.
func (l *Loop) Frame(now time.Duration) bool {
	if l.game.State() != Running {
		return false
	}
	if now-l.lastTick >= l.game.Speed() {
		l.game.Update()
		if l.renderer != nil {
			l.renderer.Render(l.game.Snapshot())
		}
		l.lastTick = now
	}
	return l.game.State() == Running
}
