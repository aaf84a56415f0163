package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

var (
	// ErrInvalidTransition is returned for a command the run state does not allow.
	ErrInvalidTransition = errors.New("invalid run state transition")
	// ErrNotIdle is returned when the difficulty is changed after a game started.
	ErrNotIdle = errors.New("difficulty can only be changed while idle")
)

// RunState governs which commands are valid.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
	Over
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "idle"
	}
}

// Result is the end-of-game notification.
type Result struct {
	UUID         string
	Score        int
	HighScore    int
	NewHighScore bool
	Cause        manager.CollisionType
	Difficulty   types.Difficulty
	Duration     time.Duration
}

func (r Result) String() string {
	if r.NewHighScore {
		return fmt.Sprintf("New record: %d points!", r.Score)
	}
	return fmt.Sprintf("Game over (%s)! Score: %d", r.Cause, r.Score)
}

// Options injects the collaborators of a Game. Every field is optional.
type Options struct {
	Seed       uint64 // 0 seeds from the clock
	Store      manager.HighScoreStore
	Recorder   manager.GameRecorder
	OnGameOver func(Result)
	Now        func() time.Time
}

// Game holds the state of one board and drives it one tick at a time.
// It is not safe for concurrent use; hosts feed input and ticks from one goroutine.
type Game struct {
	UUID string
	Grid types.Grid

	snake         *entity.Snake
	direction     types.Direction
	nextDirection types.Direction
	hasInput      bool
	food          types.Point
	obstacles     []types.Point
	score         int
	highScore     int
	speed         time.Duration
	difficulty    types.Difficulty
	state         RunState
	startTime     time.Time
	lastResult    *Result

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	obstacleMgr  *manager.ObstacleManager
	store        manager.HighScoreStore
	recorder     manager.GameRecorder
	onGameOver   func(Result)
	now          func() time.Time
}

func NewGame(grid types.Grid, opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	store := opts.Store
	if store == nil {
		store = manager.NewMemoryStore(0)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	g := &Game{
		Grid:         grid,
		difficulty:   types.DefaultDifficulty(),
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, rng),
		obstacleMgr:  manager.NewObstacleManager(grid, rng),
		store:        store,
		recorder:     opts.Recorder,
		onGameOver:   opts.OnGameOver,
		now:          now,
	}
	g.loadHighScore()
	g.Reset()
	return g
}

func (g *Game) loadHighScore() {
	score, err := g.store.LoadHighScore()
	if err != nil {
		log.Printf("high score unavailable, starting from 0: %v", err)
		score = 0
	}
	g.highScore = score
}

// Reset reinitializes the board for the selected difficulty and returns to Idle.
// It is valid from every state.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(types.StartPosition)
	g.direction = types.None
	g.nextDirection = types.None
	g.hasInput = false
	g.obstacles = nil
	g.food, _ = g.foodMgr.Generate(g.snake, g.obstacles)
	g.score = 0
	g.speed = g.difficulty.Speed
	g.state = Idle
	g.lastResult = nil
	g.UUID = ""
}

// SetDifficulty selects a tier. Only allowed while idle.
func (g *Game) SetDifficulty(d types.Difficulty) error {
	if g.state != Idle {
		return ErrNotIdle
	}
	g.difficulty = d
	g.speed = d.Speed
	return nil
}

func (g *Game) Difficulty() types.Difficulty {
	return g.difficulty
}

// SetDirection records the player's intent for the next tick. The exact
// reversal of the committed direction is rejected.
func (g *Game) SetDirection(dir types.Direction) bool {
	if dir == types.None {
		return false
	}
	if g.direction != types.None && dir == g.direction.Opposite() {
		return false
	}
	g.nextDirection = dir
	g.hasInput = true
	return true
}

// Start places the obstacles for the selected difficulty and begins running.
// Only valid from Idle; a finished game must be reset first.
func (g *Game) Start() error {
	if g.state != Idle {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, g.state)
	}
	if n := g.difficulty.Obstacles; n > 0 {
		g.obstacles = g.obstacleMgr.Generate(n, g.snake, g.food)
	}
	g.UUID = uuid.New().String()
	g.startTime = g.now()
	g.state = Running
	return nil
}

// TogglePause flips between Running and Paused.
func (g *Game) TogglePause() error {
	switch g.state {
	case Running:
		g.state = Paused
	case Paused:
		g.state = Running
	default:
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, g.state)
	}
	return nil
}

// Update advances the game by one tick. It returns the Result when the
// tick ends the game, nil otherwise. Outside Running it does nothing.
func (g *Game) Update() *Result {
	if g.state != Running {
		return nil
	}

	g.direction = g.nextDirection
	if !g.hasInput && g.direction == types.None {
		return nil
	}

	newHead := g.snake.GetHead().Add(g.direction.Vector())
	eating := newHead == g.food

	if collision := g.collisionMgr.Check(newHead, g.snake, g.obstacles, eating); collision != manager.NoCollision {
		return g.gameOver(collision)
	}

	g.snake.Move(newHead)
	if eating {
		g.score += types.ScoreIncrement
		g.food, _ = g.foodMgr.Generate(g.snake, g.obstacles)
		g.increaseSpeed()
	} else {
		g.snake.RemoveTail()
	}
	return nil
}

// increaseSpeed shortens the tick interval. Tiers that start below the
// minimum keep their base interval.
func (g *Game) increaseSpeed() {
	if g.speed > types.MinSpeed {
		g.speed -= types.SpeedStep
		if g.speed < types.MinSpeed {
			g.speed = types.MinSpeed
		}
	}
}

func (g *Game) gameOver(cause manager.CollisionType) *Result {
	g.state = Over
	end := g.now()

	result := Result{
		UUID:       g.UUID,
		Score:      g.score,
		Cause:      cause,
		Difficulty: g.difficulty,
		Duration:   end.Sub(g.startTime),
	}
	if g.score > g.highScore {
		g.highScore = g.score
		result.NewHighScore = true
		if err := g.store.SaveHighScore(g.highScore); err != nil {
			log.Printf("failed to save high score: %v", err)
		}
	}
	result.HighScore = g.highScore

	if g.recorder != nil {
		record := manager.GameRecord{
			UUID:       g.UUID,
			Difficulty: g.difficulty.Level,
			Score:      g.score,
			Cause:      cause.String(),
			StartTime:  g.startTime,
			EndTime:    end,
		}
		if err := g.recorder.RecordGame(record); err != nil {
			log.Printf("failed to record game %s: %v", g.UUID, err)
		}
	}

	log.Printf("game %s over: %s collision, score %d, new record %v", g.UUID, cause, g.score, result.NewHighScore)
	g.lastResult = &result
	if g.onGameOver != nil {
		g.onGameOver(result)
	}
	return &result
}

func (g *Game) State() RunState {
	return g.state
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) HighScore() int {
	return g.highScore
}

// Speed is the current tick interval.
func (g *Game) Speed() time.Duration {
	return g.speed
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) Food() types.Point {
	return g.food
}

func (g *Game) Obstacles() []types.Point {
	out := make([]types.Point, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

func (g *Game) Snake() []types.Point {
	return g.snake.Segments()
}
