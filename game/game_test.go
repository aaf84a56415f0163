package game

import (
	"errors"
	"testing"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, d types.Difficulty, store *manager.MemoryStore) *Game {
	t.Helper()
	if store == nil {
		store = manager.NewMemoryStore(0)
	}
	g := NewGame(types.DefaultGrid(), Options{
		Seed:     1,
		Store:    store,
		Recorder: store,
		Now:      func() time.Time { return testEpoch },
	})
	if err := g.SetDifficulty(d); err != nil {
		t.Fatalf("SetDifficulty: %v", err)
	}
	return g
}

// startedGame returns a running EASY game (no obstacles) with the food parked in a corner.
func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, types.Easy, nil)
	if err := g.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	g.food = types.Point{X: 0, Y: 0}
	return g
}

func TestNewGame_Defaults(t *testing.T) {
	g := NewGame(types.DefaultGrid(), Options{Seed: 5})
	if g.State() != Idle {
		t.Errorf("want idle, got %s", g.State())
	}
	body := g.Snake()
	if len(body) != 1 || body[0] != (types.Point{X: 10, Y: 10}) {
		t.Errorf("want single cell at (10,10), got %v", body)
	}
	if g.Direction() != types.None || g.nextDirection != types.None {
		t.Errorf("directions should start at none")
	}
	if g.Score() != 0 {
		t.Errorf("score: want 0, got %d", g.Score())
	}
	if g.Difficulty() != types.Medium || g.Speed() != 150*time.Millisecond {
		t.Errorf("want MEDIUM at 150ms, got %s at %v", g.Difficulty().Level, g.Speed())
	}
	if !g.Grid.Contains(g.Food()) || g.Food() == body[0] {
		t.Errorf("bad initial food %v", g.Food())
	}
	if len(g.Obstacles()) != 0 {
		t.Errorf("obstacles must be empty before start, got %v", g.Obstacles())
	}
}

func TestSetDifficulty_SetsBaseSpeed(t *testing.T) {
	g := newTestGame(t, types.Easy, nil)
	if g.Speed() != 200*time.Millisecond {
		t.Errorf("EASY speed: got %v", g.Speed())
	}
	if err := g.SetDifficulty(types.Hard); err != nil {
		t.Fatal(err)
	}
	if g.Speed() != 100*time.Millisecond {
		t.Errorf("HARD speed: got %v", g.Speed())
	}
}

func TestSetDifficulty_RejectedOnceStarted(t *testing.T) {
	g := startedGame(t)
	if err := g.SetDifficulty(types.Expert); !errors.Is(err, ErrNotIdle) {
		t.Fatalf("want ErrNotIdle, got %v", err)
	}
	if g.Difficulty() != types.Easy {
		t.Errorf("difficulty changed mid-game to %s", g.Difficulty().Level)
	}
}

func TestReset_KeepsSelectedDifficulty(t *testing.T) {
	g := newTestGame(t, types.Hard, nil)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.Reset()
	if g.Difficulty() != types.Hard || g.Speed() != types.Hard.Speed {
		t.Errorf("reset lost the tier: %s %v", g.Difficulty().Level, g.Speed())
	}
	if len(g.Obstacles()) != 0 {
		t.Errorf("reset must clear obstacles, got %d", len(g.Obstacles()))
	}
}

func TestUpdate_NoMoveBeforeFirstInput(t *testing.T) {
	g := startedGame(t)
	for i := 0; i < 5; i++ {
		g.Update()
	}
	if head := g.Snake()[0]; head != types.StartPosition {
		t.Errorf("snake moved without input to %v", head)
	}
	if g.State() != Running {
		t.Errorf("want running, got %s", g.State())
	}
}

func TestSetDirection_RejectsReversal(t *testing.T) {
	for _, d := range []types.Direction{types.Up, types.Right, types.Down, types.Left} {
		g := startedGame(t)
		if !g.SetDirection(d) {
			t.Fatalf("%v: first input rejected", d)
		}
		g.Update()
		if g.SetDirection(d.Opposite()) {
			t.Errorf("%v: reversal %v accepted", d, d.Opposite())
		}
		g.Update()
		if g.Direction() != d {
			t.Errorf("%v: committed direction became %v", d, g.Direction())
		}
	}
}

func TestScenario_RightUpDown(t *testing.T) {
	g := newTestGame(t, types.Medium, nil)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	// Keep the path clear of food and obstacles.
	g.food = types.Point{X: 0, Y: 0}
	g.obstacles = nil

	g.SetDirection(types.Right)
	g.Update()
	g.SetDirection(types.Up)
	g.Update()
	if g.SetDirection(types.Down) {
		t.Error("DOWN should be rejected while moving UP")
	}

	if g.Direction() != types.Up {
		t.Errorf("committed direction: want up, got %v", g.Direction())
	}
	if g.nextDirection != types.Up {
		t.Errorf("pending direction: want up, got %v", g.nextDirection)
	}
	if head := g.Snake()[0]; head != (types.Point{X: 11, Y: 9}) {
		t.Errorf("want head at (11,9) after right then up, got %v", head)
	}
	if len(g.Snake()) != 1 {
		t.Errorf("length changed without food: %d", len(g.Snake()))
	}
}

func TestScenario_LeftWallIsGameOver(t *testing.T) {
	g := startedGame(t)
	g.snake = entity.NewSnake(types.Point{X: 0, Y: 10})

	g.SetDirection(types.Left)
	result := g.Update()
	if result == nil {
		t.Fatal("expected a game over result")
	}
	if g.State() != Over {
		t.Fatalf("want over, got %s", g.State())
	}
	if result.Cause != manager.WallCollision {
		t.Errorf("want wall collision, got %v", result.Cause)
	}
	if head := g.Snake()[0]; head != (types.Point{X: 0, Y: 10}) {
		t.Errorf("snake mutated on collision: head %v", head)
	}
}

func TestUpdate_WallsOnEverySide(t *testing.T) {
	cases := []struct {
		start types.Point
		dir   types.Direction
	}{
		{types.Point{X: 0, Y: 5}, types.Left},
		{types.Point{X: 19, Y: 5}, types.Right},
		{types.Point{X: 5, Y: 0}, types.Up},
		{types.Point{X: 5, Y: 19}, types.Down},
	}
	for _, c := range cases {
		g := startedGame(t)
		g.snake = entity.NewSnake(c.start)
		g.SetDirection(c.dir)
		g.Update()
		if g.State() != Over {
			t.Errorf("%v moving %v: want over, got %s", c.start, c.dir, g.State())
		}
	}
}

func TestUpdate_SelfCollisionOnNonTailSegment(t *testing.T) {
	g := startedGame(t)
	// Moving left; turning down lands on (10,11), which is not the tail.
	g.snake = &entity.Snake{Body: []types.Point{
		{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}, {X: 9, Y: 11},
	}}
	g.direction = types.Left
	g.SetDirection(types.Down)

	result := g.Update()
	if result == nil || result.Cause != manager.SelfCollision {
		t.Fatalf("want self collision, got %+v", result)
	}
	if len(g.Snake()) != 5 {
		t.Errorf("snake mutated on collision: %v", g.Snake())
	}
}

func TestUpdate_MovingIntoVacatingTailIsSafe(t *testing.T) {
	g := startedGame(t)
	// Moving up; the tail (11,10) sits right of the head.
	g.snake = &entity.Snake{Body: []types.Point{
		{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 11, Y: 11}, {X: 12, Y: 11}, {X: 12, Y: 10}, {X: 11, Y: 10},
	}}
	g.direction = types.Up
	g.SetDirection(types.Right)

	if result := g.Update(); result != nil {
		t.Fatalf("tail cell should be free on a non-eating tick, got %+v", result)
	}
	body := g.Snake()
	if body[0] != (types.Point{X: 11, Y: 10}) || len(body) != 6 {
		t.Errorf("want head (11,10) with length 6, got %v", body)
	}
}

func TestUpdate_TailCellCollidesWhenEating(t *testing.T) {
	g := startedGame(t)
	g.snake = &entity.Snake{Body: []types.Point{
		{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 11, Y: 11}, {X: 12, Y: 11}, {X: 12, Y: 10}, {X: 11, Y: 10},
	}}
	g.direction = types.Up
	g.food = types.Point{X: 11, Y: 10}
	g.SetDirection(types.Right)

	result := g.Update()
	if result == nil || result.Cause != manager.SelfCollision {
		t.Fatalf("tail stays when eating, want self collision, got %+v", result)
	}
}

func TestUpdate_ObstacleCollision(t *testing.T) {
	g := startedGame(t)
	g.obstacles = []types.Point{{X: 11, Y: 10}}
	g.SetDirection(types.Right)
	result := g.Update()
	if result == nil || result.Cause != manager.ObstacleCollision {
		t.Fatalf("want obstacle collision, got %+v", result)
	}
}

func TestUpdate_EatingGrowsScoresAndSpeedsUp(t *testing.T) {
	g := startedGame(t)
	g.food = types.Point{X: 11, Y: 10}
	g.SetDirection(types.Right)

	before := len(g.Snake())
	speed := g.Speed()
	g.Update()

	if len(g.Snake()) != before+1 {
		t.Errorf("length after eating: want %d, got %d", before+1, len(g.Snake()))
	}
	if g.Score() != types.ScoreIncrement {
		t.Errorf("score: want %d, got %d", types.ScoreIncrement, g.Score())
	}
	if g.Speed() != speed-types.SpeedStep {
		t.Errorf("speed: want %v, got %v", speed-types.SpeedStep, g.Speed())
	}
	if food := g.Food(); !g.Grid.Contains(food) || g.snake.Contains(food) {
		t.Errorf("resampled food %v is invalid", food)
	}

	// A plain move keeps the length.
	g.food = types.Point{X: 0, Y: 0}
	g.Update()
	if len(g.Snake()) != before+1 {
		t.Errorf("length after plain move: want %d, got %d", before+1, len(g.Snake()))
	}
}

func TestUpdate_SpeedFlooredAtMinimum(t *testing.T) {
	g := startedGame(t)
	g.speed = types.MinSpeed + 2*time.Millisecond
	g.SetDirection(types.Right)

	for i := 0; i < 3; i++ {
		head := g.Snake()[0]
		g.food = head.Add(types.Right.Vector())
		g.Update()
		if g.Speed() != types.MinSpeed {
			t.Fatalf("eat %d: want %v, got %v", i, types.MinSpeed, g.Speed())
		}
	}
	if g.Score() != 3*types.ScoreIncrement {
		t.Errorf("score: want %d, got %d", 3*types.ScoreIncrement, g.Score())
	}
}

func TestUpdate_ExpertKeepsBaseSpeedBelowMinimum(t *testing.T) {
	g := newTestGame(t, types.Expert, nil)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.obstacles = nil
	g.food = types.Point{X: 11, Y: 10}
	g.SetDirection(types.Right)
	g.Update()
	if g.Speed() != types.Expert.Speed {
		t.Errorf("want %v, got %v", types.Expert.Speed, g.Speed())
	}
}

func TestScenario_ExpertStartPlacesEightObstacles(t *testing.T) {
	g := newTestGame(t, types.Expert, nil)
	food := g.Food()
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	obstacles := g.Obstacles()
	if len(obstacles) != 8 {
		t.Fatalf("want 8 obstacles, got %d", len(obstacles))
	}
	seen := map[types.Point]bool{}
	for _, o := range obstacles {
		if o == types.StartPosition || o == food {
			t.Errorf("obstacle %v overlaps the snake or the food", o)
		}
		if !g.Grid.Contains(o) || seen[o] {
			t.Errorf("bad obstacle %v", o)
		}
		seen[o] = true
	}
}

func TestStart_ObstaclesFixedForTheGame(t *testing.T) {
	g := newTestGame(t, types.Hard, nil)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	want := g.Obstacles()
	if len(want) != 5 {
		t.Fatalf("HARD: want 5 obstacles, got %d", len(want))
	}
	for i := 0; i < 10; i++ {
		g.Update()
	}
	got := g.Obstacles()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("obstacles changed during play: %v -> %v", want, got)
		}
	}
}

func TestRunStateMachine(t *testing.T) {
	g := newTestGame(t, types.Easy, nil)

	if err := g.TogglePause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pause from idle: want ErrInvalidTransition, got %v", err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("start from idle: %v", err)
	}
	if err := g.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("start while running: want ErrInvalidTransition, got %v", err)
	}

	if err := g.TogglePause(); err != nil || g.State() != Paused {
		t.Fatalf("pause: err=%v state=%s", err, g.State())
	}
	g.SetDirection(types.Right)
	g.Update()
	if head := g.Snake()[0]; head != types.StartPosition {
		t.Errorf("paused game advanced to %v", head)
	}
	if err := g.TogglePause(); err != nil || g.State() != Running {
		t.Fatalf("resume: err=%v state=%s", err, g.State())
	}

	g.snake = entity.NewSnake(types.Point{X: 19, Y: 0})
	g.food = types.Point{X: 0, Y: 0}
	g.Update()
	if g.State() != Over {
		t.Fatalf("want over, got %s", g.State())
	}
	if err := g.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("start from over: want ErrInvalidTransition, got %v", err)
	}
	if err := g.TogglePause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pause from over: want ErrInvalidTransition, got %v", err)
	}

	g.Reset()
	if g.State() != Idle || g.Score() != 0 || len(g.Snake()) != 1 {
		t.Fatalf("reset did not reinitialize: state=%s score=%d", g.State(), g.Score())
	}
	if err := g.Start(); err != nil {
		t.Errorf("start after reset: %v", err)
	}
}

func TestGameOver_PersistsNewHighScore(t *testing.T) {
	store := manager.NewMemoryStore(30)
	g := newTestGame(t, types.Easy, store)
	var notified []Result
	g.onGameOver = func(r Result) { notified = append(notified, r) }

	if g.HighScore() != 30 {
		t.Fatalf("high score not loaded, got %d", g.HighScore())
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.score = 40
	g.snake = entity.NewSnake(types.Point{X: 0, Y: 0})
	g.food = types.Point{X: 19, Y: 19}
	g.SetDirection(types.Up)

	result := g.Update()
	if result == nil || !result.NewHighScore || result.HighScore != 40 {
		t.Fatalf("want new high score 40, got %+v", result)
	}
	if store.HighScore != 40 {
		t.Errorf("store not updated: %d", store.HighScore)
	}
	if len(notified) != 1 || notified[0].Score != 40 {
		t.Errorf("notification: %+v", notified)
	}
	if len(store.Records) != 1 || store.Records[0].UUID == "" || store.Records[0].Cause != "wall" {
		t.Errorf("game not recorded: %+v", store.Records)
	}
	if snap := g.Snapshot(); snap.Result == nil || snap.Status != "Game over!" {
		t.Errorf("snapshot should carry the result, got %+v", snap)
	}
}

func TestGameOver_LowerScoreLeavesHighScore(t *testing.T) {
	store := manager.NewMemoryStore(100)
	g := newTestGame(t, types.Easy, store)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.score = 20
	g.snake = entity.NewSnake(types.Point{X: 0, Y: 0})
	g.food = types.Point{X: 19, Y: 19}
	g.SetDirection(types.Left)

	result := g.Update()
	if result == nil || result.NewHighScore {
		t.Fatalf("want plain game over, got %+v", result)
	}
	if store.HighScore != 100 || g.HighScore() != 100 {
		t.Errorf("high score changed: store=%d game=%d", store.HighScore, g.HighScore())
	}
}

func TestNewGame_UnreadableStoreDefaultsToZero(t *testing.T) {
	store := manager.NewMemoryStore(50)
	store.LoadErr = errors.New("corrupt")
	g := newTestGame(t, types.Easy, store)
	if g.HighScore() != 0 {
		t.Errorf("want 0, got %d", g.HighScore())
	}
}

func TestHandleKey(t *testing.T) {
	g := newTestGame(t, types.Easy, nil)
	if g.HandleKey("ArrowUp") {
		t.Error("keys must be ignored while idle")
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	if g.HandleKey("x") {
		t.Error("unmapped key accepted")
	}
	if !g.HandleKey("W") || g.nextDirection != types.Up {
		t.Errorf("W should map to up, pending %v", g.nextDirection)
	}
	if !g.HandleKey("arrowright") || g.nextDirection != types.Right {
		t.Errorf("arrowright should map to right, pending %v", g.nextDirection)
	}
	if err := g.TogglePause(); err != nil {
		t.Fatal(err)
	}
	if g.HandleKey("a") {
		t.Error("keys must be ignored while paused")
	}
}

func TestDirectionForKey(t *testing.T) {
	cases := map[string]types.Direction{
		"ArrowUp": types.Up, "w": types.Up, "W": types.Up,
		"ArrowDown": types.Down, "s": types.Down, "S": types.Down,
		"ArrowLeft": types.Left, "a": types.Left, "A": types.Left,
		"ArrowRight": types.Right, "d": types.Right, "D": types.Right,
	}
	for key, want := range cases {
		got, ok := DirectionForKey(key)
		if !ok || got != want {
			t.Errorf("%q: want %v, got %v (ok=%v)", key, want, got, ok)
		}
	}
	if _, ok := DirectionForKey("Enter"); ok {
		t.Error("Enter should not map to a direction")
	}
}
