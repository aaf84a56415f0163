package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned when a tier name is not in the table.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is a named tier bundling the base tick interval and the
// number of obstacles placed when a game starts.
type Difficulty struct {
	Level     string
	Name      string
	Speed     time.Duration
	Obstacles int
}

var (
	Easy   = Difficulty{Level: "EASY", Name: "Easy", Speed: 200 * time.Millisecond, Obstacles: 0}
	Medium = Difficulty{Level: "MEDIUM", Name: "Medium", Speed: 150 * time.Millisecond, Obstacles: 3}
	Hard   = Difficulty{Level: "HARD", Name: "Hard", Speed: 100 * time.Millisecond, Obstacles: 5}
	Expert = Difficulty{Level: "EXPERT", Name: "Expert", Speed: 70 * time.Millisecond, Obstacles: 8}
)

// Difficulties lists the tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Expert}
}

// DefaultDifficulty is the tier selected on a fresh game.
func DefaultDifficulty() Difficulty {
	return Medium
}

// ParseDifficulty looks a tier up by level, case-insensitively.
func ParseDifficulty(level string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(d.Level, strings.TrimSpace(level)) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, level)
}
