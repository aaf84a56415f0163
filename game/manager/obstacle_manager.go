package manager

import (
	"log"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// ObstacleManager places the static obstacles of one game.
type ObstacleManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewObstacleManager(grid types.Grid, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		grid: grid,
		rng:  rng,
	}
}

// Generate places up to count obstacles off the snake, the food and each
// other. The whole batch shares types.MaxObstacleAttempts draws; placements
// still missing when they run out are skipped.
func (om *ObstacleManager) Generate(count int, snake *entity.Snake, food types.Point) []types.Point {
	obstacles := make([]types.Point, 0, count)
	attempts := 0
	for len(obstacles) < count && attempts < types.MaxObstacleAttempts {
		attempts++
		pos := randomCell(om.grid, om.rng)
		if snake.Contains(pos) || pos == food || IsOccupied(pos, obstacles) {
			continue
		}
		obstacles = append(obstacles, pos)
	}
	if len(obstacles) < count {
		log.Printf("obstacle placement gave up after %d attempts, placed %d of %d", attempts, len(obstacles), count)
	}
	return obstacles
}
