package manager

import (
	"log"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places the single food item by rejection sampling.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Generate draws a free cell avoiding the snake and the obstacles. After
// types.MaxFoodAttempts redraws it gives up and returns the last draw with
// ok=false; that draw may overlap an occupied cell.
func (fm *FoodManager) Generate(snake *entity.Snake, obstacles []types.Point) (food types.Point, ok bool) {
	for attempt := 0; attempt < types.MaxFoodAttempts; attempt++ {
		food = randomCell(fm.grid, fm.rng)
		if !snake.Contains(food) && !IsOccupied(food, obstacles) {
			return food, true
		}
	}
	log.Printf("food placement gave up after %d attempts, using %v", types.MaxFoodAttempts, food)
	return food, false
}

func randomCell(grid types.Grid, rng *rand.Rand) types.Point {
	return types.Point{
		X: rng.Intn(grid.Width),
		Y: rng.Intn(grid.Height),
	}
}
