package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	ObstacleCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check tests a prospective head against the pre-move body. When the snake
// is not growing this tick its tail is vacated, so the tail cell is free.
func (cm *CollisionManager) Check(newHead types.Point, snake *entity.Snake, obstacles []types.Point, growing bool) CollisionType {
	if cm.isWallCollision(newHead) {
		return WallCollision
	}
	if cm.isSelfCollision(newHead, snake, growing) {
		return SelfCollision
	}
	if IsOccupied(newHead, obstacles) {
		return ObstacleCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake, growing bool) bool {
	body := snake.Body
	if !growing {
		body = body[:len(body)-1]
	}
	return IsOccupied(pos, body)
}

// IsOccupied reports whether pos is one of cells.
func IsOccupied(pos types.Point, cells []types.Point) bool {
	for _, c := range cells {
		if c == pos {
			return true
		}
	}
	return false
}
