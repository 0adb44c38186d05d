package manager

import (
	"raysnake/game/entity"
	"raysnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsSelfCollision checks whether the head landed on any other segment.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsItself()
}

// IsFoodCollision checks whether the head is on the food.
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return snake.Head() == food.Position
}

// ValidateSpawnPosition checks that pos is playable and free of the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.IsInterior(pos) {
		return false
	}
	return !snake.Occupies(pos)
}
