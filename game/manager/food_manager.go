package manager

import (
	"raysnake/game/entity"
	"raysnake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	rng          entity.RandomSource
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng entity.RandomSource, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood creates food on a free cell for a fresh round.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) *entity.Food {
	return entity.NewFood(fm.grid, snake.Body, fm.rng)
}

// Relocate moves eaten food to a free cell. It reports false when the snake
// fills the interior and the food could not move.
func (fm *FoodManager) Relocate(food *entity.Food, snake *entity.Snake) bool {
	moved := food.Respawn(fm.grid, snake.Body, fm.rng)

	// Never loops while Respawn filters out the body.
	for moved && !fm.collisionMgr.ValidateSpawnPosition(food.Position, snake) {
		moved = food.Respawn(fm.grid, snake.Body, fm.rng)
	}

	return moved
}
