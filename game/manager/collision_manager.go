package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// CheckFoodCollision reports whether the snake's head sits on the food.
func (cm *CollisionManager) CheckFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return cm.IsFoodCollision(snake.GetHead(), food.Position)
}
