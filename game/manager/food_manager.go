package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food item and the random source that places it.
type FoodManager struct {
	grid types.Grid
	food *entity.Food
}

// NewFoodManager seeds a random source and drops the first food item.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	rng := rand.New(rand.NewSource(seed))
	return &FoodManager{
		grid: grid,
		food: entity.NewFood(grid, rng),
	}
}

func (fm *FoodManager) GetFood() *entity.Food {
	return fm.food
}

// Relocate re-randomizes the food and returns its new cell. The new cell may
// equal the old one or land on the snake.
func (fm *FoodManager) Relocate() types.Point {
	fm.food.Randomize()
	return fm.food.Position
}

// Place puts the food on a specific cell, wrapping it onto the board.
func (fm *FoodManager) Place(p types.Point) {
	fm.food.Position = types.Point{
		X: types.Wrap(p.X, fm.grid.Width),
		Y: types.Wrap(p.Y, fm.grid.Height),
	}
}
