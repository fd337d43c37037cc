package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type Food struct {
	Entity
	grid types.Grid
	rng  *rand.Rand
}

// NewFood creates a food item and places it on a random cell.
func NewFood(grid types.Grid, rng *rand.Rand) *Food {
	f := &Food{
		Entity: Entity{Color: types.FoodColor},
		grid:   grid,
		rng:    rng,
	}
	f.Randomize()
	return f
}

// Randomize moves the food to a uniformly random cell. Cells under the snake are
// not excluded.
func (f *Food) Randomize() {
	f.Position = types.Point{
		X: f.rng.Intn(f.grid.Width),
		Y: f.rng.Intn(f.grid.Height),
	}
}
