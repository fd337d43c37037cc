package game

import (
	"time"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/google/uuid"
)

// Game owns the snake and the food for the lifetime of the process.
type Game struct {
	UUID      string
	Grid      types.Grid
	Steps     int
	StartTime time.Time

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
}

func NewGame(grid types.Grid, seed uint64) *Game {
	return &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(grid),
		foodMgr:      manager.NewFoodManager(grid, seed),
		collisionMgr: manager.NewCollisionManager(),
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.foodMgr.GetFood()
}

// SetDirection steers the snake; reversals are ignored.
func (g *Game) SetDirection(dir types.Direction) {
	g.snake.SetDirection(dir)
}

// PlaceFood moves the food to p, mostly for setting up scenarios.
func (g *Game) PlaceFood(p types.Point) {
	g.foodMgr.Place(p)
}

// Update moves the snake one cell and, if the head landed on the food, schedules
// growth and relocates the food. It reports whether food was eaten.
func (g *Game) Update() bool {
	g.Steps++

	g.snake.Move()
	if !g.collisionMgr.CheckFoodCollision(g.snake, g.GetFood()) {
		return false
	}

	g.snake.Grow()
	g.foodMgr.Relocate()
	return true
}

// Reset puts the snake back at the center and drops fresh food.
func (g *Game) Reset() {
	g.snake.Reset()
	g.foodMgr.Relocate()
	g.Steps = 0
	g.StartTime = time.Now()
}

// Drawables lists what gets rendered each frame, in paint order.
func (g *Game) Drawables() []entity.Drawable {
	return []entity.Drawable{g.GetFood(), g.snake}
}

// ElapsedTime returns how long the current run has lasted.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
