package entity

import (
	"testing"

	"the-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fill struct {
	p types.Point
	c types.Color
}

type recordingSurface struct {
	fills []fill
}

func (r *recordingSurface) FillCell(p types.Point, c types.Color) {
	r.fills = append(r.fills, fill{p, c})
}

var allDirections = []types.Direction{types.UP, types.RIGHT, types.DOWN, types.LEFT}

func TestNewSnakeStartsCentered(t *testing.T) {
	s := NewSnake(types.DefaultGrid())

	require.Len(t, s.Body, 1)
	assert.Equal(t, types.Point{X: 16, Y: 12}, s.GetHead())
	assert.Equal(t, s.GetHead(), s.Position)
	assert.Equal(t, types.RIGHT, s.Direction)
	assert.Equal(t, types.SnakeColor, s.Color)
	assert.False(t, s.GrowthPending())
}

func TestSetDirectionRejectsOnlyReversal(t *testing.T) {
	for _, current := range allDirections {
		for _, next := range allDirections {
			s := NewSnake(types.DefaultGrid())
			s.Direction = current
			s.SetDirection(next)

			if next == current.Opposite() {
				assert.Equal(t, current, s.Direction, "%s -> %s", current, next)
			} else {
				assert.Equal(t, next, s.Direction, "%s -> %s", current, next)
			}
		}
	}
}

func TestSetDirectionIgnoresNone(t *testing.T) {
	s := NewSnake(types.DefaultGrid())
	s.SetDirection(types.NONE)
	assert.Equal(t, types.RIGHT, s.Direction)
}

func TestReversalAttemptKeepsMovingRight(t *testing.T) {
	s := NewSnake(types.DefaultGrid())
	s.SetDirection(types.LEFT)
	s.Move()

	assert.Equal(t, types.RIGHT, s.Direction)
	assert.Equal(t, types.Point{X: 17, Y: 12}, s.GetHead())
}

func TestMoveKeepsLengthAndStepsOneCell(t *testing.T) {
	grid := types.DefaultGrid()
	s := NewSnake(grid)
	s.Body = []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	for _, d := range []types.Direction{types.RIGHT, types.DOWN, types.LEFT, types.LEFT, types.UP} {
		s.SetDirection(d)
		before := s.GetHead()
		s.Move()

		assert.Len(t, s.Body, 3)
		assert.Equal(t, grid.Step(before, s.Direction), s.GetHead())
		assert.Equal(t, before, s.Body[1])
	}
}

func TestMoveWrapsAcrossRightEdge(t *testing.T) {
	s := NewSnake(types.DefaultGrid())
	s.Body = []types.Point{{X: 31, Y: 5}}
	s.Move()

	assert.Equal(t, types.Point{X: 0, Y: 5}, s.GetHead())
	assert.Equal(t, types.Point{X: 0, Y: 5}, s.Position)
}

func TestSixteenMovesWrapToLeftEdge(t *testing.T) {
	s := NewSnake(types.DefaultGrid())
	for i := 0; i < 16; i++ {
		s.Move()
	}

	assert.Equal(t, types.Point{X: 0, Y: 12}, s.GetHead())
	assert.Equal(t, 1, s.Len())
}

func TestGrowKeepsTailOnNextMove(t *testing.T) {
	s := NewSnake(types.DefaultGrid())
	s.Grow()

	assert.True(t, s.GrowthPending())
	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.Body, 1)

	s.Move()
	assert.False(t, s.GrowthPending())
	assert.Equal(t, []types.Point{{X: 17, Y: 12}, {X: 16, Y: 12}}, s.Body)

	s.Move()
	assert.Equal(t, []types.Point{{X: 18, Y: 12}, {X: 17, Y: 12}}, s.Body)
}

func TestResetRestoresStartingState(t *testing.T) {
	s := NewSnake(types.DefaultGrid())
	s.SetDirection(types.DOWN)
	s.Grow()
	s.Move()
	s.Move()
	s.Grow()

	s.Reset()

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, types.Point{X: types.GridWidth / 2, Y: types.GridHeight / 2}, s.GetHead())
	assert.Equal(t, types.RIGHT, s.Direction)
	assert.False(t, s.GrowthPending())
}

func TestSnakeDrawFillsEveryCell(t *testing.T) {
	s := NewSnake(types.DefaultGrid())
	s.Body = []types.Point{{X: 2, Y: 2}, {X: 1, Y: 2}}

	surface := &recordingSurface{}
	s.Draw(surface)

	assert.Equal(t, []fill{
		{types.Point{X: 2, Y: 2}, types.SnakeColor},
		{types.Point{X: 1, Y: 2}, types.SnakeColor},
	}, surface.fills)
}

func TestFoodRandomizeStaysInBounds(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 3}
	f := NewFood(grid, rand.New(rand.NewSource(7)))

	seen := make(map[types.Point]bool)
	for i := 0; i < 500; i++ {
		f.Randomize()
		require.True(t, grid.Contains(f.Position), "%v", f.Position)
		seen[f.Position] = true
	}
	assert.Len(t, seen, grid.Width*grid.Height)
}

func TestFoodIsDeterministicForSeed(t *testing.T) {
	grid := types.DefaultGrid()
	a := NewFood(grid, rand.New(rand.NewSource(42)))
	b := NewFood(grid, rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Position, b.Position)
		a.Randomize()
		b.Randomize()
	}
}

func TestFoodDraw(t *testing.T) {
	f := NewFood(types.DefaultGrid(), rand.New(rand.NewSource(1)))
	surface := &recordingSurface{}

	var d Drawable = f
	d.Draw(surface)

	assert.Equal(t, []fill{{f.Position, types.FoodColor}}, surface.fills)
}
