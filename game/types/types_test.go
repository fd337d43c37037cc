package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	assert.Equal(t, 32, g.Width)
	assert.Equal(t, 24, g.Height)
	assert.Equal(t, Point{X: 16, Y: 12}, g.Center())
	assert.Equal(t, g, NewGrid(ScreenWidth, ScreenHeight, CellSize))
}

func TestWrap(t *testing.T) {
	cases := []struct {
		v, limit, want int
	}{
		{0, 32, 0},
		{31, 32, 31},
		{32, 32, 0},
		{-1, 32, 31},
		{-33, 32, 31},
		{65, 32, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Wrap(c.v, c.limit), "Wrap(%d, %d)", c.v, c.limit)
	}
}

func TestStepWrapsAtEveryEdge(t *testing.T) {
	g := DefaultGrid()

	assert.Equal(t, Point{X: 0, Y: 5}, g.Step(Point{X: 31, Y: 5}, RIGHT))
	assert.Equal(t, Point{X: 31, Y: 5}, g.Step(Point{X: 0, Y: 5}, LEFT))
	assert.Equal(t, Point{X: 7, Y: 23}, g.Step(Point{X: 7, Y: 0}, UP))
	assert.Equal(t, Point{X: 7, Y: 0}, g.Step(Point{X: 7, Y: 23}, DOWN))
	assert.Equal(t, Point{X: 4, Y: 4}, g.Step(Point{X: 3, Y: 4}, RIGHT))
}

func TestStepStaysOnBoard(t *testing.T) {
	g := Grid{Width: 3, Height: 2}
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			for _, d := range []Direction{UP, RIGHT, DOWN, LEFT} {
				assert.True(t, g.Contains(g.Step(Point{X: x, Y: y}, d)))
			}
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{UP, RIGHT, DOWN, LEFT} {
		sum := d.ToPoint().Add(d.Opposite().ToPoint())
		assert.Equal(t, Point{}, sum, "%s + opposite", d)
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	assert.Equal(t, NONE, NONE.Opposite())
}
