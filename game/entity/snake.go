package entity

import "the-snake/game/types"

// Snake is an ordered run of cells, head first. The embedded Entity keeps the
// head position and the body color.
type Snake struct {
	Entity
	Body          []types.Point
	Direction     types.Direction
	grid          types.Grid
	pendingGrowth bool
}

func NewSnake(grid types.Grid) *Snake {
	s := &Snake{grid: grid}
	s.Reset()
	return s
}

// Reset puts the snake back to a single cell at the board center, moving right.
func (s *Snake) Reset() {
	start := s.grid.Center()
	s.Entity = Entity{Position: start, Color: types.SnakeColor}
	s.Body = []types.Point{start}
	s.Direction = types.RIGHT
	s.pendingGrowth = false
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Len is the snake's length, counting a segment that is due on the next Move.
func (s *Snake) Len() int {
	if s.pendingGrowth {
		return len(s.Body) + 1
	}
	return len(s.Body)
}

// GrowthPending reports whether the next Move keeps the tail.
func (s *Snake) GrowthPending() bool {
	return s.pendingGrowth
}

// SetDirection changes the heading unless dir would reverse the snake onto itself.
// Reversals and NONE are ignored.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.NONE || dir == s.Direction.Opposite() {
		return
	}
	s.Direction = dir
}

// Move advances the head one cell, wrapping at the board edges. The tail is
// dropped unless a growth is pending, in which case the flag is consumed and the
// body gets one cell longer.
func (s *Snake) Move() {
	newHead := s.grid.Step(s.GetHead(), s.Direction)

	if s.pendingGrowth {
		s.Body = append(s.Body, types.Point{})
		s.pendingGrowth = false
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
	s.Position = newHead
}

// Grow schedules one extra segment for the next Move.
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

func (s *Snake) Draw(surface Surface) {
	for _, p := range s.Body {
		surface.FillCell(p, s.Color)
	}
}
