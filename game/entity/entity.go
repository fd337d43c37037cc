package entity

import "the-snake/game/types"

// Surface is anything a grid cell can be painted on.
type Surface interface {
	FillCell(p types.Point, c types.Color)
}

// Drawable is implemented by everything that renders itself onto a Surface.
type Drawable interface {
	Draw(s Surface)
}

// Entity is the shared position + color pair of everything on the board.
type Entity struct {
	Position types.Point
	Color    types.Color
}

// Draw fills the entity's cell in its color.
func (e Entity) Draw(s Surface) {
	s.FillCell(e.Position, e.Color)
}
