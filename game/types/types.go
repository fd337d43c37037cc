package types

// Screen and cell dimensions in pixels
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	CellSize     = 20
)

// Grid dimensions in cells
const (
	GridWidth  = ScreenWidth / CellSize
	GridHeight = ScreenHeight / CellSize
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the 32x24 board derived from the screen constants.
func DefaultGrid() Grid {
	return Grid{Width: GridWidth, Height: GridHeight}
}

// NewGrid derives a grid from a pixel screen size and a cell size.
func NewGrid(screenWidth, screenHeight, cellSize int) Grid {
	return Grid{
		Width:  screenWidth / cellSize,
		Height: screenHeight / cellSize,
	}
}

// Center returns the starting cell for a fresh snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Step moves p one cell along dir and wraps it back onto the board.
func (g Grid) Step(p Point, dir Direction) Point {
	next := p.Add(dir.ToPoint())
	return Point{
		X: Wrap(next.X, g.Width),
		Y: Wrap(next.Y, g.Height),
	}
}

// Wrap reduces v into [0, limit), so a step off one edge re-enters from the other.
func Wrap(v, limit int) int {
	return ((v % limit) + limit) % limit
}

type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

type Color struct {
	R, G, B uint8
}

// Board colors
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
	FoodColor       = Color{R: 255, G: 0, B: 0}
)
