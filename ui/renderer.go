package ui

import (
	"errors"

	"the-snake/game/input"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "Snake"

// Renderer is the raylib window backend. Each grid cell is a cellSize square.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	closed       bool
}

// NewRenderer opens the window. It fails if raylib could not create it.
func NewRenderer(screenWidth, screenHeight, cellSize int) (*Renderer, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(screenWidth), int32(screenHeight), windowTitle)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be created")
	}
	// Escape is handled as a regular quit key.
	rl.SetExitKey(rl.KeyNull)

	return &Renderer{
		cellSize:     int32(cellSize),
		screenWidth:  int32(screenWidth),
		screenHeight: int32(screenHeight),
	}, nil
}

func (r *Renderer) Clear(c types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(c))
}

func (r *Renderer) FillCell(p types.Point, c types.Color) {
	rl.DrawRectangle(
		int32(p.X)*r.cellSize,
		int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, toRaylib(c))
}

func (r *Renderer) Present() {
	rl.EndDrawing()
}

// Poll drains the key presses queued since the last frame.
func (r *Renderer) Poll() []input.Event {
	rl.PollInputEvents()

	var events []input.Event
	if rl.WindowShouldClose() {
		events = append(events, input.CloseEvent)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		events = append(events, input.Press(translateKey(key)))
	}
	return events
}

func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	rl.CloseWindow()
	return nil
}

var raylibKeys = map[int32]input.Key{
	rl.KeyUp:     input.KeyUp,
	rl.KeyDown:   input.KeyDown,
	rl.KeyLeft:   input.KeyLeft,
	rl.KeyRight:  input.KeyRight,
	rl.KeyEscape: input.KeyEscape,
	rl.KeyQ:      input.KeyQ,
	rl.KeyR:      input.KeyR,
}

func translateKey(key int32) input.Key {
	if k, ok := raylibKeys[key]; ok {
		return k
	}
	return input.KeyUnknown
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
