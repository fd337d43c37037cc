// Package term renders the board in a terminal with tcell. A grid cell takes two
// columns so it looks roughly square.
package term

import (
	"fmt"

	"the-snake/game/input"
	"the-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	columnsPerCell = 2
	eventBuffer    = 100
)

type Screen struct {
	screen  tcell.Screen
	grid    types.Grid
	events  chan tcell.Event
	done    chan struct{}
	stopped chan struct{}
	closed  bool
}

// NewScreen opens the controlling terminal. It fails when the terminal is too
// small to show the whole board.
func NewScreen(grid types.Grid) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s, err := attach(screen, grid, eventBuffer)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return s, nil
}

// attach takes over an initialized screen and starts forwarding its events.
func attach(screen tcell.Screen, grid types.Grid, buffer int) (*Screen, error) {
	cols, rows := screen.Size()
	if cols < grid.Width*columnsPerCell || rows < grid.Height {
		return nil, fmt.Errorf("terminal is %dx%d, board needs %dx%d",
			cols, rows, grid.Width*columnsPerCell, grid.Height)
	}
	screen.HideCursor()

	s := &Screen{
		screen:  screen,
		grid:    grid,
		events:  make(chan tcell.Event, buffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

// pump forwards terminal events until the screen is finalized or closed.
func (s *Screen) pump() {
	defer close(s.stopped)
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *Screen) Clear(c types.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

func (s *Screen) FillCell(p types.Point, c types.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	x := p.X * columnsPerCell
	for i := 0; i < columnsPerCell; i++ {
		s.screen.SetContent(x+i, p.Y, ' ', nil, style)
	}
}

func (s *Screen) Present() {
	s.screen.Show()
}

// Poll drains the events that arrived since the last call without blocking.
func (s *Screen) Poll() []input.Event {
	var events []input.Event
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(events, input.CloseEvent)
			}
			if e, ok := translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

// Close restores the terminal and waits for the event pump to exit.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	s.screen.Fini()
	<-s.stopped
	return nil
}

func translate(ev tcell.Event) (input.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return input.Press(input.KeyUp), true
		case tcell.KeyDown:
			return input.Press(input.KeyDown), true
		case tcell.KeyLeft:
			return input.Press(input.KeyLeft), true
		case tcell.KeyRight:
			return input.Press(input.KeyRight), true
		case tcell.KeyEscape:
			return input.Press(input.KeyEscape), true
		case tcell.KeyCtrlC:
			return input.CloseEvent, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return input.Press(input.KeyQ), true
			case 'r', 'R':
				return input.Press(input.KeyR), true
			}
		}
		return input.Press(input.KeyUnknown), true
	}
	return input.Event{}, false
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
