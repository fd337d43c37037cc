package game

import (
	"context"
	"time"

	"the-snake/game/entity"
	"the-snake/game/input"
	"the-snake/game/types"
	"the-snake/logs"

	"go.uber.org/zap"
)

// Display is what a backend has to provide: a cell surface, a polled event
// queue, and frame control.
type Display interface {
	entity.Surface
	input.Source
	Clear(c types.Color)
	Present()
	Close() error
}

// Player plays a sound on food pickup.
type Player interface {
	Play()
}

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Loop drives one Game on one Display at the pace of a Clock.
type Loop struct {
	game    *Game
	display Display
	clock   Clock
	handler *input.Handler
	player  Player
	state   State
	ticks   int
}

func NewLoop(g *Game, display Display, clock Clock) *Loop {
	return &Loop{
		game:    g,
		display: display,
		clock:   clock,
		handler: input.NewHandler(),
		state:   Running,
	}
}

// SetPlayer attaches an optional sound player.
func (l *Loop) SetPlayer(p Player) {
	l.player = p
}

func (l *Loop) State() State {
	return l.state
}

// Ticks is the number of completed iterations.
func (l *Loop) Ticks() int {
	return l.ticks
}

// Run ticks until a quit event arrives or ctx is done, then closes the display.
func (l *Loop) Run(ctx context.Context) error {
	logs.Info("game started",
		zap.String("session", l.game.UUID),
		zap.Int("grid_width", l.game.Grid.Width),
		zap.Int("grid_height", l.game.Grid.Height))

	for l.state == Running {
		l.Tick(ctx)
	}

	logs.Info("game stopped",
		zap.String("session", l.game.UUID),
		zap.Int("ticks", l.ticks),
		zap.Int("length", l.game.GetSnake().Len()),
		zap.Duration("elapsed", l.game.ElapsedTime().Round(time.Millisecond)))

	return l.display.Close()
}

// Tick runs one iteration: wait, input, move, eat, render. A quit leaves the
// board untouched; a restart resets the run before the move.
func (l *Loop) Tick(ctx context.Context) {
	if l.state == Stopped {
		return
	}
	if err := ctx.Err(); err != nil {
		l.stop("context", zap.Error(err))
		return
	}

	l.clock.Wait()

	if l.handler.Handle(l.display.Poll(), l.game) {
		l.stop("quit requested")
		return
	}

	if l.game.Update() {
		snake := l.game.GetSnake()
		logs.Debug("food eaten",
			zap.Int("head_x", snake.GetHead().X),
			zap.Int("head_y", snake.GetHead().Y),
			zap.Int("length", snake.Len()),
			zap.Int("food_x", l.game.GetFood().Position.X),
			zap.Int("food_y", l.game.GetFood().Position.Y))
		if l.player != nil {
			l.player.Play()
		}
	}

	l.render()
	l.ticks++
}

func (l *Loop) render() {
	l.display.Clear(types.BackgroundColor)
	for _, d := range l.game.Drawables() {
		d.Draw(l.display)
	}
	l.display.Present()
}

func (l *Loop) stop(reason string, fields ...zap.Field) {
	l.state = Stopped
	logs.Info("stopping", append([]zap.Field{zap.String("reason", reason)}, fields...)...)
}
