// Package input turns backend-neutral key events into direction changes and
// quit requests.
package input

import "the-snake/game/types"

type Kind int

const (
	KindKey Kind = iota
	KindClose
)

type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyQ
	KeyR
)

// Event is one entry of the polled input queue.
type Event struct {
	Kind Kind
	Key  Key
}

// Press builds a key-down event.
func Press(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// CloseEvent is sent when the window or terminal asks to shut down.
var CloseEvent = Event{Kind: KindClose}

// Source is a non-blocking queue of pending events.
type Source interface {
	Poll() []Event
}

// Controller receives direction changes and restart requests.
type Controller interface {
	SetDirection(dir types.Direction)
	Reset()
}

var keyDirections = map[Key]types.Direction{
	KeyUp:    types.UP,
	KeyDown:  types.DOWN,
	KeyLeft:  types.LEFT,
	KeyRight: types.RIGHT,
}

// Handler maps events to quit signals, restarts and direction changes.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle applies events in order. It stops at the first quit request and returns
// true; events after it are dropped. R restarts the run, unknown keys are ignored.
func (h *Handler) Handle(events []Event, c Controller) bool {
	for _, ev := range events {
		if h.IsQuit(ev) {
			return true
		}
		if ev.Kind != KindKey {
			continue
		}
		if ev.Key == KeyR {
			c.Reset()
			continue
		}
		if dir, ok := keyDirections[ev.Key]; ok {
			c.SetDirection(dir)
		}
	}
	return false
}

// IsQuit reports whether ev asks the game to stop.
func (h *Handler) IsQuit(ev Event) bool {
	if ev.Kind == KindClose {
		return true
	}
	return ev.Key == KeyEscape || ev.Key == KeyQ
}
