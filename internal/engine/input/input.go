// Package input turns SDL2 events into viewer controls.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/durham-house/internal/viewer"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventWheel
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	Wheel  int32 // positive scrolls away from the user
}

// Bindings maps keys to viewer controls.
type Bindings map[sdl.Keycode]viewer.ActionKind

// DefaultBindings returns the standard key layout: arrows rotate, [ and ]
// toggle the left and right door, 1-6 lower and raise the red car, green
// car and walking speeds, R resets the camera. The up arrow lowers the
// x angle and the down arrow raises it.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.K_UP:           viewer.RotateDown,
		sdl.K_DOWN:         viewer.RotateUp,
		sdl.K_LEFT:         viewer.RotateLeft,
		sdl.K_RIGHT:        viewer.RotateRight,
		sdl.K_LEFTBRACKET:  viewer.ToggleLeftDoor,
		sdl.K_RIGHTBRACKET: viewer.ToggleRightDoor,
		sdl.K_1:            viewer.RedSlower,
		sdl.K_2:            viewer.RedFaster,
		sdl.K_3:            viewer.GreenSlower,
		sdl.K_4:            viewer.GreenFaster,
		sdl.K_5:            viewer.WalkSlower,
		sdl.K_6:            viewer.WalkFaster,
		sdl.K_r:            viewer.ResetCamera,
		sdl.K_MINUS:        viewer.ZoomIn,
		sdl.K_EQUALS:       viewer.ZoomOut,
	}
}

// Input collects the events of one frame.
type Input struct {
	events   []Event
	bindings Bindings
}

// New creates an input handler with the given bindings.
func New(b Bindings) *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		bindings: b,
	}
}

// Update drains the SDL queue. Returns true if the user asked to quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := Convert(event); ok {
			i.events = append(i.events, e)
			quit = quit || e.Type == EventQuit
		}
	}
	return quit
}

// Convert translates one SDL event. Events the viewer has no use for
// report false.
func Convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}

	case *sdl.MouseWheelEvent:
		y := e.Y
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		if y != 0 {
			return Event{Type: EventWheel, Wheel: y}, true
		}
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Actions returns the viewer controls of the last Update, in order.
func (i *Input) Actions() []viewer.Action {
	return Translate(i.events, i.bindings)
}

// Translate maps events to controls. Each wheel notch is one zoom step:
// scrolling away widens the view.
func Translate(events []Event, b Bindings) []viewer.Action {
	var out []viewer.Action
	for _, e := range events {
		switch e.Type {
		case EventKeyDown:
			if kind, ok := b[e.Key]; ok {
				out = append(out, viewer.Do(kind))
			}
		case EventWheel:
			kind, n := viewer.ZoomOut, e.Wheel
			if n < 0 {
				kind, n = viewer.ZoomIn, -n
			}
			for ; n > 0; n-- {
				out = append(out, viewer.Do(kind))
			}
		}
	}
	return out
}

// IsKeyPressed checks if a key went down this frame.
func (i *Input) IsKeyPressed(key sdl.Keycode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// Resized returns the last window size reported this frame.
func (i *Input) Resized() (w, h int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventWindowResize {
			w, h, ok = e.Width, e.Height, true
		}
	}
	return w, h, ok
}
