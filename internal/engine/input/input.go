// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event represents a processed window event. Keys and mouse motion are
// read through Snapshot instead.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events   []Event
	bindings Bindings
	tracker  Tracker

	mouseDX int
	mouseDY int
}

// New creates a new input handler using the given key bindings.
func New(bindings Bindings) *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		bindings: bindings,
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events
	i.mouseDX, i.mouseDY = 0, 0
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += int(e.XRel)
			i.mouseDY += int(e.YRel)
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Snapshot reads the keyboard state through the bindings and returns the
// frame's held and newly pressed actions. Call once per frame after Update.
func (i *Input) Snapshot() Snapshot {
	keys := sdl.GetKeyboardState()
	held := i.bindings.Resolve(func(sc sdl.Scancode) bool {
		return int(sc) < len(keys) && keys[sc] != 0
	})
	s := i.tracker.Next(held)
	s.MouseDX = float32(i.mouseDX)
	s.MouseDY = float32(i.mouseDY)
	return s
}
