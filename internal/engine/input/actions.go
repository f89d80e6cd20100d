package input

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// Action is a logical control bound to one or more keys.
type Action int

const (
	ActionQuit Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionSpeedUp
	ActionSpeedDown
	ActionResetSpeed
	ActionResetPosition
	ActionTogglePause
	ActionToggleOrbits
	ActionToggleMute
	ActionScreenshot

	actionCount
)

var actionNames = [actionCount]string{
	ActionQuit:          "quit",
	ActionMoveForward:   "move_forward",
	ActionMoveBackward:  "move_backward",
	ActionMoveLeft:      "move_left",
	ActionMoveRight:     "move_right",
	ActionSpeedUp:       "speed_up",
	ActionSpeedDown:     "speed_down",
	ActionResetSpeed:    "reset_speed",
	ActionResetPosition: "reset_position",
	ActionTogglePause:   "toggle_pause",
	ActionToggleOrbits:  "toggle_orbits",
	ActionToggleMute:    "toggle_mute",
	ActionScreenshot:    "screenshot",
}

func (a Action) String() string {
	if a >= 0 && a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]sdl.Scancode

// DefaultBindings returns the stock keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		ActionQuit:          {sdl.SCANCODE_ESCAPE},
		ActionMoveForward:   {sdl.SCANCODE_W},
		ActionMoveBackward:  {sdl.SCANCODE_S},
		ActionMoveLeft:      {sdl.SCANCODE_A},
		ActionMoveRight:     {sdl.SCANCODE_D},
		ActionSpeedUp:       {sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT},
		ActionSpeedDown:     {sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL},
		ActionResetSpeed:    {sdl.SCANCODE_R},
		ActionResetPosition: {sdl.SCANCODE_T},
		ActionTogglePause:   {sdl.SCANCODE_P},
		ActionToggleOrbits:  {sdl.SCANCODE_SPACE},
		ActionToggleMute:    {sdl.SCANCODE_M},
		ActionScreenshot:    {sdl.SCANCODE_F12},
	}
}

// Override replaces bindings from a name map such as {"toggle_pause": ["P"]}.
// Key names are SDL key names.
func (b Bindings) Override(m map[string][]string) error {
	for name, keys := range m {
		a, err := ParseAction(name)
		if err != nil {
			return err
		}
		codes := make([]sdl.Scancode, 0, len(keys))
		for _, k := range keys {
			sc := sdl.GetScancodeFromName(strings.TrimSpace(k))
			if sc == sdl.SCANCODE_UNKNOWN {
				return fmt.Errorf("action %s: unknown key %q", name, k)
			}
			codes = append(codes, sc)
		}
		b[a] = codes
	}
	return nil
}

// Resolve returns which actions are held, given a key-state lookup.
func (b Bindings) Resolve(down func(sdl.Scancode) bool) [actionCount]bool {
	var held [actionCount]bool
	for a, keys := range b {
		if a < 0 || a >= actionCount {
			continue
		}
		for _, k := range keys {
			if down(k) {
				held[a] = true
				break
			}
		}
	}
	return held
}

// Snapshot is the per-frame view of the controls.
type Snapshot struct {
	held    [actionCount]bool
	pressed [actionCount]bool

	// Relative mouse motion accumulated during the frame, in pixels.
	MouseDX float32
	MouseDY float32
}

// Held reports whether a is down this frame.
func (s Snapshot) Held(a Action) bool {
	return a >= 0 && a < actionCount && s.held[a]
}

// Pressed reports whether a went down this frame.
func (s Snapshot) Pressed(a Action) bool {
	return a >= 0 && a < actionCount && s.pressed[a]
}

// SnapshotOf builds a snapshot with the given held actions and no edges.
func SnapshotOf(actions ...Action) Snapshot {
	var s Snapshot
	for _, a := range actions {
		if a >= 0 && a < actionCount {
			s.held[a] = true
		}
	}
	return s
}

// Tracker turns successive held states into press edges.
type Tracker struct {
	prev [actionCount]bool
}

// Next records held as the current state and returns a snapshot whose
// Pressed is true only for actions that were up on the previous call.
func (t *Tracker) Next(held [actionCount]bool) Snapshot {
	s := Snapshot{held: held}
	for a := range held {
		s.pressed[a] = held[a] && !t.prev[a]
	}
	t.prev = held
	return s
}

// Step is Next for a list of held actions.
func (t *Tracker) Step(actions ...Action) Snapshot {
	return t.Next(SnapshotOf(actions...).held)
}
