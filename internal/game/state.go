package game

import (
	"time"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/sim"
)

// Options configures a new State.
type Options struct {
	Camera           camera.Config
	MouseSensitivity float32
	ShowOrbits       bool
	StartPaused      bool
	Muted            bool
}

// State is the simulation context threaded through each frame. It holds
// no GPU handles.
type State struct {
	Camera *camera.FlyCamera
	Clock  *sim.Clock
	System *sim.System

	ShowOrbits  bool
	Muted       bool
	Sensitivity float32

	// Time is the simulation time of the last body update, in seconds.
	Time float32
}

// StepResult reports the side effects a frame asks the loop to perform.
type StepResult struct {
	Quit         bool
	Screenshot   bool
	MuteChanged  bool
	PauseChanged bool
}

// NewState creates the context and places every body at time zero.
func NewState(system *sim.System, opts Options) *State {
	s := &State{
		Camera:      camera.NewFlyCamera(opts.Camera),
		Clock:       sim.NewClock(),
		System:      system,
		ShowOrbits:  opts.ShowOrbits,
		Muted:       opts.Muted,
		Sensitivity: opts.MouseSensitivity,
	}
	if opts.StartPaused {
		s.Clock.Pause(0)
	}
	system.Update(0)
	return s
}

// Step applies one frame of input at wall time now. dt is the wall time
// since the previous frame in seconds and scales camera movement.
// Input is always handled; only the body update stops while paused.
func (s *State) Step(snap input.Snapshot, now time.Duration, dt float32) StepResult {
	var res StepResult
	if snap.Held(input.ActionQuit) {
		res.Quit = true
		return res
	}

	cam := s.Camera
	if snap.Held(input.ActionMoveForward) {
		cam.MoveForward(dt)
	}
	if snap.Held(input.ActionMoveBackward) {
		cam.MoveBackward(dt)
	}
	if snap.Held(input.ActionMoveLeft) {
		cam.MoveLeft(dt)
	}
	if snap.Held(input.ActionMoveRight) {
		cam.MoveRight(dt)
	}
	if snap.Held(input.ActionSpeedUp) {
		cam.SpeedUp()
	}
	if snap.Held(input.ActionSpeedDown) {
		cam.SpeedDown()
	}
	if snap.Held(input.ActionResetSpeed) {
		cam.ResetSpeed()
	}
	if snap.Held(input.ActionResetPosition) {
		cam.ResetPosition()
	}

	if snap.Pressed(input.ActionTogglePause) {
		s.Clock.Toggle(now)
		res.PauseChanged = true
	}
	if snap.Pressed(input.ActionToggleOrbits) {
		s.ShowOrbits = !s.ShowOrbits
	}
	if snap.Pressed(input.ActionToggleMute) {
		s.Muted = !s.Muted
		res.MuteChanged = true
	}
	res.Screenshot = snap.Pressed(input.ActionScreenshot)

	// Screen y grows downward, pitch grows upward.
	if snap.MouseDX != 0 || snap.MouseDY != 0 {
		cam.Rotate(snap.MouseDX*s.Sensitivity, -snap.MouseDY*s.Sensitivity)
	}
	cam.UpdateView()

	if !s.Clock.Paused() {
		s.Time = s.Clock.Seconds(now)
		s.System.Update(s.Time)
	}
	return res
}

// Paused reports whether the simulation clock is paused.
func (s *State) Paused() bool {
	return s.Clock.Paused()
}
