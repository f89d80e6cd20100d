// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default speed multiplier bounds and step.
const (
	MinSpeedMultiplier = 0.1
	MaxSpeedMultiplier = 10.0
	SpeedStep          = 0.1

	// MaxPitch keeps the front vector away from the up vector.
	MaxPitch = 89.0
)

// Config holds the initial camera state.
type Config struct {
	Speed    float32
	Zoom     float32
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32

	Aspect float32

	// Multiplier bounds; zero selects the defaults.
	MinSpeedMultiplier float32
	MaxSpeedMultiplier float32
}

// DefaultConfig returns the starting camera used by the demo.
func DefaultConfig() Config {
	return Config{
		Speed:    5.0,
		Zoom:     7.0,
		Position: mgl32.Vec3{0, 7, 0},
		Front:    mgl32.Vec3{0, 0, -1},
		Up:       mgl32.Vec3{0, 1, 0},
		FOV:      45,
		Near:     0.1,
		Far:      100,
		Aspect:   800.0 / 600.0,

		MinSpeedMultiplier: MinSpeedMultiplier,
		MaxSpeedMultiplier: MaxSpeedMultiplier,
	}
}

// FlyCamera is a free-flying first-person camera.
type FlyCamera struct {
	// Placement
	Position mgl32.Vec3
	Home     mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	// Orientation in degrees
	Yaw   float32
	Pitch float32

	// Zoom scales the look direction before normalization.
	Zoom float32

	// Movement
	Speed           float32
	SpeedMultiplier float32
	MinMultiplier   float32
	MaxMultiplier   float32

	// Projection parameters
	FOV    float32
	Near   float32
	Far    float32
	Aspect float32

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// NewFlyCamera creates a camera from cfg and computes its matrices.
func NewFlyCamera(cfg Config) *FlyCamera {
	front := cfg.Front.Normalize()
	minMul, maxMul := cfg.MinSpeedMultiplier, cfg.MaxSpeedMultiplier
	if minMul <= 0 {
		minMul = MinSpeedMultiplier
	}
	if maxMul <= 0 {
		maxMul = MaxSpeedMultiplier
	}
	c := &FlyCamera{
		Position:        cfg.Position,
		Home:            cfg.Position,
		Front:           front,
		Up:              cfg.Up,
		Yaw:             yawOf(front),
		Pitch:           pitchOf(front),
		Zoom:            cfg.Zoom,
		Speed:           cfg.Speed,
		SpeedMultiplier: 1.0,
		MinMultiplier:   minMul,
		MaxMultiplier:   maxMul,
		FOV:             cfg.FOV,
		Near:            cfg.Near,
		Far:             cfg.Far,
		Aspect:          cfg.Aspect,
	}
	c.updateProjection()
	c.UpdateView()
	return c
}

// View returns the view matrix computed by the last UpdateView call.
func (c *FlyCamera) View() mgl32.Mat4 {
	return c.view
}

// Projection returns the projection matrix.
func (c *FlyCamera) Projection() mgl32.Mat4 {
	return c.projection
}

// UpdateView recomputes the view matrix from position, front and up.
// Call once per frame after movement and rotation.
func (c *FlyCamera) UpdateView() {
	c.view = mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// SetAspect rebuilds the projection for a new viewport aspect ratio.
func (c *FlyCamera) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.Aspect = aspect
	c.updateProjection()
}

func (c *FlyCamera) updateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// step returns the distance covered in dt seconds.
func (c *FlyCamera) step(dt float32) float32 {
	return c.Speed * c.SpeedMultiplier * dt
}

// right returns the horizontal right vector.
func (c *FlyCamera) right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// MoveForward moves along the view direction.
func (c *FlyCamera) MoveForward(dt float32) {
	c.Position = c.Position.Add(c.Front.Mul(c.step(dt)))
}

// MoveBackward moves against the view direction.
func (c *FlyCamera) MoveBackward(dt float32) {
	c.Position = c.Position.Sub(c.Front.Mul(c.step(dt)))
}

// MoveLeft strafes left.
func (c *FlyCamera) MoveLeft(dt float32) {
	c.Position = c.Position.Sub(c.right().Mul(c.step(dt)))
}

// MoveRight strafes right.
func (c *FlyCamera) MoveRight(dt float32) {
	c.Position = c.Position.Add(c.right().Mul(c.step(dt)))
}

// SpeedUp raises the speed multiplier by one step, up to MaxMultiplier.
func (c *FlyCamera) SpeedUp() {
	c.SpeedMultiplier = mgl32.Clamp(c.SpeedMultiplier+SpeedStep, c.MinMultiplier, c.MaxMultiplier)
}

// SpeedDown lowers the speed multiplier by one step, down to MinMultiplier.
func (c *FlyCamera) SpeedDown() {
	c.SpeedMultiplier = mgl32.Clamp(c.SpeedMultiplier-SpeedStep, c.MinMultiplier, c.MaxMultiplier)
}

// ResetSpeed restores the multiplier to 1.
func (c *FlyCamera) ResetSpeed() {
	c.SpeedMultiplier = 1.0
}

// ResetPosition moves the camera back to its starting position.
// Orientation is left untouched.
func (c *FlyCamera) ResetPosition() {
	c.Position = c.Home
}

// Rotate applies yaw and pitch increments in degrees and recomputes Front.
func (c *FlyCamera) Rotate(yawDelta, pitchDelta float32) {
	c.Yaw += yawDelta
	c.Pitch = mgl32.Clamp(c.Pitch+pitchDelta, -MaxPitch, MaxPitch)

	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	dir := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	if c.Zoom > 0 {
		dir = dir.Mul(c.Zoom)
	}

	c.Front = dir.Normalize()
}

// yawOf returns the yaw angle in degrees of a unit direction.
func yawOf(front mgl32.Vec3) float32 {
	return mgl32.RadToDeg(math32.Atan2(front[2], front[0]))
}

// pitchOf returns the pitch angle in degrees of a unit direction.
func pitchOf(front mgl32.Vec3) float32 {
	return mgl32.Clamp(mgl32.RadToDeg(math32.Asin(front[1])), -MaxPitch, MaxPitch)
}
