package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AxialTilt is the fixed rotation around X applied before any orbital motion.
// It turns the generated meshes (poles on Z) so the shared orbit axis points up.
var AxialTilt = mgl32.DegToRad(-90)

// NoParent marks a body that orbits the origin.
const NoParent = -1

// Satellite defaults.
const (
	DefaultSatelliteRadius = 1.0
	DefaultSatelliteRate   = 0.5
)

// Orbiter is anything a body can orbit around.
type Orbiter interface {
	OrbitDistance() float32
}

// BodySpec describes a body before it is placed in a System.
type BodySpec struct {
	Name        string
	Radius      float32
	Sectors     int
	Stacks      int
	OrbitSpeed  float32 // rad/s around the shared vertical axis
	SelfSpeed   float32 // rad/s around the body's own axis
	LightSource bool

	// Distance places a body on the x axis before the orbit rotation.
	// Satellites are offset from the parent's Distance instead and use
	// their own only as the orbit path radius.
	Distance float32

	// Parent is the index of the orbited body, or NoParent.
	Parent int

	SatelliteRadius float32 // circle radius around the parent (0 = default)
	SatelliteRate   float32 // angular rate of that circle (0 = default)
}

// Body is a celestial body with its current model transform.
type Body struct {
	spec  BodySpec
	model mgl32.Mat4
}

// NewBody creates a body from spec with an identity model matrix.
func NewBody(spec BodySpec) *Body {
	if spec.SatelliteRadius == 0 {
		spec.SatelliteRadius = DefaultSatelliteRadius
	}
	if spec.SatelliteRate == 0 {
		spec.SatelliteRate = DefaultSatelliteRate
	}
	return &Body{spec: spec, model: mgl32.Ident4()}
}

// Spec returns the body's parameters.
func (b *Body) Spec() BodySpec {
	return b.spec
}

// Name returns the body name.
func (b *Body) Name() string {
	return b.spec.Name
}

// OrbitDistance returns the configured distance from the origin.
func (b *Body) OrbitDistance() float32 {
	return b.spec.Distance
}

// IsLightSource reports whether the body emits light.
func (b *Body) IsLightSource() bool {
	return b.spec.LightSource
}

// Model returns the model matrix computed by the last UpdatePosition call.
func (b *Body) Model() mgl32.Mat4 {
	return b.model
}

// UpdatePosition recomputes the model matrix for simulation time t (seconds).
//
// The transform is built as tilt -> orbit -> translate -> spin; each step is
// expressed in the frame produced by the previous ones. A non-nil parent
// places the body on a small circle around the parent's distance, with a
// phase driven by t alone.
func (b *Body) UpdatePosition(t float32, parent Orbiter) {
	b.model = b.ModelAt(t, parent)
}

// ModelAt computes the model matrix for time t without storing it.
func (b *Body) ModelAt(t float32, parent Orbiter) mgl32.Mat4 {
	m := mgl32.HomogRotate3DX(AxialTilt)
	m = m.Mul4(mgl32.HomogRotate3DZ(b.spec.OrbitSpeed * t))
	m = m.Mul4(translation(b.offset(t, parent)))
	m = m.Mul4(mgl32.HomogRotate3DZ(b.spec.SelfSpeed * t))
	return m
}

// offset returns the translation applied in the orbit frame.
func (b *Body) offset(t float32, parent Orbiter) mgl32.Vec3 {
	if parent == nil {
		return mgl32.Vec3{b.spec.Distance, 0, 0}
	}
	phase := b.spec.SatelliteRate * t
	return mgl32.Vec3{parent.OrbitDistance(), 0, 0}.Add(mgl32.Vec3{
		b.spec.SatelliteRadius * math32.Cos(phase),
		b.spec.SatelliteRadius * math32.Sin(phase),
		0,
	})
}

// WorldPosition returns the body center in world space.
func (b *Body) WorldPosition() mgl32.Vec3 {
	return mgl32.TransformCoordinate(mgl32.Vec3{}, b.model)
}

func translation(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}
