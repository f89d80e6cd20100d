// Package scene owns the GPU side of the solar system: planet meshes and
// textures, ring and orbit-path tori, the skybox, and the shared shader
// library.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orrery/internal/sim"
)

// Orbit path torus.
const (
	OrbitPathThickness = 0.02
	OrbitPathSegments  = 64
)

// Ring tori.
const (
	RingInnerRadius = 0.05
	RingStartOffset = 1.0 // first ring's outer radius beyond the body radius
	RingGap         = 0.05
	RingSegments    = 64
)

// Anchor selects the frame the orbit-path torus is drawn in.
type Anchor int

const (
	// AnchorBody draws the path with the body's current model matrix.
	AnchorBody Anchor = iota
	// AnchorOrigin draws the path in the tilted frame centred on the origin.
	AnchorOrigin
)

// ParseAnchor maps "body" and "origin" to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "", "body":
		return AnchorBody, nil
	case "origin":
		return AnchorOrigin, nil
	}
	return AnchorBody, fmt.Errorf("unknown orbit path anchor %q", s)
}

func (a Anchor) String() string {
	if a == AnchorOrigin {
		return "origin"
	}
	return "body"
}

// OrbitPathModel returns the model matrix for a body's orbit-path torus.
func OrbitPathModel(a Anchor, body mgl32.Mat4) mgl32.Mat4 {
	if a == AnchorOrigin {
		return mgl32.HomogRotate3DX(sim.AxialTilt)
	}
	return body
}

// RingRadii returns the outer radius of each of count rings around a body
// of the given radius. Rings start just beyond the surface and grow by the
// tube thickness plus a gap.
func RingRadii(radius float32, count int) []float32 {
	if count <= 0 {
		return nil
	}
	radii := make([]float32, count)
	outer := radius + RingStartOffset
	for i := range radii {
		radii[i] = outer
		outer += RingInnerRadius + RingGap
	}
	return radii
}
