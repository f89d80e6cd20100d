package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Sphere builds a UV sphere centered at the origin with its poles on the Z axis.
//
// Stacks run from +90° to -90° elevation and sectors from 0° to 360°, producing
// (stacks+1)*(sectors+1) vertices. The first and last stacks emit one triangle
// per sector so the caps collapse onto the poles.
func Sphere(radius float32, sectors, stacks int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	if sectors < 3 || stacks < 2 {
		return nil, fmt.Errorf("sphere needs at least 3 sectors and 2 stacks, got %d/%d", sectors, stacks)
	}

	sectorStep := 2 * math32.Pi / float32(sectors)
	stackStep := math32.Pi / float32(stacks)

	m := &Mesh{
		Layout:   LayoutPositionNormalUV,
		Vertices: make([]float32, 0, (stacks+1)*(sectors+1)*8),
		Indices:  make([]uint32, 0, sectors*(stacks-1)*6),
	}

	invRadius := 1 / radius
	for i := 0; i <= stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float32(j) * sectorStep
			x := xy * math32.Cos(sectorAngle)
			y := xy * math32.Sin(sectorAngle)

			m.Vertices = append(m.Vertices,
				x, y, z,
				x*invRadius, y*invRadius, z*invRadius,
				float32(j)/float32(sectors), float32(i)/float32(stacks),
			)
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := 0; j < sectors; j++ {
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}

	return m, nil
}

// Torus builds a torus lying in the XY plane around the Z axis.
//
// outer is the distance from the center to the middle of the tube and inner is
// the tube radius. Normals are position/inner, which is only an approximation
// of the surface normal but is good enough for flat-colored rings.
// The last ring duplicates the first, so (rings+1)*(sides+1) vertices and
// 2*rings*sides triangles are produced without index wraparound.
func Torus(outer, inner float32, sides, rings int) (*Mesh, error) {
	if outer <= 0 || inner <= 0 {
		return nil, fmt.Errorf("torus radii must be positive, got %g/%g", outer, inner)
	}
	if sides < 3 || rings < 3 {
		return nil, fmt.Errorf("torus needs at least 3 sides and 3 rings, got %d/%d", sides, rings)
	}

	ringFactor := 2 * math32.Pi / float32(rings)
	sideFactor := 2 * math32.Pi / float32(sides)

	m := &Mesh{
		Layout:   LayoutPositionNormal,
		Vertices: make([]float32, 0, (rings+1)*(sides+1)*6),
		Indices:  make([]uint32, 0, rings*sides*6),
	}

	invInner := 1 / inner
	for ring := 0; ring <= rings; ring++ {
		u := float32(ring) * ringFactor
		cosU, sinU := math32.Cos(u), math32.Sin(u)

		for side := 0; side <= sides; side++ {
			v := float32(side) * sideFactor
			cosV, sinV := math32.Cos(v), math32.Sin(v)

			x := (outer + inner*cosV) * cosU
			y := (outer + inner*cosV) * sinU
			z := inner * sinV

			m.Vertices = append(m.Vertices,
				x, y, z,
				x*invInner, y*invInner, z*invInner,
			)
		}
	}

	for ring := 0; ring < rings; ring++ {
		start := uint32(ring * (sides + 1))
		next := uint32((ring + 1) * (sides + 1))

		for side := uint32(0); side < uint32(sides); side++ {
			m.Indices = append(m.Indices,
				start+side, next+side, start+side+1,
				start+side+1, next+side, next+side+1,
			)
		}
	}

	return m, nil
}

// skyboxVertices is a unit cube as 12 inward-visible triangles.
var skyboxVertices = [...]float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// SkyboxCube returns the 36 position-only vertices of a unit cube.
func SkyboxCube() *Mesh {
	v := make([]float32, len(skyboxVertices))
	copy(v, skyboxVertices[:])
	return &Mesh{Vertices: v, Layout: LayoutPosition}
}
