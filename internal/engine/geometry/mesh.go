// Package geometry generates procedural meshes (spheres, tori, skybox cube).
// It is pure math and never touches the GPU.
package geometry

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout describes how vertex attributes are interleaved in Mesh.Vertices.
type Layout int

const (
	// LayoutPosition stores x,y,z per vertex.
	LayoutPosition Layout = iota
	// LayoutPositionNormal stores x,y,z,nx,ny,nz per vertex.
	LayoutPositionNormal
	// LayoutPositionNormalUV stores x,y,z,nx,ny,nz,u,v per vertex.
	LayoutPositionNormalUV
)

// Stride returns the number of float32 values per vertex.
func (l Layout) Stride() int {
	switch l {
	case LayoutPositionNormal:
		return 6
	case LayoutPositionNormalUV:
		return 8
	default:
		return 3
	}
}

// HasNormals reports whether the layout carries normals.
func (l Layout) HasNormals() bool {
	return l == LayoutPositionNormal || l == LayoutPositionNormalUV
}

// HasTexCoords reports whether the layout carries texture coordinates.
func (l Layout) HasTexCoords() bool {
	return l == LayoutPositionNormalUV
}

// Mesh holds interleaved vertex data and triangle indices ready for GPU upload.
// An empty Indices slice means the vertices are drawn as a plain triangle list.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Layout   Layout
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / m.Layout.Stride()
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) == 0 {
		return m.VertexCount() / 3
	}
	return len(m.Indices) / 3
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	o := i * m.Layout.Stride()
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns the normal of vertex i, or the zero vector if the layout has none.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	if !m.Layout.HasNormals() {
		return mgl32.Vec3{}
	}
	o := i*m.Layout.Stride() + 3
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// TexCoord returns the texture coordinate of vertex i.
func (m *Mesh) TexCoord(i int) mgl32.Vec2 {
	if !m.Layout.HasTexCoords() {
		return mgl32.Vec2{}
	}
	o := i*m.Layout.Stride() + 6
	return mgl32.Vec2{m.Vertices[o], m.Vertices[o+1]}
}

// WriteOBJ writes the mesh in Wavefront OBJ format.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := m.VertexCount()

	for i := 0; i < n; i++ {
		p := m.Position(i)
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	if m.Layout.HasTexCoords() {
		for i := 0; i < n; i++ {
			uv := m.TexCoord(i)
			fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
		}
	}
	if m.Layout.HasNormals() {
		for i := 0; i < n; i++ {
			nv := m.Normal(i)
			fmt.Fprintf(bw, "vn %g %g %g\n", nv[0], nv[1], nv[2])
		}
	}

	face := func(a, b, c uint32) {
		// OBJ indices are 1-based
		a, b, c = a+1, b+1, c+1
		switch {
		case m.Layout.HasTexCoords():
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		case m.Layout.HasNormals():
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		default:
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}

	if len(m.Indices) > 0 {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			face(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	} else {
		for i := 0; i+2 < n; i += 3 {
			face(uint32(i), uint32(i+1), uint32(i+2))
		}
	}

	return bw.Flush()
}
