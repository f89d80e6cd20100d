// Package mesh uploads geometry meshes to the GPU and draws them.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/geometry"
)

// Attribute locations shared by every shader.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2
)

// GPU is a mesh resident in a VAO with its vertex and index buffers.
type GPU struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// Upload copies m into new GPU buffers. Attributes follow m.Layout:
// position at location 0, normal at 1, texcoord at 2.
func Upload(m *geometry.Mesh) *GPU {
	g := &GPU{indexed: len(m.Indices) > 0}
	if m.VertexCount() == 0 {
		return g
	}

	stride := int32(m.Layout.Stride() * 4)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(AttribPosition)

	if m.Layout.HasNormals() {
		gl.VertexAttribPointerWithOffset(AttribNormal, 3, gl.FLOAT, false, stride, 3*4)
		gl.EnableVertexAttribArray(AttribNormal)
	}
	if m.Layout.HasTexCoords() {
		gl.VertexAttribPointerWithOffset(AttribTexCoord, 2, gl.FLOAT, false, stride, 6*4)
		gl.EnableVertexAttribArray(AttribTexCoord)
	}

	if g.indexed {
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
		g.count = int32(len(m.Indices))
	} else {
		g.count = int32(m.VertexCount())
	}

	gl.BindVertexArray(0)
	return g
}

// Draw issues the draw call for the whole mesh as triangles.
func (g *GPU) Draw() {
	if g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	if g.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	}
	gl.BindVertexArray(0)
}

// Count returns the number of indices (or vertices for non-indexed meshes).
func (g *GPU) Count() int {
	return int(g.count)
}

// Destroy releases the GPU buffers. Later calls are no-ops.
func (g *GPU) Destroy() {
	if g == nil || g.vao == 0 {
		return
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
	g.vao, g.vbo, g.ebo = 0, 0, 0
}
