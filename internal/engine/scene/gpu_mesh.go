package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/stencilpick/internal/engine/mesh"
)

// GPUMesh is a mesh uploaded to a VAO with interleaved position, normal and
// uv attributes at locations 0, 1 and 2.
type GPUMesh struct {
	Name   string
	Bounds mesh.Bounds

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Upload creates GPU buffers for m.
func Upload(m *mesh.Mesh) *GPUMesh {
	g := &GPUMesh{
		Name:       m.Name,
		Bounds:     m.Bounds,
		indexCount: int32(len(m.Indices)),
	}
	vertices := m.Interleaved()
	if len(vertices) == 0 || len(m.Indices) == 0 {
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	const stride = mesh.VertexFloats * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

// Draw issues the indexed draw. The caller binds the program.
func (g *GPUMesh) Draw() {
	if g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (g *GPUMesh) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		g.vao, g.vbo, g.ebo = 0, 0, 0
	}
}
