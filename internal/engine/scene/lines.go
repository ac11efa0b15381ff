package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LineRenderer draws xyz line vertices from a dynamic buffer. Capacity is
// fixed at creation, in floats.
type LineRenderer struct {
	vao      uint32
	vbo      uint32
	capacity int
	count    int32
}

// NewLineRenderer allocates a buffer for capacity floats.
func NewLineRenderer(capacity int) *LineRenderer {
	lr := &LineRenderer{capacity: capacity}

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*4, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)
	return lr
}

// Set replaces the drawn vertices. Anything past capacity is dropped.
func (lr *LineRenderer) Set(vertices []float32) {
	if len(vertices) > lr.capacity {
		vertices = vertices[:lr.capacity]
	}
	lr.count = int32(len(vertices) / 3)
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues a GL_LINES draw. The caller binds the program.
func (lr *LineRenderer) Draw() {
	if lr.count == 0 {
		return
	}
	gl.BindVertexArray(lr.vao)
	gl.DrawArrays(gl.LINES, 0, lr.count)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (lr *LineRenderer) Delete() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vao, lr.vbo = 0, 0
	}
}
