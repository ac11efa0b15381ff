// Package mesh builds the procedural meshes of the demo scene.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// VertexFloats is the number of float32 values in one Vertex.
const VertexFloats = 8

// Mesh holds the complete mesh data ready for GPU upload.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Dimensions returns the size of the box along each axis.
func (b Bounds) Dimensions() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the centre of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Corners returns the eight corners of the box.
func (b Bounds) Corners() [8]mgl32.Vec3 {
	var c [8]mgl32.Vec3
	for i := range c {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				c[i][axis] = b.Max[axis]
			} else {
				c[i][axis] = b.Min[axis]
			}
		}
	}
	return c
}

// Interleaved returns the vertices as a flat position/normal/uv float slice.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*VertexFloats)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// computeBounds sets Bounds from the vertex positions.
func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] < b.Min[axis] {
				b.Min[axis] = v.Position[axis]
			}
			if v.Position[axis] > b.Max[axis] {
				b.Max[axis] = v.Position[axis]
			}
		}
	}
	m.Bounds = b
}
