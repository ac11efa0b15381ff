// Package debug provides debug visualization utilities.
package debug

import "github.com/go-gl/mathgl/mgl32"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding for pick proxy boxes.
const DefaultBBoxPadding = 0.0

// BBoxWireframe creates line vertices for a wireframe box between min and max.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func BBoxWireframe(min, max mgl32.Vec3) []float32 {
	minX, minY, minZ := min.Elem()
	maxX, maxY, maxZ := max.Elem()
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// SphereProxyWireframe creates the wireframe of the cube that encloses a pick
// sphere, expanded by padding on all sides.
func SphereProxyWireframe(center mgl32.Vec3, radius, padding float32) []float32 {
	r := radius + padding
	ext := mgl32.Vec3{r, r, r}
	return BBoxWireframe(center.Sub(ext), center.Add(ext))
}
