package mesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

// checkIndices verifies every index is in range and every triangle faces
// along the normals of its vertices.
func checkIndices(t *testing.T, m *Mesh) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("%s: %d indices is not whole triangles", m.Name, len(m.Indices))
	}
	for i := 0; i < len(m.Indices); i += 3 {
		var p [3]Vertex
		for k := 0; k < 3; k++ {
			idx := m.Indices[i+k]
			if int(idx) >= len(m.Vertices) {
				t.Fatalf("%s: index %d out of range", m.Name, idx)
			}
			p[k] = m.Vertices[idx]
		}
		face := p[1].Position.Sub(p[0].Position).Cross(p[2].Position.Sub(p[0].Position))
		if face.Len() < 1e-9 {
			continue
		}
		avg := p[0].Normal.Add(p[1].Normal).Add(p[2].Normal)
		if face.Dot(avg) <= 0 {
			t.Errorf("%s: triangle %d winds against its normals", m.Name, i/3)
		}
	}
}

func TestSphere(t *testing.T) {
	m := Sphere(0.5, 16, 32)
	checkIndices(t, m)

	for i, v := range m.Vertices {
		if r := v.Position.Len(); math.Abs(float64(r-0.5)) > 1e-5 {
			t.Fatalf("vertex %d at radius %v, want 0.5", i, r)
		}
		if !mgl32.FloatEqualThreshold(v.Normal.Len(), 1, 1e-5) {
			t.Fatalf("vertex %d normal not unit", i)
		}
	}

	dims := m.Bounds.Dimensions()
	if !near(dims, mgl32.Vec3{1, 1, 1}, 1e-3) {
		t.Errorf("sphere dimensions = %v, want (1,1,1)", dims)
	}
	if !near(m.Bounds.Center(), mgl32.Vec3{}, 1e-3) {
		t.Errorf("sphere centre = %v", m.Bounds.Center())
	}
}

func TestSphereClampsResolution(t *testing.T) {
	m := Sphere(1, 0, 0)
	if len(m.Vertices) != 3*4 {
		t.Errorf("vertex count = %d, want 12 for 2 stacks and 3 slices", len(m.Vertices))
	}
	checkIndices(t, m)
}

func TestBox(t *testing.T) {
	m := Box(mgl32.Vec3{2, 1, 4})
	checkIndices(t, m)

	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Errorf("box has %d vertices and %d indices, want 24 and 36", len(m.Vertices), len(m.Indices))
	}
	if m.Bounds.Min != (mgl32.Vec3{-1, -0.5, -2}) || m.Bounds.Max != (mgl32.Vec3{1, 0.5, 2}) {
		t.Errorf("box bounds = %+v", m.Bounds)
	}
}

func TestFloorTile(t *testing.T) {
	m := FloorTile(4, 2)
	checkIndices(t, m)
	if got := m.Bounds.Dimensions(); got != (mgl32.Vec3{4, 0, 2}) {
		t.Errorf("floor dimensions = %v, want (4,0,2)", got)
	}
}

func TestCorners(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{-1, -2, -3}, Max: mgl32.Vec3{1, 2, 3}}
	seen := map[mgl32.Vec3]bool{}
	for _, c := range b.Corners() {
		for axis := 0; axis < 3; axis++ {
			if c[axis] != b.Min[axis] && c[axis] != b.Max[axis] {
				t.Errorf("corner %v is not on the box", c)
			}
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct corners, want 8", len(seen))
	}
}

func TestInterleaved(t *testing.T) {
	m := FloorTile(2, 2)
	data := m.Interleaved()
	if len(data) != len(m.Vertices)*VertexFloats {
		t.Fatalf("interleaved length = %d", len(data))
	}
	// Second vertex: position (1,0,1), normal (0,1,0), uv (1,0).
	want := []float32{1, 0, 1, 0, 1, 0, 1, 0}
	for i, w := range want {
		if data[VertexFloats+i] != w {
			t.Errorf("data[%d] = %v, want %v", VertexFloats+i, data[VertexFloats+i], w)
		}
	}
}
