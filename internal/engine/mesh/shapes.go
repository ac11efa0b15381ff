package mesh

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere builds a UV sphere of the given radius centred on the origin.
// stacks and slices are clamped to at least 2 and 3.
func Sphere(radius float32, stacks, slices int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	m := &Mesh{Name: "sphere"}
	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		phi := v * gomath.Pi
		for j := 0; j <= slices; j++ {
			u := float64(j) / float64(slices)
			theta := u * 2 * gomath.Pi

			n := mgl32.Vec3{
				float32(gomath.Sin(phi) * gomath.Cos(theta)),
				float32(gomath.Cos(phi)),
				float32(gomath.Sin(phi) * gomath.Sin(theta)),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: n.Mul(radius),
				Normal:   n,
				TexCoord: mgl32.Vec2{float32(u), float32(v)},
			})
		}
	}

	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := i*row + j
			b := a + row
			// Counter-clockwise seen from outside.
			if i != 0 {
				m.Indices = append(m.Indices, a, a+1, b)
			}
			if i != uint32(stacks)-1 {
				m.Indices = append(m.Indices, a+1, b+1, b)
			}
		}
	}

	m.computeBounds()
	return m
}

// Box builds an axis-aligned box of the given size centred on the origin.
func Box(size mgl32.Vec3) *Mesh {
	h := size.Mul(0.5)
	m := &Mesh{Name: "box"}

	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}

	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			m.Vertices = append(m.Vertices, Vertex{
				Position: mgl32.Vec3{p[0] * h[0], p[1] * h[1], p[2] * h[2]},
				Normal:   f.normal,
				TexCoord: mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	m.computeBounds()
	return m
}

// FloorTile builds a flat quad in the XZ plane facing +Y.
func FloorTile(width, depth float32) *Mesh {
	w, d := width/2, depth/2
	m := &Mesh{
		Name: "floor",
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-w, 0, d}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{w, 0, d}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{w, 0, -d}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-w, 0, -d}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	m.computeBounds()
	return m
}
