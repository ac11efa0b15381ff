package debug

import "github.com/go-gl/mathgl/mgl32"

// TileGrid describes a rectangular layout of floor tiles. Column c and row r
// place a tile centre at Origin + (c*TileWidth, 0, -r*TileDepth).
type TileGrid struct {
	Origin    mgl32.Vec3
	TileWidth float32
	TileDepth float32
	Rows      int
	MinCol    int
	MaxCol    int
}

// GridLines generates line vertices along the tile borders, lifted by height
// to avoid z-fighting with the floor. Format: [x, y, z] per vertex.
func (g TileGrid) GridLines(height float32) []float32 {
	if g.Rows <= 0 || g.MaxCol < g.MinCol {
		return nil
	}

	y := g.Origin.Y() + height
	left := g.Origin.X() + (float32(g.MinCol)-0.5)*g.TileWidth
	right := g.Origin.X() + (float32(g.MaxCol)+0.5)*g.TileWidth
	near := g.Origin.Z() + 0.5*g.TileDepth
	far := g.Origin.Z() - (float32(g.Rows)-0.5)*g.TileDepth

	var vertices []float32

	// Lines along Z, one per column border
	for c := g.MinCol; c <= g.MaxCol+1; c++ {
		x := g.Origin.X() + (float32(c)-0.5)*g.TileWidth
		vertices = append(vertices, x, y, near, x, y, far)
	}

	// Lines along X, one per row border
	for r := 0; r <= g.Rows; r++ {
		z := g.Origin.Z() + (0.5-float32(r))*g.TileDepth
		vertices = append(vertices, left, y, z, right, y, z)
	}

	return vertices
}

// Centers returns the centre of every tile, row by row from the origin
// outward, columns from MinCol to MaxCol.
func (g TileGrid) Centers() []mgl32.Vec3 {
	if g.Rows <= 0 || g.MaxCol < g.MinCol {
		return nil
	}
	centers := make([]mgl32.Vec3, 0, g.Rows*(g.MaxCol-g.MinCol+1))
	for r := 0; r < g.Rows; r++ {
		for c := g.MinCol; c <= g.MaxCol; c++ {
			centers = append(centers, g.Origin.Add(mgl32.Vec3{
				float32(c) * g.TileWidth,
				0,
				-float32(r) * g.TileDepth,
			}))
		}
	}
	return centers
}
