package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/stencilpick/internal/config"
	"github.com/Faultbox/stencilpick/internal/engine/debug"
	"github.com/Faultbox/stencilpick/internal/engine/selection"
)

// TileSize is the edge length of one floor tile.
const TileSize = 4

// LanternSpin is the rotation speed of the orbiting lantern in degrees per second.
const LanternSpin = 45

// Layout is where everything in the scene sits. It holds no GL resources.
type Layout struct {
	Candidates []selection.Candidate

	// The prop sits at the origin and is outlined whenever PropBorder is set.
	PropSize   mgl32.Vec3
	PropBorder bool

	Floor debug.TileGrid
}

// NewLayout places the objects described by cfg.
func NewLayout(cfg config.SceneConfig) Layout {
	l := Layout{
		PropSize:   mgl32.Vec3{1.5, 1.5, 1.5},
		PropBorder: cfg.PropBorder,
		Floor: debug.TileGrid{
			Origin:    mgl32.Vec3{0, cfg.FloorY, 0},
			TileWidth: TileSize,
			TileDepth: TileSize,
			Rows:      cfg.FloorRows,
			MinCol:    -(cfg.FloorRows/3 - 1),
			MaxCol:    cfg.FloorRows/3 - 1,
		},
	}
	for _, s := range cfg.Spheres {
		l.Candidates = append(l.Candidates, selection.Candidate{
			Name:       s.Name,
			Position:   mgl32.Vec3(s.Position),
			Dimensions: mgl32.Vec3(s.Dimensions),
		})
	}
	return l
}

// TileModels returns the model matrix of every floor tile.
func (l Layout) TileModels() []mgl32.Mat4 {
	centers := l.Floor.Centers()
	models := make([]mgl32.Mat4, len(centers))
	for i, c := range centers {
		models[i] = mgl32.Translate3D(c.X(), c.Y(), c.Z())
	}
	return models
}

// CandidateModel returns the model matrix of a candidate's sphere mesh, a
// unit-diameter sphere scaled to the candidate's dimensions.
func CandidateModel(c selection.Candidate) mgl32.Mat4 {
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).
		Mul4(mgl32.Scale3D(c.Dimensions.X(), c.Dimensions.Y(), c.Dimensions.Z()))
}

// LanternModel places a lantern at pos, turned about Y by spin degrees per
// second of elapsed time.
func LanternModel(pos mgl32.Vec3, elapsed, spin float32) mgl32.Mat4 {
	angle := mgl32.DegToRad(elapsed * spin)
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.HomogRotate3DY(angle))
}
