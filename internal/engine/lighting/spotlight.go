package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Spotlight is a cone light, used as the camera flashlight.
type Spotlight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	// Cone angles in degrees, inner and outer edge of the soft falloff.
	Cutoff      float32
	OuterCutoff float32
	On          bool
	Attenuation
}

// Upload writes the light into spotlight. A switched-off light uploads black
// colours so the shader needs no branch.
func (s Spotlight) Upload(u Uniforms) {
	u.SetVec3("spotlight.position", s.Position)
	u.SetVec3("spotlight.direction", s.Direction)
	u.SetFloat("spotlight.cutoff", cosDeg(s.Cutoff))
	u.SetFloat("spotlight.outerCutoff", cosDeg(s.OuterCutoff))
	if s.On {
		u.SetVec3("spotlight.ambient", mgl32.Vec3{0.1, 0.1, 0.1})
		u.SetVec3("spotlight.diffuse", mgl32.Vec3{0.8, 0.8, 0.8})
		u.SetVec3("spotlight.specular", mgl32.Vec3{1, 1, 1})
	} else {
		u.SetVec3("spotlight.ambient", mgl32.Vec3{})
		u.SetVec3("spotlight.diffuse", mgl32.Vec3{})
		u.SetVec3("spotlight.specular", mgl32.Vec3{})
	}
	s.Attenuation.upload(u, "spotlight.")
}

func cosDeg(deg float32) float32 {
	return float32(gomath.Cos(float64(mgl32.DegToRad(deg))))
}
