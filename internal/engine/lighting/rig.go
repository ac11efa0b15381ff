package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitRadius is the radius of the first point light's orbit around the origin.
const OrbitRadius = 3.5

// Rig is the full light setup of the scene.
type Rig struct {
	Sun        Directional
	Points     *PointLightBuffer
	Flashlight Spotlight
}

// NewRig returns the default scene lighting: a white sun, an orbiting lamp
// and a fixed lamp over the floor, and a switched-off flashlight.
func NewRig() *Rig {
	r := &Rig{
		Sun: Directional{
			Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
			Color:     mgl32.Vec3{1, 1, 1},
		},
		Points: NewPointLightBuffer(),
		Flashlight: Spotlight{
			Cutoff:      12.5,
			OuterCutoff: 17.5,
			Attenuation: DefaultAttenuation,
		},
	}
	r.Points.AddLight(PointLight{Position: mgl32.Vec3{0, 0, OrbitRadius}, Color: mgl32.Vec3{1, 1, 1}, Attenuation: DefaultAttenuation})
	r.Points.AddLight(PointLight{Position: mgl32.Vec3{0, 5, -10}, Color: mgl32.Vec3{1, 1, 1}, Attenuation: DefaultAttenuation})
	return r
}

// Update moves the orbiting lamp to its position at elapsed seconds and
// attaches the flashlight to the camera.
func (r *Rig) Update(elapsed float32, camPos, camFront mgl32.Vec3, flashlight bool) {
	if len(r.Points.Lights) > 0 {
		p := &r.Points.Lights[0].Position
		p[0] = float32(gomath.Sin(float64(elapsed))) * OrbitRadius
		p[2] = float32(gomath.Cos(float64(elapsed))) * OrbitRadius
	}
	r.Flashlight.Position = camPos
	r.Flashlight.Direction = camFront
	r.Flashlight.On = flashlight
}

// Upload writes every light of the rig.
func (r *Rig) Upload(u Uniforms) {
	r.Sun.Upload(u)
	r.Points.Upload(u)
	r.Flashlight.Upload(u)
}
