package lighting

import "github.com/go-gl/mathgl/mgl32"

// Directional is a light infinitely far away, like the sun.
type Directional struct {
	Direction mgl32.Vec3 // Direction the light travels
	Color     mgl32.Vec3
}

// Upload writes the light into dirLight.
func (d Directional) Upload(u Uniforms) {
	u.SetVec3("dirLight.direction", d.Direction)
	u.SetVec3("dirLight.ambient", d.Color.Mul(0.1))
	u.SetVec3("dirLight.diffuse", d.Color.Mul(0.2))
	u.SetVec3("dirLight.specular", d.Color.Mul(0.5))
}
