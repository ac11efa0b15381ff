// Package lighting provides the directional, point and spot lights of the
// demo scene and uploads them to the lit shader.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 4

// Uniforms receives light parameters. shader.Program implements it.
type Uniforms interface {
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
}

// Attenuation holds the constant, linear and quadratic falloff terms.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultAttenuation covers roughly 50 units.
var DefaultAttenuation = Attenuation{Constant: 1.0, Linear: 0.09, Quadratic: 0.032}

func (a Attenuation) upload(u Uniforms, prefix string) {
	u.SetFloat(prefix+"constant", a.Constant)
	u.SetFloat(prefix+"linear", a.Linear)
	u.SetFloat(prefix+"quadratic", a.Quadratic)
}

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position mgl32.Vec3 // World position
	Color    mgl32.Vec3 // RGB color (0-1 range)
	Attenuation
}

// Upload writes the light into pointLights[index].
func (l PointLight) Upload(u Uniforms, index int) {
	prefix := fmt.Sprintf("pointLights[%d].", index)
	u.SetVec3(prefix+"position", l.Position)
	u.SetVec3(prefix+"ambient", l.Color.Mul(0.05))
	u.SetVec3(prefix+"diffuse", l.Color.Mul(0.8))
	u.SetVec3(prefix+"specular", l.Color)
	l.Attenuation.upload(u, prefix)
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight adds a point light to the buffer.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	return true
}

// Upload writes every light and the light count.
func (b *PointLightBuffer) Upload(u Uniforms) {
	u.SetInt("pointLightCount", int32(len(b.Lights)))
	for i, l := range b.Lights {
		l.Upload(u, i)
	}
}
