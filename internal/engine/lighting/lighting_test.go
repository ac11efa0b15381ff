package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeUniforms struct {
	vec3s  map[string]mgl32.Vec3
	floats map[string]float32
	ints   map[string]int32
}

func newFakeUniforms() *fakeUniforms {
	return &fakeUniforms{
		vec3s:  map[string]mgl32.Vec3{},
		floats: map[string]float32{},
		ints:   map[string]int32{},
	}
}

func (f *fakeUniforms) SetVec3(name string, v mgl32.Vec3) { f.vec3s[name] = v }
func (f *fakeUniforms) SetFloat(name string, v float32)   { f.floats[name] = v }
func (f *fakeUniforms) SetInt(name string, v int32)       { f.ints[name] = v }

func TestPointLightBufferLimit(t *testing.T) {
	b := NewPointLightBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.AddLight(PointLight{}) {
			t.Fatalf("AddLight %d rejected below the limit", i)
		}
	}
	if b.AddLight(PointLight{}) {
		t.Error("AddLight should reject lights past MaxPointLights")
	}
	b.Clear()
	if len(b.Lights) != 0 {
		t.Errorf("Clear left %d lights", len(b.Lights))
	}
}

func TestRigUpload(t *testing.T) {
	r := NewRig()
	u := newFakeUniforms()
	r.Upload(u)

	if u.ints["pointLightCount"] != 2 {
		t.Errorf("pointLightCount = %d, want 2", u.ints["pointLightCount"])
	}
	if got := u.vec3s["pointLights[1].position"]; got != (mgl32.Vec3{0, 5, -10}) {
		t.Errorf("second lamp at %v", got)
	}
	if got := u.floats["pointLights[0].linear"]; got != 0.09 {
		t.Errorf("pointLights[0].linear = %v, want 0.09", got)
	}
	if got := u.vec3s["dirLight.diffuse"]; got != (mgl32.Vec3{0.2, 0.2, 0.2}) {
		t.Errorf("dirLight.diffuse = %v", got)
	}

	wantCut := float32(math.Cos(12.5 * math.Pi / 180))
	if got := u.floats["spotlight.cutoff"]; math.Abs(float64(got-wantCut)) > 1e-6 {
		t.Errorf("spotlight.cutoff = %v, want %v", got, wantCut)
	}
	if u.floats["spotlight.outerCutoff"] >= u.floats["spotlight.cutoff"] {
		t.Error("outer cutoff cosine must be smaller than the inner one")
	}
}

func TestFlashlightToggle(t *testing.T) {
	r := NewRig()
	camPos := mgl32.Vec3{1, 2, 3}
	camFront := mgl32.Vec3{0, 0, -1}

	r.Update(0, camPos, camFront, false)
	u := newFakeUniforms()
	r.Upload(u)
	if u.vec3s["spotlight.diffuse"] != (mgl32.Vec3{}) {
		t.Errorf("switched-off flashlight uploads %v", u.vec3s["spotlight.diffuse"])
	}
	if u.vec3s["spotlight.position"] != camPos || u.vec3s["spotlight.direction"] != camFront {
		t.Error("flashlight should follow the camera")
	}

	r.Update(0, camPos, camFront, true)
	r.Upload(u)
	if u.vec3s["spotlight.diffuse"] != (mgl32.Vec3{0.8, 0.8, 0.8}) {
		t.Errorf("flashlight on uploads diffuse %v", u.vec3s["spotlight.diffuse"])
	}
}

func TestOrbitingLamp(t *testing.T) {
	r := NewRig()
	for _, elapsed := range []float32{0, 0.5, 2, 10} {
		r.Update(elapsed, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, false)
		p := r.Points.Lights[0].Position
		radius := math.Hypot(float64(p.X()), float64(p.Z()))
		if math.Abs(radius-OrbitRadius) > 1e-4 {
			t.Errorf("elapsed %v: orbit radius %v, want %v", elapsed, radius, OrbitRadius)
		}
	}
	if r.Points.Lights[1].Position != (mgl32.Vec3{0, 5, -10}) {
		t.Error("second lamp should stay put")
	}
}
