package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	testW = 1600
	testH = 900
)

func testCamera() (projection, view mgl32.Mat4) {
	projection = mgl32.Perspective(mgl32.DegToRad(45), float32(testW)/float32(testH), 0.1, 100)
	view = mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	return projection, view
}

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

func TestIntersectSphereScenario(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 3}, Direction: mgl32.Vec3{0, 0, -1}}
	center := mgl32.Vec3{0, 0, -12}

	dist, hit := ray.IntersectSphere(center, 0.5)
	if !hit {
		t.Fatal("expected hit straight down -Z")
	}
	// |origin - center| = 15, minus the radius.
	if !mgl32.FloatEqualThreshold(dist, 14.5, 1e-4) {
		t.Errorf("distance = %v, want 14.5", dist)
	}

	sideways := Ray{Origin: ray.Origin, Direction: mgl32.Vec3{1, 0, 0}}
	if _, hit := sideways.IntersectSphere(center, 0.5); hit {
		t.Error("expected miss for ray along +X")
	}

	away := Ray{Origin: ray.Origin, Direction: mgl32.Vec3{0, 0, 1}}
	if _, hit := away.IntersectSphere(center, 0.5); hit {
		t.Error("expected miss for sphere behind origin")
	}
}

func TestIntersectSphereFromInside(t *testing.T) {
	center := mgl32.Vec3{0, 0, -5}
	const radius = 2

	tests := []struct {
		name   string
		origin mgl32.Vec3
	}{
		{"near centre", mgl32.Vec3{0, 0, -4.5}},
		{"at centre", mgl32.Vec3{0, 0, -5}},
		{"off axis", mgl32.Vec3{0.3, -0.4, -3.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := Ray{Origin: tt.origin, Direction: center.Sub(tt.origin)}
			if ray.Direction.Len() == 0 {
				ray.Direction = mgl32.Vec3{0, 0, -1}
			}
			ray.Direction = ray.Direction.Normalize()

			dist, hit := ray.IntersectSphere(center, radius)
			if !hit {
				t.Fatal("expected hit from inside the sphere")
			}
			if dist < 0 {
				t.Errorf("distance %v must be non-negative", dist)
			}
			onSurface := ray.At(dist).Sub(center).Len()
			if math.Abs(float64(onSurface-radius)) > 1e-4 {
				t.Errorf("hit point is %v from centre, want %v", onSurface, radius)
			}
		})
	}
}

func TestIntersectSphereMissOutsideSilhouette(t *testing.T) {
	projection, view := testCamera()
	center := mgl32.Vec3{0, 0, -12}

	cursors := [][2]float32{
		{0, 0},
		{testW - 1, testH - 1},
		{testW / 2, 0},
		{testW/2 + 80, testH / 2},
		{testW / 2, testH/2 - 80},
	}
	for _, c := range cursors {
		ray := CastPickRay(c[0], c[1], testW, testH, projection, view)
		if _, hit := ray.IntersectSphere(center, 0.5); hit {
			t.Errorf("cursor %v: expected miss", c)
		}
	}
}

func TestCastPickRayCentre(t *testing.T) {
	projection, view := testCamera()

	ray := CastPickRay(testW/2, testH/2, testW, testH, projection, view)

	if !vecNear(ray.Origin, mgl32.Vec3{0, 0, 3}, 1e-5) {
		t.Errorf("origin = %v, want camera position (0,0,3)", ray.Origin)
	}
	if !vecNear(ray.Direction, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("direction = %v, want (0,0,-1)", ray.Direction)
	}

	dist, hit := ray.IntersectSphere(mgl32.Vec3{0, 0, -12}, 0.5)
	if !hit || !mgl32.FloatEqualThreshold(dist, 14.5, 1e-3) {
		t.Errorf("centre cast: hit=%v dist=%v, want hit at 14.5", hit, dist)
	}
}

func TestCastPickRayIsUnit(t *testing.T) {
	projection, view := testCamera()
	for _, c := range [][2]float32{{0, 0}, {123, 456}, {testW, testH}, {testW / 3, testH / 4}} {
		ray := CastPickRay(c[0], c[1], testW, testH, projection, view)
		if !mgl32.FloatEqualThreshold(ray.Direction.Len(), 1, 1e-5) {
			t.Errorf("cursor %v: |direction| = %v, want 1", c, ray.Direction.Len())
		}
	}
}

func TestCastPickRayTraceSpaces(t *testing.T) {
	projection, view := testCamera()

	ray, tr := CastPickRayTrace(0, 0, testW, testH, projection, view)

	if tr.NDC != (mgl32.Vec3{-1, 1, -1}) {
		t.Errorf("top-left NDC = %v, want (-1,1,-1)", tr.NDC)
	}
	if tr.Eye.Z() != -1 || tr.Eye.W() != 0 {
		t.Errorf("eye vector = %v, want z=-1 w=0", tr.Eye)
	}
	if ray.Direction != tr.World {
		t.Errorf("ray direction %v differs from traced world vector %v", ray.Direction, tr.World)
	}
	if ray.Direction.X() >= 0 || ray.Direction.Y() <= 0 {
		t.Errorf("top-left ray should point left and up, got %v", ray.Direction)
	}
}

func TestCastPickRayRotatedCamera(t *testing.T) {
	projection := mgl32.Perspective(mgl32.DegToRad(45), float32(testW)/float32(testH), 0.1, 100)
	eye := mgl32.Vec3{4, 2, -1}
	target := mgl32.Vec3{-3, 0, -16}
	view := mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})

	ray := CastPickRay(testW/2, testH/2, testW, testH, projection, view)
	want := target.Sub(eye).Normalize()

	if !vecNear(ray.Origin, eye, 1e-4) {
		t.Errorf("origin = %v, want %v", ray.Origin, eye)
	}
	if !vecNear(ray.Direction, want, 1e-4) {
		t.Errorf("direction = %v, want %v", ray.Direction, want)
	}
	if _, hit := ray.IntersectSphere(target, 0.5); !hit {
		t.Error("centre ray should hit the looked-at sphere")
	}
}
