// Package picking casts rays from the cursor into the scene and tests them
// against bounding spheres.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in world space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// CastPickRay converts a cursor position to a world-space pick ray.
// cursorX, cursorY are pixel coordinates with the origin at the top-left of
// the viewport. The ray starts at the camera position recovered from view.
func CastPickRay(cursorX, cursorY, viewportW, viewportH float32, projection, view mgl32.Mat4) Ray {
	ray, _ := castPickRay(cursorX, cursorY, viewportW, viewportH, projection, view)
	return ray
}

// Trace holds the intermediate vectors of one CastPickRay call.
type Trace struct {
	NDC   mgl32.Vec3
	Clip  mgl32.Vec4
	Eye   mgl32.Vec4
	World mgl32.Vec3
}

// CastPickRayTrace is CastPickRay that also returns every intermediate space,
// for ray logging.
func CastPickRayTrace(cursorX, cursorY, viewportW, viewportH float32, projection, view mgl32.Mat4) (Ray, Trace) {
	return castPickRay(cursorX, cursorY, viewportW, viewportH, projection, view)
}

func castPickRay(cursorX, cursorY, viewportW, viewportH float32, projection, view mgl32.Mat4) (Ray, Trace) {
	var tr Trace

	// Screen to NDC, flipping Y. z = -1 points into the screen.
	tr.NDC = mgl32.Vec3{
		2*cursorX/viewportW - 1,
		1 - 2*cursorY/viewportH,
		-1,
	}
	tr.Clip = tr.NDC.Vec4(1)

	// Only the direction survives the inverse projection.
	eye := projection.Inv().Mul4x1(tr.Clip)
	tr.Eye = mgl32.Vec4{eye.X(), eye.Y(), -1, 0}

	invView := view.Inv()
	tr.World = invView.Mul4x1(tr.Eye).Vec3().Normalize()

	return Ray{
		Origin:    invView.Col(3).Vec3(),
		Direction: tr.World,
	}, tr
}

// IntersectSphere tests the ray against a sphere.
// Returns the distance to the nearest non-negative root and whether the ray
// hits. A sphere whose centre lies behind the origin is always a miss, even if
// the origin is inside it.
func (r Ray) IntersectSphere(center mgl32.Vec3, radius float32) (t float32, hit bool) {
	l := center.Sub(r.Origin)
	tca := l.Dot(r.Direction)
	if tca < 0 {
		return 0, false
	}

	d2 := l.Dot(l) - tca*tca
	rad2 := radius * radius
	if d2 > rad2 {
		return 0, false
	}

	thc := float32(math.Sqrt(float64(rad2 - d2)))
	t0 := tca - thc
	t1 := tca + thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return 0, false
		}
	}
	return t0, true
}
