package picking

import "github.com/go-gl/mathgl/mgl32"

// DepthEpsilon is the window-depth slack allowed when the cursor pixel holds
// the candidate's own surface.
const DepthEpsilon = 1e-4

// DepthSampler reads one depth value from the last rendered frame.
// x, y are window coordinates with the origin at the bottom-left.
type DepthSampler interface {
	DepthAt(x, y int) float32
}

// Result is the outcome of one candidate test.
type Result struct {
	Hit      bool
	Distance float32
	// Occluded is set when the sphere was hit but the depth buffer shows
	// nearer geometry under the cursor.
	Occluded bool
}

// Tester combines the analytic sphere test with a depth-buffer occlusion check.
type Tester struct {
	Depth      DepthSampler
	Projection mgl32.Mat4
	View       mgl32.Mat4
	// Cursor position in pixels, origin top-left.
	CursorX, CursorY float32
	Width, Height    int
}

// Test reports whether ray selects the sphere at center.
//
// The intersection point is projected to window space and its depth is
// compared with the depth stored under the cursor. The hit stands only if
// nothing nearer than the intersection was rasterized at the cursor. The
// read comes from the previous frame, so a moving camera can be one frame
// behind.
func (t *Tester) Test(ray Ray, center mgl32.Vec3, radius float32) Result {
	dist, ok := ray.IntersectSphere(center, radius)
	if !ok {
		return Result{}
	}
	if t.Depth == nil {
		return Result{Hit: true, Distance: dist}
	}

	win, ok := ProjectToScreen(ray.At(dist), t.Projection, t.View, t.Width, t.Height)
	if !ok {
		return Result{}
	}

	atCursor := t.Depth.DepthAt(int(t.CursorX), int(float32(t.Height)-t.CursorY))
	if atCursor >= win.Z()-DepthEpsilon {
		return Result{Hit: true, Distance: dist}
	}
	return Result{Distance: dist, Occluded: true}
}
