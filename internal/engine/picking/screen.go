package picking

import "github.com/go-gl/mathgl/mgl32"

// ProjectToScreen maps a world point to window coordinates.
// x, y use the GL convention with the origin at the bottom-left; depth is the
// window depth in [0, 1]. ok is false when the point is behind the camera.
func ProjectToScreen(p mgl32.Vec3, projection, view mgl32.Mat4, viewportW, viewportH int) (win mgl32.Vec3, ok bool) {
	clip := projection.Mul4(view).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec3{}, false
	}
	return mgl32.Project(p, view, projection, 0, 0, viewportW, viewportH), true
}

// UnprojectFromScreen maps window coordinates and depth back to world space.
func UnprojectFromScreen(win mgl32.Vec3, projection, view mgl32.Mat4, viewportW, viewportH int) (mgl32.Vec3, error) {
	return mgl32.UnProject(win, view, projection, 0, 0, viewportW, viewportH)
}

// LinearizeDepth converts a window depth in [0, 1] to a view-space distance
// for a perspective projection with the given clip planes.
func LinearizeDepth(depth, near, far float32) float32 {
	zNDC := 2*depth - 1
	return (2 * near * far) / (far + near - zNDC*(far-near))
}
