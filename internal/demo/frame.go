package demo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/stencilpick/internal/engine/camera"
	"github.com/Faultbox/stencilpick/internal/engine/controls"
	"github.com/Faultbox/stencilpick/internal/engine/picking"
	"github.com/Faultbox/stencilpick/internal/engine/selection"
)

// FrameContext carries one frame's state from update to render.
type FrameContext struct {
	Delta   float32
	Elapsed float32

	// Drawable size and cursor in pixels, cursor origin top-left.
	Width, Height    int
	CursorX, CursorY float32

	Projection mgl32.Mat4
	View       mgl32.Mat4

	// Picking is set while the pick button is held in pointer mode.
	Picking  bool
	Requests controls.Requests

	// Resized is set when the framebuffer was reallocated this frame. Its
	// depth attachment holds nothing until the next draw.
	Resized bool
}

// Aspect returns the drawable aspect ratio.
func (fc *FrameContext) Aspect() float32 {
	if fc.Height == 0 {
		return 1
	}
	return float32(fc.Width) / float32(fc.Height)
}

var moveBindings = []struct {
	action controls.Action
	dir    camera.Direction
}{
	{controls.MoveForward, camera.Forward},
	{controls.MoveBackward, camera.Backward},
	{controls.MoveLeft, camera.Left},
	{controls.MoveRight, camera.Right},
	{controls.MoveUp, camera.Up},
	{controls.MoveDown, camera.Down},
}

// moveCamera applies every held movement action for dt seconds.
func moveCamera(cam *camera.FlyCamera, m *controls.Machine, dt float32) {
	for _, b := range moveBindings {
		if m.Down(b.action) {
			cam.HandleMovement(b.dir, dt)
		}
	}
}

// updateSelection re-evaluates the candidates against ray. On a resized
// frame the depth buffer is empty, so the flags keep their last value.
func updateSelection(tr *selection.Tracker, fc *FrameContext, candidates []selection.Candidate, ray picking.Ray, in selection.Intersector) {
	if fc.Resized {
		return
	}
	tr.Update(candidates, ray, in, fc.Picking)
}

// toPixels converts a position in screen coordinates to drawable pixels.
func toPixels(x, y, scaleX, scaleY float32) (float32, float32) {
	return x * scaleX, y * scaleY
}

// frameTitle is the window title for the current frame rate and switches.
func frameTitle(fps float64, t controls.Toggles) string {
	mode := "look"
	if t.PointerMode {
		mode = "pointer"
	}
	return fmt.Sprintf("%s | %.0f fps | %s | speed x%.0f", Title, fps, mode, t.SpeedMult)
}
