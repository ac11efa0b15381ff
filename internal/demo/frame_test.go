package demo

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/stencilpick/internal/engine/camera"
	"github.com/Faultbox/stencilpick/internal/engine/controls"
	"github.com/Faultbox/stencilpick/internal/engine/picking"
	"github.com/Faultbox/stencilpick/internal/engine/selection"
)

func held(actions ...controls.Action) func(controls.Action) bool {
	return func(a controls.Action) bool {
		for _, h := range actions {
			if h == a {
				return true
			}
		}
		return false
	}
}

func TestMoveCamera(t *testing.T) {
	tests := []struct {
		name string
		held []controls.Action
		want mgl32.Vec3
	}{
		{"idle", nil, mgl32.Vec3{0, 0, 3}},
		{"forward", []controls.Action{controls.MoveForward}, mgl32.Vec3{0, 0, 0.5}},
		{"forward and back cancel", []controls.Action{controls.MoveForward, controls.MoveBackward}, mgl32.Vec3{0, 0, 3}},
		{"up", []controls.Action{controls.MoveUp}, mgl32.Vec3{0, 2.5, 3}},
		{"right", []controls.Action{controls.MoveRight}, mgl32.Vec3{2.5, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := camera.NewFlyCamera(mgl32.Vec3{0, 0, 3})
			m := controls.NewMachine()
			m.Update(held(tt.held...))

			moveCamera(cam, m, 1)

			if cam.Position.Sub(tt.want).Len() > 1e-5 {
				t.Errorf("position = %v, want %v", cam.Position, tt.want)
			}
		})
	}
}

func TestFrameAspect(t *testing.T) {
	fc := FrameContext{Width: 1600, Height: 900}
	if got := fc.Aspect(); got != float32(1600)/900 {
		t.Errorf("Aspect() = %v", got)
	}
	if (&FrameContext{}).Aspect() != 1 {
		t.Error("zero height should give aspect 1")
	}
}

func TestToPixels(t *testing.T) {
	x, y := toPixels(400, 300, 2, 2)
	if x != 800 || y != 600 {
		t.Errorf("toPixels = (%v, %v), want (800, 600)", x, y)
	}
}

func TestFrameTitle(t *testing.T) {
	title := frameTitle(59.7, controls.Toggles{PointerMode: true, SpeedMult: 3})
	for _, want := range []string{"60 fps", "pointer", "x3"} {
		if !strings.Contains(title, want) {
			t.Errorf("title %q missing %q", title, want)
		}
	}
}

// countingTester hits every candidate and counts its calls.
type countingTester struct{ calls int }

func (c *countingTester) Test(picking.Ray, mgl32.Vec3, float32) picking.Result {
	c.calls++
	return picking.Result{Hit: true}
}

func TestUpdateSelectionSkipsResizedFrame(t *testing.T) {
	cands := []selection.Candidate{
		{Name: "a", Dimensions: mgl32.Vec3{1, 1, 1}},
		{Name: "b", Dimensions: mgl32.Vec3{1, 1, 1}, Selected: true},
	}
	tr := selection.NewTracker(true)
	in := &countingTester{}

	updateSelection(tr, &FrameContext{Picking: true, Resized: true}, cands, picking.Ray{}, in)
	if in.calls != 0 {
		t.Errorf("tested %d candidates on a resized frame", in.calls)
	}
	if cands[0].Selected || !cands[1].Selected {
		t.Errorf("flags changed on a resized frame: %+v", cands)
	}

	updateSelection(tr, &FrameContext{Picking: true}, cands, picking.Ray{}, in)
	if in.calls != len(cands) {
		t.Errorf("calls = %d, want %d", in.calls, len(cands))
	}
	if !cands[0].Selected || !cands[1].Selected {
		t.Errorf("expected both selected, got %+v", cands)
	}
}
