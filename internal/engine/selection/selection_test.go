package selection

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/stencilpick/internal/engine/picking"
)

// byCenter is a fake intersector keyed by sphere centre.
type byCenter map[mgl32.Vec3]picking.Result

func (f byCenter) Test(_ picking.Ray, center mgl32.Vec3, _ float32) picking.Result {
	return f[center]
}

func scene() []Candidate {
	return []Candidate{
		{Name: "a", Position: mgl32.Vec3{3, 0, -12}, Dimensions: mgl32.Vec3{1, 1, 1}},
		{Name: "b", Position: mgl32.Vec3{-3, 0, -16}, Dimensions: mgl32.Vec3{1, 1, 1}},
		{Name: "c", Position: mgl32.Vec3{0, 0, -12}, Dimensions: mgl32.Vec3{2, 2, 2}},
	}
}

func TestRadius(t *testing.T) {
	c := Candidate{Dimensions: mgl32.Vec3{2, 3, 6}}
	if got := c.Radius(); got != 3.5 {
		t.Errorf("Radius() = %v, want 3.5", got)
	}
}

func TestUpdateMultipleSelections(t *testing.T) {
	cands := scene()
	in := byCenter{
		cands[0].Position: {Hit: true, Distance: 12},
		cands[2].Position: {Hit: true, Distance: 11},
	}

	tr := NewTracker(false)
	n := tr.Update(cands, picking.Ray{}, in, true)

	if n != 2 {
		t.Errorf("selected count = %d, want 2", n)
	}
	if !cands[0].Selected || cands[1].Selected || !cands[2].Selected {
		t.Errorf("unexpected flags %v %v %v", cands[0].Selected, cands[1].Selected, cands[2].Selected)
	}
}

func TestUpdateOverwritesFlags(t *testing.T) {
	cands := scene()
	cands[1].Selected = true

	tr := NewTracker(false)
	tr.Update(cands, picking.Ray{}, byCenter{}, true)

	for _, c := range cands {
		if c.Selected {
			t.Errorf("candidate %s should be cleared by a miss", c.Name)
		}
	}
}

func TestInactiveKeepsFlags(t *testing.T) {
	cands := scene()
	in := byCenter{cands[1].Position: {Hit: true}}

	tr := NewTracker(false)
	tr.Update(cands, picking.Ray{}, in, true)

	// Intersector would now miss everything, but picking is off.
	if n := tr.Update(cands, picking.Ray{}, byCenter{}, false); n != 1 {
		t.Errorf("inactive update changed selection count to %d", n)
	}
	if !cands[1].Selected {
		t.Error("selection should stay frozen while inactive")
	}
}

func TestClearOnRelease(t *testing.T) {
	cands := scene()
	in := byCenter{cands[0].Position: {Hit: true}}

	tr := NewTracker(true)
	tr.Update(cands, picking.Ray{}, in, true)
	if !cands[0].Selected {
		t.Fatal("expected selection while active")
	}

	if n := tr.Update(cands, picking.Ray{}, in, false); n != 0 {
		t.Errorf("expected selections cleared on release, %d remain", n)
	}

	// Flags set elsewhere survive later inactive frames.
	cands[2].Selected = true
	if n := tr.Update(cands, picking.Ray{}, in, false); n != 1 {
		t.Errorf("clear should only happen on the release edge, count = %d", n)
	}
}

func TestUpdateWithRealTester(t *testing.T) {
	cands := []Candidate{
		{Name: "ahead", Position: mgl32.Vec3{0, 0, -12}, Dimensions: mgl32.Vec3{1, 0, 0}},
		{Name: "aside", Position: mgl32.Vec3{3, 0, -12}, Dimensions: mgl32.Vec3{1, 1, 1}},
	}
	ray := picking.Ray{Origin: mgl32.Vec3{0, 0, 3}, Direction: mgl32.Vec3{0, 0, -1}}

	tr := NewTracker(false)
	if n := tr.Update(cands, ray, &picking.Tester{}, true); n != 1 {
		t.Fatalf("selected count = %d, want 1", n)
	}
	if !cands[0].Selected || cands[1].Selected {
		t.Errorf("expected only the sphere ahead selected, got %+v", cands)
	}
}

func TestActive(t *testing.T) {
	tests := []struct {
		pointer, button, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, tt := range tests {
		if got := Active(tt.pointer, tt.button); got != tt.want {
			t.Errorf("Active(%v, %v) = %v, want %v", tt.pointer, tt.button, got, tt.want)
		}
	}
}
