// Package selection tracks which scene candidates the pick ray currently selects.
package selection

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/stencilpick/internal/engine/picking"
	"github.com/Faultbox/stencilpick/internal/logger"
)

// Candidate is a pickable object approximated by a bounding sphere.
type Candidate struct {
	Name       string
	Position   mgl32.Vec3
	Dimensions mgl32.Vec3
	Selected   bool
}

// Radius returns the bounding sphere radius, half the diagonal of Dimensions.
func (c *Candidate) Radius() float32 {
	return c.Dimensions.Len() / 2
}

// Intersector decides whether a ray selects a sphere.
// picking.Tester implements it.
type Intersector interface {
	Test(ray picking.Ray, center mgl32.Vec3, radius float32) picking.Result
}

// Tracker re-evaluates selection flags while picking is active.
type Tracker struct {
	// ClearOnRelease drops every selection the first frame picking goes
	// inactive. When false, flags keep their last value.
	ClearOnRelease bool

	wasActive bool
	log       *zap.Logger
}

// NewTracker creates a selection tracker.
func NewTracker(clearOnRelease bool) *Tracker {
	return &Tracker{
		ClearOnRelease: clearOnRelease,
		log:            logger.Named("selection"),
	}
}

// Update overwrites every candidate's Selected flag from its own test result
// when active is true. Candidates are tested independently, so several can be
// selected at once. Returns the number of selected candidates.
func (t *Tracker) Update(candidates []Candidate, ray picking.Ray, in Intersector, active bool) int {
	defer func() { t.wasActive = active }()

	if !active {
		if t.ClearOnRelease && t.wasActive {
			for i := range candidates {
				candidates[i].Selected = false
			}
		}
		return countSelected(candidates)
	}

	for i := range candidates {
		c := &candidates[i]
		res := in.Test(ray, c.Position, c.Radius())
		if res.Hit != c.Selected {
			t.log.Debug("selection changed",
				zap.String("candidate", c.Name),
				zap.Bool("selected", res.Hit),
				zap.Float32("distance", res.Distance),
				zap.Bool("occluded", res.Occluded))
		}
		c.Selected = res.Hit
	}
	return countSelected(candidates)
}

func countSelected(candidates []Candidate) int {
	n := 0
	for i := range candidates {
		if candidates[i].Selected {
			n++
		}
	}
	return n
}

// Active reports whether picking runs this frame: the cursor is free and the
// pick button is held.
func Active(pointerMode, buttonDown bool) bool {
	return pointerMode && buttonDown
}
