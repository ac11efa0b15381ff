package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/stencilpick/internal/engine/outline"
)

// glState applies depth and stencil state to the GL context and remembers
// what it applied, so State never queries the driver.
type glState struct {
	cur   outline.State
	valid bool
}

// State returns the last applied state.
func (g *glState) State() outline.State {
	return g.cur
}

// SetState applies s, issuing only the calls whose values changed.
func (g *glState) SetState(s outline.State) {
	if !g.valid || s.DepthTest != g.cur.DepthTest {
		enable(gl.DEPTH_TEST, s.DepthTest)
	}
	if !g.valid || s.StencilTest != g.cur.StencilTest {
		enable(gl.STENCIL_TEST, s.StencilTest)
	}
	if !g.valid || s.StencilFunc != g.cur.StencilFunc || s.StencilRef != g.cur.StencilRef || s.StencilFuncMask != g.cur.StencilFuncMask {
		gl.StencilFunc(s.StencilFunc, s.StencilRef, s.StencilFuncMask)
	}
	if !g.valid || s.StencilFail != g.cur.StencilFail || s.StencilDepthFail != g.cur.StencilDepthFail || s.StencilPass != g.cur.StencilPass {
		gl.StencilOp(s.StencilFail, s.StencilDepthFail, s.StencilPass)
	}
	if !g.valid || s.StencilWriteMask != g.cur.StencilWriteMask {
		gl.StencilMask(s.StencilWriteMask)
	}
	g.cur = s
	g.valid = true
}

// invalidate forces the next SetState to issue every call, e.g. after code
// outside the tracker touched the context.
func (g *glState) invalidate() {
	g.valid = false
}

func enable(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
