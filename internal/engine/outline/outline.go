package outline

import "github.com/go-gl/mathgl/mgl32"

// Program is a bound shader that accepts a model matrix.
type Program interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
}

// Mesh is drawable geometry.
type Mesh interface {
	Draw()
}

// Target is one mesh draw.
type Target struct {
	Mesh  Mesh
	Model mgl32.Mat4
	// Flagged marks the target for outlining, because it is selected or
	// always outlined.
	Flagged bool
}

// Renderer draws targets, outlining the flagged ones.
type Renderer struct {
	Device  Device
	Primary Program
	Border  Program

	// Enabled is the global outline switch.
	Enabled bool
	// Scale is the uniform scale of the silhouette pass, e.g. 1.02.
	Scale float32
	// ReplaceOnDepthFail also marks fragments that fail the depth test, so the
	// hidden part of the mesh is excluded from the silhouette.
	ReplaceOnDepthFail bool
}

// Draw renders t with the primary program. When outlining applies, the same
// draw writes a stencil mask and a scaled copy is drawn with the border
// program where the mask is not set. Depth and stencil state on return equal
// the state on entry.
func (r *Renderer) Draw(t Target) {
	if !r.Enabled || !t.Flagged {
		r.drawPrimary(t)
		return
	}

	restore := r.enter()
	defer restore()

	st := r.Device.State()

	// Mask pass: every visible fragment of the normal draw writes 1.
	st.StencilTest = true
	st.StencilFunc, st.StencilRef, st.StencilFuncMask = Always, 1, 0xFF
	st.StencilFail, st.StencilDepthFail, st.StencilPass = Keep, Keep, Replace
	if r.ReplaceOnDepthFail {
		st.StencilDepthFail = Replace
	}
	st.StencilWriteMask = 0xFF
	r.Device.SetState(st)
	r.drawPrimary(t)

	// Silhouette pass: scaled copy wherever the mask is unset, ignoring depth.
	st.DepthTest = false
	st.StencilFunc = NotEqual
	st.StencilWriteMask = 0x00
	r.Device.SetState(st)

	r.Border.Use()
	r.Border.SetMat4("model", t.Model.Mul4(mgl32.Scale3D(r.Scale, r.Scale, r.Scale)))
	t.Mesh.Draw()
}

// enter saves the device state and returns a func that restores it and
// re-binds the primary program.
func (r *Renderer) enter() func() {
	saved := r.Device.State()
	return func() {
		r.Device.SetState(saved)
		r.Primary.Use()
	}
}

func (r *Renderer) drawPrimary(t Target) {
	r.Primary.Use()
	r.Primary.SetMat4("model", t.Model)
	t.Mesh.Draw()
}
