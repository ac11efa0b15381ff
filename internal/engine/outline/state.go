// Package outline draws selected meshes with a stencil-masked silhouette.
package outline

// Comparison functions and stencil ops. Values match the OpenGL enums so a
// Device can pass them through unchanged.
const (
	Never    uint32 = 0x0200
	Less     uint32 = 0x0201
	Equal    uint32 = 0x0202
	LEqual   uint32 = 0x0203
	Greater  uint32 = 0x0204
	NotEqual uint32 = 0x0205
	GEqual   uint32 = 0x0206
	Always   uint32 = 0x0207

	Keep    uint32 = 0x1E00
	Replace uint32 = 0x1E01
)

// State is the depth and stencil state the outline passes touch.
type State struct {
	DepthTest   bool
	StencilTest bool

	StencilFunc     uint32
	StencilRef      int32
	StencilFuncMask uint32

	StencilFail      uint32
	StencilDepthFail uint32
	StencilPass      uint32

	StencilWriteMask uint32
}

// Baseline is the state ordinary draws run with: depth testing on, stencil
// testing on but never written.
func Baseline() State {
	return State{
		DepthTest:        true,
		StencilTest:      true,
		StencilFunc:      Always,
		StencilRef:       1,
		StencilFuncMask:  0xFF,
		StencilFail:      Keep,
		StencilDepthFail: Keep,
		StencilPass:      Replace,
		StencilWriteMask: 0x00,
	}
}

// Clearing is the state required before clearing the stencil buffer, which
// honours the write mask.
func Clearing() State {
	s := Baseline()
	s.StencilWriteMask = 0xFF
	return s
}

// Device reads and applies depth and stencil state.
type Device interface {
	State() State
	SetState(State)
}
