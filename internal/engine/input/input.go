// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/stencilpick/internal/engine/controls"
)

// Input handles all input processing for one frame.
type Input struct {
	bindings Bindings

	keys    []uint8
	buttons uint32

	cursorX, cursorY int32
	mouseDX, mouseDY float32
	wheel            float32
	resized          bool
}

// New creates a new input handler with the given bindings.
func New(bindings Bindings) *Input {
	return &Input{bindings: bindings}
}

// Update polls SDL events and snapshots keyboard and mouse state.
// Returns true if the demo should quit.
func (i *Input) Update() bool {
	i.mouseDX, i.mouseDY, i.wheel = 0, 0, 0
	i.resized = false
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resized = true
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)

		case *sdl.MouseWheelEvent:
			i.wheel += float32(e.Y)
		}
	}

	i.keys = sdl.GetKeyboardState()
	i.cursorX, i.cursorY, i.buttons = sdl.GetMouseState()

	return quit
}

// IsDown reports whether the key or button bound to a is held.
// It matches the func signature expected by controls.Machine.Update.
func (i *Input) IsDown(a controls.Action) bool {
	b, ok := i.bindings[a]
	if !ok {
		return false
	}
	if b.Mouse != 0 {
		return i.buttons&buttonMask(b.Mouse) != 0
	}
	return int(b.Scancode) < len(i.keys) && i.keys[b.Scancode] != 0
}

// MouseDelta returns the accumulated relative mouse motion of this frame in
// screen coordinates. Positive dy is downward.
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.mouseDX, i.mouseDY
}

// Wheel returns the vertical wheel motion of this frame.
func (i *Input) Wheel() float32 {
	return i.wheel
}

// Cursor returns the cursor position in window screen coordinates, origin top-left.
func (i *Input) Cursor() (x, y float32) {
	return float32(i.cursorX), float32(i.cursorY)
}

// Resized reports whether the window size changed this frame.
func (i *Input) Resized() bool {
	return i.resized
}

func buttonMask(button uint8) uint32 {
	return 1 << (uint32(button) - 1)
}
