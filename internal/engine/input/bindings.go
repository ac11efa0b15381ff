package input

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/stencilpick/internal/engine/controls"
)

// Binding is a keyboard key or a mouse button. Mouse is zero for keys.
type Binding struct {
	Scancode sdl.Scancode
	Mouse    uint8
}

// Bindings maps logical actions to physical inputs.
type Bindings map[controls.Action]Binding

var mouseNames = map[string]uint8{
	"mouse_left":   sdl.BUTTON_LEFT,
	"mouse_middle": sdl.BUTTON_MIDDLE,
	"mouse_right":  sdl.BUTTON_RIGHT,
}

// DefaultBindings returns the built-in layout.
func DefaultBindings() Bindings {
	key := func(sc sdl.Scancode) Binding { return Binding{Scancode: sc} }
	return Bindings{
		controls.MoveForward:      key(sdl.SCANCODE_W),
		controls.MoveBackward:     key(sdl.SCANCODE_S),
		controls.MoveLeft:         key(sdl.SCANCODE_A),
		controls.MoveRight:        key(sdl.SCANCODE_D),
		controls.MoveUp:           key(sdl.SCANCODE_SPACE),
		controls.MoveDown:         key(sdl.SCANCODE_LCTRL),
		controls.Sprint:           key(sdl.SCANCODE_LSHIFT),
		controls.ToggleCursor:     key(sdl.SCANCODE_Q),
		controls.ToggleFlashlight: key(sdl.SCANCODE_F),
		controls.CaptureLine:      key(sdl.SCANCODE_J),
		controls.ClearLines:       key(sdl.SCANCODE_C),
		controls.ToggleOutline:    key(sdl.SCANCODE_E),
		controls.ToggleBorderMode: key(sdl.SCANCODE_B),
		controls.SpeedUp:          key(sdl.SCANCODE_EQUALS),
		controls.SpeedDown:        key(sdl.SCANCODE_MINUS),
		controls.Screenshot:       key(sdl.SCANCODE_F12),
		controls.Quit:             key(sdl.SCANCODE_ESCAPE),
		controls.Pick:             {Mouse: sdl.BUTTON_LEFT},
	}
}

// ParseBinding resolves an SDL key name such as "Left Shift" or "J", or one
// of mouse_left, mouse_middle, mouse_right.
func ParseBinding(name string) (Binding, error) {
	if b, ok := mouseNames[strings.ToLower(name)]; ok {
		return Binding{Mouse: b}, nil
	}
	sc := sdl.GetScancodeFromName(name)
	if sc == sdl.SCANCODE_UNKNOWN {
		return Binding{}, fmt.Errorf("unknown key %q", name)
	}
	return Binding{Scancode: sc}, nil
}

// Override replaces bindings from a map of action name to key name, as found
// in the config file.
func (b Bindings) Override(names map[string]string) error {
	for actionName, keyName := range names {
		action, err := controls.ParseAction(actionName)
		if err != nil {
			return fmt.Errorf("binding %s: %w", actionName, err)
		}
		binding, err := ParseBinding(keyName)
		if err != nil {
			return fmt.Errorf("binding %s: %w", actionName, err)
		}
		b[action] = binding
	}
	return nil
}

// Conflicts returns pairs of actions that share a key or button, in action
// order.
func (b Bindings) Conflicts() [][2]controls.Action {
	var out [][2]controls.Action
	seen := make(map[Binding]controls.Action, len(b))
	for _, a := range controls.Actions() {
		binding, ok := b[a]
		if !ok {
			continue
		}
		if prev, dup := seen[binding]; dup {
			out = append(out, [2]controls.Action{prev, a})
			continue
		}
		seen[binding] = a
	}
	return out
}
