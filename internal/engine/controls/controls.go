// Package controls turns raw key and button levels into logical actions.
//
// Every action moves through Released -> Pressed -> Held on each poll while
// its key stays down, and back to Released when it goes up. Toggles fire only
// on the Released -> Pressed edge, so holding a key never repeats them.
package controls

import "fmt"

// Action is a logical input the demo reacts to.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Sprint
	ToggleCursor
	ToggleFlashlight
	CaptureLine
	ClearLines
	ToggleOutline
	ToggleBorderMode
	SpeedUp
	SpeedDown
	Screenshot
	Quit
	Pick

	actionCount
)

var actionNames = [actionCount]string{
	MoveForward:      "move_forward",
	MoveBackward:     "move_backward",
	MoveLeft:         "move_left",
	MoveRight:        "move_right",
	MoveUp:           "move_up",
	MoveDown:         "move_down",
	Sprint:           "sprint",
	ToggleCursor:     "toggle_cursor",
	ToggleFlashlight: "toggle_flashlight",
	CaptureLine:      "capture_line",
	ClearLines:       "clear_lines",
	ToggleOutline:    "toggle_outline",
	ToggleBorderMode: "toggle_border_mode",
	SpeedUp:          "speed_up",
	SpeedDown:        "speed_down",
	Screenshot:       "screenshot",
	Quit:             "quit",
	Pick:             "pick",
}

// String returns the config name of the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions returns every action in declaration order.
func Actions() []Action {
	all := make([]Action, actionCount)
	for i := range all {
		all[i] = Action(i)
	}
	return all
}

// ParseAction resolves a config name such as "capture_line".
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// State is the per-action edge state.
type State uint8

const (
	Released State = iota
	Pressed
	Held
)

func (s State) String() string {
	switch s {
	case Released:
		return "released"
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// next returns the state after a poll that saw the key down or up.
func (s State) next(down bool) State {
	if !down {
		return Released
	}
	if s == Released {
		return Pressed
	}
	return Held
}

// Machine holds the state of every action.
type Machine struct {
	states [actionCount]State
}

// NewMachine returns a machine with every action released.
func NewMachine() *Machine {
	return &Machine{}
}

// Update polls isDown once per action and advances its state.
func (m *Machine) Update(isDown func(Action) bool) {
	for i := range m.states {
		m.states[i] = m.states[i].next(isDown(Action(i)))
	}
}

// JustPressed reports the Released -> Pressed edge of this poll.
func (m *Machine) JustPressed(a Action) bool {
	return m.states[a] == Pressed
}

// Down reports whether a is pressed or held.
func (m *Machine) Down(a Action) bool {
	return m.states[a] != Released
}
