package controls

// Toggles holds the switches flipped by edge-triggered actions.
type Toggles struct {
	// PointerMode shows the OS cursor and suspends mouse look. Picking is only
	// possible in this mode.
	PointerMode bool
	Flashlight  bool
	Outline     bool
	BorderMode  bool
	// SpeedMult scales movement while Sprint is held.
	SpeedMult    float32
	SpeedMultMin float32
	SpeedMultMax float32
}

// Requests are one-shot commands raised during a poll.
type Requests struct {
	CaptureLine bool
	ClearLines  bool
	Screenshot  bool
	Quit        bool
	// CursorChanged is set when PointerMode flipped so the window can update
	// its cursor lock.
	CursorChanged bool
}

// Apply flips toggles for the actions that were just pressed and returns the
// one-shot requests of this poll.
func (t *Toggles) Apply(m *Machine) Requests {
	var r Requests

	if m.JustPressed(ToggleCursor) {
		t.PointerMode = !t.PointerMode
		r.CursorChanged = true
	}
	if m.JustPressed(ToggleFlashlight) {
		t.Flashlight = !t.Flashlight
	}
	if m.JustPressed(ToggleOutline) {
		t.Outline = !t.Outline
	}
	if m.JustPressed(ToggleBorderMode) {
		t.BorderMode = !t.BorderMode
	}
	if m.JustPressed(SpeedUp) {
		t.SpeedMult = clamp(t.SpeedMult+1, t.SpeedMultMin, t.SpeedMultMax)
	}
	if m.JustPressed(SpeedDown) {
		t.SpeedMult = clamp(t.SpeedMult-1, t.SpeedMultMin, t.SpeedMultMax)
	}

	r.CaptureLine = m.JustPressed(CaptureLine)
	r.ClearLines = m.JustPressed(ClearLines)
	r.Screenshot = m.JustPressed(Screenshot)
	r.Quit = m.JustPressed(Quit)
	return r
}

// MoveScale returns the factor applied to delta time for camera movement.
func (t *Toggles) MoveScale(m *Machine) float32 {
	if m.Down(Sprint) {
		return t.SpeedMult
	}
	return 1
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
