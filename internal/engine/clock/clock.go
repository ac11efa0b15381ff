// Package clock tracks per-frame timing for the render loop.
package clock

import "time"

// Clock measures the time between frames and a once-per-second FPS average.
type Clock struct {
	start     time.Time
	last      time.Time
	delta     float32
	frames    int
	fps       float64
	fpsWindow time.Time
}

// New creates a clock whose first Tick measures from now.
func New(now time.Time) *Clock {
	return &Clock{
		start:     now,
		last:      now,
		fpsWindow: now,
	}
}

// Tick advances the clock to now and returns the delta time in seconds.
// A now earlier than the previous tick yields zero rather than a negative step.
func (c *Clock) Tick(now time.Time) float32 {
	dt := now.Sub(c.last)
	if dt < 0 {
		dt = 0
	}
	c.last = now
	c.delta = float32(dt.Seconds())

	c.frames++
	if window := now.Sub(c.fpsWindow); window >= time.Second {
		c.fps = float64(c.frames) / window.Seconds()
		c.frames = 0
		c.fpsWindow = now
	}
	return c.delta
}

// Delta returns the seconds between the last two ticks.
func (c *Clock) Delta() float32 {
	return c.delta
}

// Elapsed returns seconds since the clock was created, as of the last tick.
func (c *Clock) Elapsed() float32 {
	return float32(c.last.Sub(c.start).Seconds())
}

// FPS returns the frame rate averaged over the last full second.
func (c *Clock) FPS() float64 {
	return c.fps
}
