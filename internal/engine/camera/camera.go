// Package camera provides the free-fly camera used to explore the scene.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Pitch and zoom limits in degrees.
const (
	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// FlyCamera is a yaw/pitch camera that moves freely in world space.
type FlyCamera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	// Options
	Speed       float32 // units per second
	Sensitivity float32 // degrees per pixel of mouse motion
	Zoom        float32 // vertical field of view in degrees

	// Derived basis, kept in sync by updateVectors
	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// NewFlyCamera creates a camera at position looking down -Z.
func NewFlyCamera(position mgl32.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90,
		Pitch:       0,
		Speed:       2.5,
		Sensitivity: 0.1,
		Zoom:        45,
	}
	c.updateVectors()
	return c
}

// SetOrientation sets yaw and pitch in degrees, clamping pitch.
func (c *FlyCamera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = clamp(pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *FlyCamera) Right() mgl32.Vec3 { return c.right }

// Up returns the unit up vector of the camera.
func (c *FlyCamera) Up() mgl32.Vec3 { return c.up }

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// Projection returns a perspective projection using the current zoom.
func (c *FlyCamera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

// HandleMovement moves the camera in dir for dt seconds.
func (c *FlyCamera) HandleMovement(dir Direction, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// HandleLook updates yaw and pitch from a mouse motion delta in pixels.
// Positive dy moves the view up.
func (c *FlyCamera) HandleLook(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clamp(c.Pitch+dy*c.Sensitivity, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// HandleZoom narrows the field of view on positive wheel deltas.
func (c *FlyCamera) HandleZoom(delta float32) {
	c.Zoom = clamp(c.Zoom-delta, MinZoom, MaxZoom)
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
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
