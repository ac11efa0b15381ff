package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewFlyCameraLooksDownNegativeZ(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 3})

	if !near(c.Front(), mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("Front() = %v, want (0,0,-1)", c.Front())
	}
	if !near(c.Right(), mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("Right() = %v, want (1,0,0)", c.Right())
	}
	if !near(c.Up(), mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("Up() = %v, want (0,1,0)", c.Up())
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 3})
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	if !matNear(c.ViewMatrix(), want, 1e-6) {
		t.Errorf("ViewMatrix() = %v, want %v", c.ViewMatrix(), want)
	}

	// Camera position is the translation of the inverse view.
	pos := c.ViewMatrix().Inv().Col(3).Vec3()
	if !near(pos, c.Position, 1e-5) {
		t.Errorf("inverse view translation = %v, want %v", pos, c.Position)
	}
}

func TestHandleMovement(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, 0.5}},
		{Backward, mgl32.Vec3{0, 0, 5.5}},
		{Left, mgl32.Vec3{-2.5, 0, 3}},
		{Right, mgl32.Vec3{2.5, 0, 3}},
		{Up, mgl32.Vec3{0, 2.5, 3}},
		{Down, mgl32.Vec3{0, -2.5, 3}},
	}

	for _, tt := range tests {
		c := NewFlyCamera(mgl32.Vec3{0, 0, 3})
		c.HandleMovement(tt.dir, 1)
		if !near(c.Position, tt.want, 1e-5) {
			t.Errorf("direction %d: position = %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestHandleLookClampsPitch(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.HandleLook(0, 5000)
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, MaxPitch)
	}
	c.HandleLook(0, -10000)
	if c.Pitch != -MaxPitch {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, -MaxPitch)
	}
}

func TestHandleLookTurnsRight(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	// 900 px at 0.1 deg/px is a quarter turn from -Z to +X.
	c.HandleLook(900, 0)
	if !near(c.Front(), mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Front() = %v, want (1,0,0)", c.Front())
	}
	if !mgl32.FloatEqualThreshold(c.Front().Len(), 1, 1e-6) {
		t.Errorf("Front() not unit: %v", c.Front().Len())
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.HandleZoom(10)
	if c.Zoom != 35 {
		t.Errorf("Zoom = %v, want 35", c.Zoom)
	}
	c.HandleZoom(100)
	if c.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MinZoom)
	}
	c.HandleZoom(-100)
	if c.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MaxZoom)
	}
}

func TestSetOrientation(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.SetOrientation(0, 120)
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, MaxPitch)
	}
	if c.Front().Y() <= 0.99 {
		t.Errorf("Front() = %v, expected nearly straight up", c.Front())
	}
}

func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
