package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/heliosim/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestNewFlyCameraLooksDownNegativeZ(t *testing.T) {
	c := NewFlyCamera(math.Vec3{X: 0, Y: 2, Z: 20})

	if !nearVec(c.Front(), math.Vec3{Z: -1}) {
		t.Errorf("front = %v, want (0,0,-1)", c.Front())
	}
	if !nearVec(c.Right(), math.Vec3{X: 1}) {
		t.Errorf("right = %v, want (1,0,0)", c.Right())
	}
	if !nearVec(c.Up(), math.Vec3{Y: 1}) {
		t.Errorf("up = %v, want (0,1,0)", c.Up())
	}
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Movement
		want math.Vec3
	}{
		{Forward, math.Vec3{Y: 2, Z: 15}},
		{Backward, math.Vec3{Y: 2, Z: 25}},
		{Left, math.Vec3{X: -2.5, Y: 2, Z: 20}},
		{Right, math.Vec3{X: 2.5, Y: 2, Z: 20}},
	}

	for _, tt := range tests {
		c := NewFlyCamera(math.Vec3{X: 0, Y: 2, Z: 20})
		c.ProcessKeyboard(tt.dir, 1)
		if !nearVec(c.Position, tt.want) {
			t.Errorf("dir %d: position = %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestProcessMouseClampsPitch(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})

	c.ProcessMouse(0, -10000)
	if c.Pitch != MaxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, MaxPitch)
	}
	c.ProcessMouse(0, 10000)
	if c.Pitch != -MaxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, -MaxPitch)
	}
}

func TestProcessMouseYaw(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})

	// 900 pixels at 0.1 degrees per pixel turns a quarter to the right.
	c.ProcessMouse(900, 0)
	if !near(c.Yaw, 0) {
		t.Errorf("yaw = %v, want 0", c.Yaw)
	}
	if !nearVec(c.Front(), math.Vec3{X: 1}) {
		t.Errorf("front = %v, want (1,0,0)", c.Front())
	}
}

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	c := NewFlyCamera(math.Vec3{X: 0, Y: 2, Z: 20})
	view := c.ViewMatrix()

	if got := view.TransformPoint(c.Position); !nearVec(got, math.Vec3{}) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	// The sun at the origin sits straight ahead, 20 units down -Z and 2 below.
	if got := view.TransformPoint(math.Vec3{}); !nearVec(got, math.Vec3{Y: -2, Z: -20}) {
		t.Errorf("origin in view space = %v, want (0,-2,-20)", got)
	}
}
