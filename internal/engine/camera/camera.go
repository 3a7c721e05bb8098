// Package camera provides the free-fly camera used to view the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/heliosim/pkg/math"
)

// Movement is a keyboard movement direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// Default camera settings.
const (
	DefaultYaw          = -90.0
	DefaultPitch        = 0.0
	DefaultSpeed        = 5.0
	DefaultSensitivity  = 0.1
	DefaultStrafeFactor = 0.5
	DefaultFOV          = 45.0

	// MaxPitch keeps the view from flipping over the poles.
	MaxPitch = 89.0
)

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// FlyCamera moves freely through the scene, steered by yaw and pitch.
type FlyCamera struct {
	Position math.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	Speed        float32 // Units per second
	Sensitivity  float32 // Degrees per mouse pixel
	StrafeFactor float32 // Sideways speed relative to Speed
	FOV          float32 // Vertical field of view in degrees

	front math.Vec3
	right math.Vec3
	up    math.Vec3
}

// NewFlyCamera creates a camera at position looking down -Z.
func NewFlyCamera(position math.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:     position,
		Yaw:          DefaultYaw,
		Pitch:        DefaultPitch,
		Speed:        DefaultSpeed,
		Sensitivity:  DefaultSensitivity,
		StrafeFactor: DefaultStrafeFactor,
		FOV:          DefaultFOV,
	}
	c.updateVectors()
	return c
}

// SetOrientation sets yaw and pitch in degrees. Pitch is clamped.
func (c *FlyCamera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = clampPitch(pitch)
	c.updateVectors()
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() math.Vec3 {
	return c.front
}

// Right returns the unit vector to the camera's right.
func (c *FlyCamera) Right() math.Vec3 {
	return c.right
}

// Up returns the camera's unit up vector.
func (c *FlyCamera) Up() math.Vec3 {
	return c.up
}

// ProcessKeyboard moves the camera in dir for dt seconds.
// Strafing is slower than moving forward.
func (c *FlyCamera) ProcessKeyboard(dir Movement, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Scale(velocity * c.StrafeFactor))
	case Right:
		c.Position = c.Position.Add(c.right.Scale(velocity * c.StrafeFactor))
	}
}

// ProcessMouse turns the camera by a mouse delta in pixels.
// Positive dy moves the mouse down, which looks down.
func (c *FlyCamera) ProcessMouse(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clampPitch(c.Pitch - dy*c.Sensitivity)
	c.updateVectors()
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect, near, far float32) math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), aspect, near, far)
}

func (c *FlyCamera) updateVectors() {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)
	c.front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clampPitch(p float32) float32 {
	return min(max(p, -MaxPitch), MaxPitch)
}
