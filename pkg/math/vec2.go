// Package math provides float32 vector and matrix types for OpenGL rendering.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector. The simulation uses it for positions on the orbital (XZ) plane.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
// It is zero exactly when the two vectors are parallel.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Polar returns the point at the given radius and angle (radians) around the origin.
func Polar(radius, angle float32) Vec2 {
	return Vec2{radius * math32.Cos(angle), radius * math32.Sin(angle)}
}

// XZ lifts v onto the horizontal plane at height y.
func (v Vec2) XZ(y float32) Vec3 {
	return Vec3{v.X, y, v.Y}
}
