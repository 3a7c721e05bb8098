// Package sim implements the Sun-Earth-Moon simulation: circular orbits,
// eclipse detection, and the scaled simulation clock.
package sim

import (
	"errors"
	"fmt"

	"github.com/Faultbox/heliosim/pkg/math"
)

// BodyKind identifies one of the three simulated bodies.
type BodyKind int

const (
	Sun BodyKind = iota
	Earth
	Moon

	BodyCount
)

var bodyNames = [BodyCount]string{"sun", "earth", "moon"}

func (k BodyKind) String() string {
	if k < 0 || k >= BodyCount {
		return fmt.Sprintf("BodyKind(%d)", int(k))
	}
	return bodyNames[k]
}

// ErrInvalidBody is returned when a body cannot be simulated.
var ErrInvalidBody = errors.New("invalid body")

// Body describes a simulated body.
// The Sun sits at the origin, Earth orbits the Sun, and the Moon orbits Earth's
// current position.
type Body struct {
	Kind BodyKind
	Name string

	Radius        float32 // Sphere radius in scene units
	OrbitalRadius float32 // Distance to the body it orbits; 0 for the Sun
	AngularSpeed  float32 // Orbital angular speed in radians per simulated second
	SpinRate      float32 // Rotation about the body's own Y axis, radians per simulated second

	Color   math.Vec3 // Tint mixed with the texture
	Texture string    // Texture file path
}

// Validate checks that the body has a usable shape and orbit.
func (b Body) Validate() error {
	if !(b.Radius > 0) {
		return fmt.Errorf("%w: %s radius %v must be positive", ErrInvalidBody, b.Kind, b.Radius)
	}
	if b.OrbitalRadius < 0 {
		return fmt.Errorf("%w: %s orbital radius %v is negative", ErrInvalidBody, b.Kind, b.OrbitalRadius)
	}
	if b.Kind == Sun && b.OrbitalRadius != 0 {
		return fmt.Errorf("%w: the sun is fixed at the origin", ErrInvalidBody)
	}
	return nil
}

// DefaultBodies returns the stock Sun, Earth, and Moon.
func DefaultBodies() [BodyCount]Body {
	return [BodyCount]Body{
		Sun: {
			Kind:    Sun,
			Name:    "Sun",
			Radius:  2.0,
			Color:   math.Vec3{X: 1.0, Y: 0.95, Z: 0.5},
			Texture: "textures/sun.jpg",
		},
		Earth: {
			Kind:          Earth,
			Name:          "Earth",
			Radius:        0.5,
			OrbitalRadius: DefaultEarthDistance,
			AngularSpeed:  DefaultEarthRate,
			SpinRate:      DefaultSpinRate,
			Color:         math.Vec3{X: 0.05, Y: 0.2, Z: 0.1},
			Texture:       "textures/earth.jpg",
		},
		Moon: {
			Kind:          Moon,
			Name:          "Moon",
			Radius:        0.15,
			OrbitalRadius: DefaultMoonDistance,
			AngularSpeed:  DefaultMoonRate,
			Color:         math.Vec3{X: 0.25, Y: 0.25, Z: 0.25},
			Texture:       "textures/moon.jpg",
		},
	}
}
