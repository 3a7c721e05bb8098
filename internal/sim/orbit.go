package sim

import "github.com/Faultbox/heliosim/pkg/math"

// Default orbital parameters, in scene units and radians per simulated second.
const (
	DefaultEarthDistance = 8.0
	DefaultMoonDistance  = 0.9
	DefaultEarthRate     = 0.5
	DefaultMoonRate      = 2.2
	DefaultSpinRate      = 2.0
)

// Orbits holds the two circular orbits. All motion happens in the XZ plane;
// Vec2.X is world X and Vec2.Y is world Z.
type Orbits struct {
	EarthDistance float32
	MoonDistance  float32
	EarthRate     float32
	MoonRate      float32
}

// DefaultOrbits returns the stock orbits.
func DefaultOrbits() Orbits {
	return Orbits{
		EarthDistance: DefaultEarthDistance,
		MoonDistance:  DefaultMoonDistance,
		EarthRate:     DefaultEarthRate,
		MoonRate:      DefaultMoonRate,
	}
}

// OrbitsFor reads the orbits from the Earth and Moon bodies.
func OrbitsFor(bodies [BodyCount]Body) Orbits {
	return Orbits{
		EarthDistance: bodies[Earth].OrbitalRadius,
		MoonDistance:  bodies[Moon].OrbitalRadius,
		EarthRate:     bodies[Earth].AngularSpeed,
		MoonRate:      bodies[Moon].AngularSpeed,
	}
}

// Positions are the body centers on the orbital plane.
type Positions struct {
	Sun, Earth, Moon math.Vec2
}

// Of returns the position of the given body.
func (p Positions) Of(kind BodyKind) math.Vec2 {
	switch kind {
	case Earth:
		return p.Earth
	case Moon:
		return p.Moon
	default:
		return p.Sun
	}
}

// World lifts the positions into 3D world space at y = 0, in Sun, Earth, Moon order.
func (p Positions) World() [BodyCount]math.Vec3 {
	return [BodyCount]math.Vec3{p.Sun.XZ(0), p.Earth.XZ(0), p.Moon.XZ(0)}
}

// PositionAt returns where the bodies are at simulated time t.
// The Moon circles Earth's position at t, so its path around the Sun is an epicycle.
func (o Orbits) PositionAt(t float32) Positions {
	earth := math.Polar(o.EarthDistance, t*o.EarthRate)
	return Positions{
		Earth: earth,
		Moon:  earth.Add(math.Polar(o.MoonDistance, t*o.MoonRate)),
	}
}
