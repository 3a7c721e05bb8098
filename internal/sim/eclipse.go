package sim

import "github.com/Faultbox/heliosim/pkg/math"

// AlignmentTolerance is the largest cross product magnitude for which
// the Sun, Earth, and Moon count as lined up. It is tuned to the default scene scale.
const AlignmentTolerance = 0.05

// Eclipse is the alignment state for one frame.
type Eclipse struct {
	Solar bool    // Moon between Sun and Earth
	Lunar bool    // Earth between Sun and Moon
	Cross float32 // |(moon-earth) x (sun-earth)|, zero when collinear
}

// Aligned reports whether the bodies were within tolerance of a line.
func (e Eclipse) Aligned(tolerance float32) bool {
	return e.Cross < tolerance
}

// Detector evaluates eclipses with a configurable alignment tolerance.
type Detector struct {
	Tolerance float32
}

// Detect tests collinearity with a 2D cross product and then compares how far
// the Moon and Earth are from the Sun. Equal distances give neither eclipse.
// Distances are measured from sun rather than from the origin, so the result
// matches origin-based lengths for the usual scene and stays correct for a Sun
// placed anywhere else.
func (d Detector) Detect(sun, earth, moon math.Vec2) Eclipse {
	earthToMoon := moon.Sub(earth)
	earthToSun := sun.Sub(earth)

	cross := earthToMoon.Cross(earthToSun)
	if cross < 0 {
		cross = -cross
	}

	e := Eclipse{Cross: cross}
	if !e.Aligned(d.Tolerance) {
		return e
	}

	moonDist := moon.Distance(sun)
	earthDist := earth.Distance(sun)
	e.Solar = moonDist < earthDist
	e.Lunar = earthDist < moonDist
	return e
}

// Detect runs a Detector with AlignmentTolerance.
func Detect(sun, earth, moon math.Vec2) Eclipse {
	return Detector{Tolerance: AlignmentTolerance}.Detect(sun, earth, moon)
}
