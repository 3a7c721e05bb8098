package sim

import "github.com/Faultbox/heliosim/pkg/math"

// Lighting holds the light intensities for normal and eclipsed frames.
type Lighting struct {
	SunNormal    float32
	SunEclipsed  float32
	MoonNormal   float32
	MoonEclipsed float32
}

// DefaultLighting dims the Sun hard during a solar eclipse and brightens the
// Moon's fill light a little.
func DefaultLighting() Lighting {
	return Lighting{
		SunNormal:    1.2,
		SunEclipsed:  0.05,
		MoonNormal:   0.15,
		MoonEclipsed: 0.25,
	}
}

// Intensities returns the sun and moon light intensities for a frame.
// The Moon's fill light follows the solar flag, not the lunar one.
func (l Lighting) Intensities(e Eclipse) (sun, moon float32) {
	if e.Solar {
		return l.SunEclipsed, l.MoonEclipsed
	}
	return l.SunNormal, l.MoonNormal
}

// Frame is everything the renderer needs for one frame.
type Frame struct {
	Time      float32
	TimeScale float32
	Seek      SeekMode

	Positions Positions
	Eclipse   Eclipse

	SunIntensity  float32
	MoonIntensity float32

	Models [BodyCount]math.Mat4

	Event Event
}

// ModelMatrix places a body at pos on the orbital plane, spun by angle about its own Y axis.
func ModelMatrix(pos math.Vec2, angle float32) math.Mat4 {
	m := math.Translate(pos.XZ(0))
	if angle != 0 {
		m = m.Mul(math.RotateY(angle))
	}
	return m
}
