package config

import (
	"github.com/Faultbox/heliosim/internal/sim"
	"github.com/Faultbox/heliosim/pkg/math"
)

// SimConfig converts the simulation and lighting sections into a sim.Config.
func (c *Config) SimConfig() sim.Config {
	s := c.Simulation
	return sim.Config{
		Bodies: [sim.BodyCount]sim.Body{
			sim.Sun:   s.Sun.body(sim.Sun),
			sim.Earth: s.Earth.body(sim.Earth),
			sim.Moon:  s.Moon.body(sim.Moon),
		},
		Clock: sim.ClockConfig{
			NormalScale: s.NormalScale,
			FastScale:   s.FastScale,
		},
		Tolerance: s.AlignmentTolerance,
		Lighting: sim.Lighting{
			SunNormal:    c.Lighting.SunIntensity,
			SunEclipsed:  c.Lighting.SunEclipsedIntensity,
			MoonNormal:   c.Lighting.MoonIntensity,
			MoonEclipsed: c.Lighting.MoonEclipsedIntensity,
		},
	}
}

func (b BodyConfig) body(kind sim.BodyKind) sim.Body {
	return sim.Body{
		Kind:          kind,
		Name:          kind.String(),
		Radius:        b.Radius,
		OrbitalRadius: b.OrbitalRadius,
		AngularSpeed:  b.AngularSpeed,
		SpinRate:      b.SpinRate,
		Color:         Vec3(b.Color),
		Texture:       b.Texture,
	}
}

// Vec3 converts a config color or position triple.
func Vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
