package sim

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/heliosim/pkg/math"
)

func newSim(t *testing.T) *Simulation {
	t.Helper()
	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New(DefaultConfig()) failed: %v", err)
	}
	return s
}

// runUntilEvent steps with a small dt until an event fires or the step budget runs out.
func runUntilEvent(s *Simulation, cmd Command) (Frame, bool) {
	f := s.Step(0.0005, cmd)
	for i := 0; i < 40000 && f.Event == EventNone; i++ {
		f = s.Step(0.0005)
	}
	return f, f.Event != EventNone
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero earth radius", func(c *Config) { c.Bodies[Earth].Radius = 0 }},
		{"negative moon orbit", func(c *Config) { c.Bodies[Moon].OrbitalRadius = -1 }},
		{"orbiting sun", func(c *Config) { c.Bodies[Sun].OrbitalRadius = 1 }},
		{"swapped bodies", func(c *Config) { c.Bodies[Earth], c.Bodies[Moon] = c.Bodies[Moon], c.Bodies[Earth] }},
		{"negative fast scale", func(c *Config) { c.Clock.FastScale = -5 }},
		{"zero tolerance", func(c *Config) { c.Tolerance = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Bodies[Sun].Radius = -2
	if _, err := New(cfg); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("bad radius error %v does not wrap ErrInvalidBody", err)
	}
}

func TestStepAdvancesScaledTime(t *testing.T) {
	s := newSim(t)

	f := s.Step(0.25)
	if f.Time != 0.25 || f.TimeScale != DefaultNormalScale {
		t.Errorf("first step: time %v scale %v", f.Time, f.TimeScale)
	}

	f = s.Step(0.25, CommandSeekSolar)
	if f.Time != 1.5 {
		t.Errorf("fast step: time %v, want 1.5", f.Time)
	}
	if f.Seek != SeekSolar {
		t.Errorf("seek = %v, want solar", f.Seek)
	}
}

func TestStepLightingAndModels(t *testing.T) {
	s := newSim(t)
	f := s.Step(0.1)

	if f.Eclipse.Solar || f.Eclipse.Lunar {
		t.Fatalf("unexpected eclipse at t=%v: %+v", f.Time, f.Eclipse)
	}
	if f.SunIntensity != 1.2 || f.MoonIntensity != 0.15 {
		t.Errorf("intensities = (%v, %v), want (1.2, 0.15)", f.SunIntensity, f.MoonIntensity)
	}

	if f.Models[Sun] != math.Identity() {
		t.Errorf("sun model = %v, want identity", f.Models[Sun])
	}

	earth := f.Models[Earth]
	if earth[12] != f.Positions.Earth.X || earth[13] != 0 || earth[14] != f.Positions.Earth.Y {
		t.Errorf("earth translation (%v, %v, %v), want %v on the plane", earth[12], earth[13], earth[14], f.Positions.Earth)
	}
	spin := float64(DefaultSpinRate * f.Time)
	if !near(earth[0], float32(gomath.Cos(spin)), 1e-6) || !near(earth[8], float32(gomath.Sin(spin)), 1e-6) {
		t.Errorf("earth rotation columns (%v, %v), want spin of %v rad", earth[0], earth[8], spin)
	}

	moon := f.Models[Moon]
	if moon != math.Translate(f.Positions.Moon.XZ(0)) {
		t.Errorf("moon model = %v, want a pure translation", moon)
	}
}

func TestSeekSolarFreezesAtEclipse(t *testing.T) {
	s := newSim(t)

	f, ok := runUntilEvent(s, CommandSeekSolar)
	if !ok {
		t.Fatal("no solar eclipse found")
	}
	if f.Event != EventSolarEclipse {
		t.Fatalf("event = %v, want solar eclipse", f.Event)
	}
	if !f.Eclipse.Solar || f.Eclipse.Cross >= AlignmentTolerance {
		t.Errorf("event frame eclipse = %+v", f.Eclipse)
	}
	if f.TimeScale != 0 || f.Seek != SeekNone {
		t.Errorf("after event: scale %v seek %v, want frozen and disarmed", f.TimeScale, f.Seek)
	}
	if f.SunIntensity != 0.05 || f.MoonIntensity != 0.25 {
		t.Errorf("eclipse intensities = (%v, %v), want (0.05, 0.25)", f.SunIntensity, f.MoonIntensity)
	}

	// First new moon: the Moon has lapped Earth's direction by half a turn.
	want := float32(gomath.Pi / (DefaultMoonRate - DefaultEarthRate))
	if !near(f.Time, want, 0.01) {
		t.Errorf("eclipse at t=%v, want about %v", f.Time, want)
	}

	// The frozen clock stays put and does not fire again.
	next := s.Step(1)
	if next.Time != f.Time || next.Event != EventNone {
		t.Errorf("frozen step: time %v event %v", next.Time, next.Event)
	}
	if !next.Eclipse.Solar || next.SunIntensity != 0.05 {
		t.Error("frozen frame should still show the eclipse")
	}
}

func TestSeekLunarFreezesAtEclipse(t *testing.T) {
	s := newSim(t)

	// t=0 is a full moon, move past it first.
	s.Step(0.5)

	f, ok := runUntilEvent(s, CommandSeekLunar)
	if !ok {
		t.Fatal("no lunar eclipse found")
	}
	if f.Event != EventLunarEclipse || !f.Eclipse.Lunar {
		t.Fatalf("event %v eclipse %+v, want lunar", f.Event, f.Eclipse)
	}
	if f.SunIntensity != 1.2 {
		t.Errorf("sun intensity during lunar eclipse = %v, want 1.2", f.SunIntensity)
	}

	want := float32(2 * gomath.Pi / (DefaultMoonRate - DefaultEarthRate))
	if !near(f.Time, want, 0.01) {
		t.Errorf("eclipse at t=%v, want about %v", f.Time, want)
	}
}

func TestSeekIgnoresOtherEclipseKind(t *testing.T) {
	s := newSim(t)

	// Seeking lunar passes the first solar eclipse without stopping.
	s.Step(0.5)
	f, ok := runUntilEvent(s, CommandSeekLunar)
	if !ok || f.Event != EventLunarEclipse {
		t.Fatalf("got event %v, want lunar", f.Event)
	}
	if f.Time < float32(gomath.Pi/(DefaultMoonRate-DefaultEarthRate)) {
		t.Errorf("stopped at t=%v, before the solar eclipse had passed", f.Time)
	}
}

func TestResumeAfterFreeze(t *testing.T) {
	s := newSim(t)
	f, _ := runUntilEvent(s, CommandSeekSolar)

	next := s.Step(0.5, CommandResume)
	if next.TimeScale != DefaultNormalScale {
		t.Errorf("scale after resume = %v, want %v", next.TimeScale, DefaultNormalScale)
	}
	if !near(next.Time, f.Time+0.5, 1e-5) {
		t.Errorf("time after resume = %v, want %v", next.Time, f.Time+0.5)
	}
}

func TestModelMatrix(t *testing.T) {
	if ModelMatrix(math.Vec2{}, 0) != math.Identity() {
		t.Error("origin without spin should be identity")
	}
	m := ModelMatrix(math.Vec2{X: 3, Y: 4}, 0)
	if m != math.Translate(math.Vec3{X: 3, Z: 4}) {
		t.Errorf("ModelMatrix = %v, want translation to (3, 0, 4)", m)
	}
}
