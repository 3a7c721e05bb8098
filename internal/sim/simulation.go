package sim

import "fmt"

// Config configures a Simulation.
type Config struct {
	Bodies    [BodyCount]Body
	Clock     ClockConfig
	Tolerance float32
	Lighting  Lighting
}

// DefaultConfig returns the stock simulation.
func DefaultConfig() Config {
	return Config{
		Bodies:    DefaultBodies(),
		Clock:     DefaultClockConfig(),
		Tolerance: AlignmentTolerance,
		Lighting:  DefaultLighting(),
	}
}

// Event reports a seek that completed during a step.
type Event int

const (
	EventNone Event = iota
	EventSolarEclipse
	EventLunarEclipse
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventSolarEclipse:
		return "solar eclipse reached"
	case EventLunarEclipse:
		return "lunar eclipse reached"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Simulation owns the clock and the body parameters. It is driven by Step.
type Simulation struct {
	bodies   [BodyCount]Body
	orbits   Orbits
	lighting Lighting
	detector Detector
	clock    *Clock
}

// New validates cfg and creates a simulation at time zero.
func New(cfg Config) (*Simulation, error) {
	for i, b := range cfg.Bodies {
		if b.Kind != BodyKind(i) {
			return nil, fmt.Errorf("%w: slot %s holds %s", ErrInvalidBody, BodyKind(i), b.Kind)
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}
	if cfg.Clock.NormalScale < 0 || cfg.Clock.FastScale < 0 {
		return nil, fmt.Errorf("time scales must not be negative (normal %v, fast %v)",
			cfg.Clock.NormalScale, cfg.Clock.FastScale)
	}
	if !(cfg.Tolerance > 0) {
		return nil, fmt.Errorf("alignment tolerance %v must be positive", cfg.Tolerance)
	}

	return &Simulation{
		bodies:   cfg.Bodies,
		orbits:   OrbitsFor(cfg.Bodies),
		lighting: cfg.Lighting,
		detector: Detector{Tolerance: cfg.Tolerance},
		clock:    NewClock(cfg.Clock),
	}, nil
}

// Clock returns the simulation clock.
func (s *Simulation) Clock() *Clock {
	return s.clock
}

// Bodies returns the simulated bodies.
func (s *Simulation) Bodies() [BodyCount]Body {
	return s.bodies
}

// Step applies cmds, advances the clock by dt wall-clock seconds, and
// evaluates the new frame. An armed seek that finds its eclipse freezes
// the clock and sets Frame.Event.
func (s *Simulation) Step(dt float32, cmds ...Command) Frame {
	for _, cmd := range cmds {
		s.clock.Apply(cmd)
	}

	t := s.clock.Advance(dt)
	pos := s.orbits.PositionAt(t)
	eclipse := s.detector.Detect(pos.Sun, pos.Earth, pos.Moon)

	f := Frame{
		Time:      t,
		Positions: pos,
		Eclipse:   eclipse,
	}
	f.SunIntensity, f.MoonIntensity = s.lighting.Intensities(eclipse)

	for i, b := range s.bodies {
		f.Models[i] = ModelMatrix(pos.Of(b.Kind), b.SpinRate*t)
	}

	switch {
	case s.clock.Seek == SeekSolar && eclipse.Solar:
		s.clock.Freeze()
		f.Event = EventSolarEclipse
	case s.clock.Seek == SeekLunar && eclipse.Lunar:
		s.clock.Freeze()
		f.Event = EventLunarEclipse
	}

	f.TimeScale = s.clock.TimeScale
	f.Seek = s.clock.Seek
	return f
}
