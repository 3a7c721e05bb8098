package sim

import "fmt"

// Default time scales.
const (
	DefaultNormalScale = 1.0
	DefaultFastScale   = 5.0
)

// Command is a discrete request that changes the clock. Input handling produces
// commands and the simulation applies them at the start of a step.
type Command int

const (
	CommandNone Command = iota
	CommandSeekSolar
	CommandSeekLunar
	CommandResume
	CommandTogglePause
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandSeekSolar:
		return "seek-solar"
	case CommandSeekLunar:
		return "seek-lunar"
	case CommandResume:
		return "resume"
	case CommandTogglePause:
		return "toggle-pause"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// SeekMode is the armed one-shot eclipse trigger, if any.
type SeekMode int

const (
	SeekNone SeekMode = iota
	SeekSolar
	SeekLunar
)

func (m SeekMode) String() string {
	switch m {
	case SeekNone:
		return "none"
	case SeekSolar:
		return "solar"
	case SeekLunar:
		return "lunar"
	default:
		return fmt.Sprintf("SeekMode(%d)", int(m))
	}
}

// ClockConfig holds the time scales the commands switch between.
type ClockConfig struct {
	NormalScale float32
	FastScale   float32
}

// DefaultClockConfig returns the stock time scales.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		NormalScale: DefaultNormalScale,
		FastScale:   DefaultFastScale,
	}
}

// Clock accumulates simulated time at a variable rate.
type Clock struct {
	SimulatedTime float32
	TimeScale     float32
	Seek          SeekMode

	config      ClockConfig
	paused      bool
	pausedScale float32
}

// NewClock creates a clock at time zero running at the normal scale.
func NewClock(cfg ClockConfig) *Clock {
	return &Clock{
		TimeScale: cfg.NormalScale,
		config:    cfg,
	}
}

// Paused reports whether the clock was stopped with CommandTogglePause.
func (c *Clock) Paused() bool {
	return c.paused
}

// Apply executes a command.
func (c *Clock) Apply(cmd Command) {
	switch cmd {
	case CommandSeekSolar:
		c.Seek = SeekSolar
		c.TimeScale = c.config.FastScale
		c.paused = false
	case CommandSeekLunar:
		c.Seek = SeekLunar
		c.TimeScale = c.config.FastScale
		c.paused = false
	case CommandResume:
		c.Seek = SeekNone
		c.TimeScale = c.config.NormalScale
		c.paused = false
	case CommandTogglePause:
		c.togglePause()
	}
}

func (c *Clock) togglePause() {
	switch {
	case c.paused:
		c.TimeScale = c.pausedScale
		c.paused = false
	case c.TimeScale == 0:
		// Frozen by an eclipse: unpausing means running again.
		c.TimeScale = c.config.NormalScale
	default:
		c.pausedScale = c.TimeScale
		c.TimeScale = 0
		c.paused = true
	}
}

// Freeze stops the clock and disarms any seek.
func (c *Clock) Freeze() {
	c.TimeScale = 0
	c.Seek = SeekNone
	c.paused = false
}

// Advance adds dt scaled by TimeScale and returns the new simulated time.
// Negative dt is ignored.
func (c *Clock) Advance(dt float32) float32 {
	if dt > 0 {
		c.SimulatedTime += dt * c.TimeScale
	}
	return c.SimulatedTime
}
