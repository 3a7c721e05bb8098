// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chewxy/math32"
)

// ErrInvalid is returned by Validate for settings the program cannot run with.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics" toml:"graphics"`
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Lighting   LightingConfig   `yaml:"lighting" toml:"lighting"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Keys       KeyConfig        `yaml:"keys" toml:"keys"`
	Screenshot ScreenshotConfig `yaml:"screenshot" toml:"screenshot"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	Fullscreen bool    `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool    `yaml:"vsync" toml:"vsync"`
	FOV        float32 `yaml:"fov" toml:"fov"` // Vertical field of view in degrees
	Near       float32 `yaml:"near" toml:"near"`
	Far        float32 `yaml:"far" toml:"far"`

	// Sphere tessellation shared by all bodies
	Sectors int `yaml:"sectors" toml:"sectors"`
	Stacks  int `yaml:"stacks" toml:"stacks"`
}

// BodyConfig describes one body.
type BodyConfig struct {
	Radius        float32    `yaml:"radius" toml:"radius"`
	OrbitalRadius float32    `yaml:"orbital_radius" toml:"orbital_radius"`
	AngularSpeed  float32    `yaml:"angular_speed" toml:"angular_speed"`
	SpinRate      float32    `yaml:"spin_rate" toml:"spin_rate"`
	Color         [3]float32 `yaml:"color" toml:"color"`
	Texture       string     `yaml:"texture" toml:"texture"`
}

// SimulationConfig holds the bodies and clock settings.
type SimulationConfig struct {
	Sun   BodyConfig `yaml:"sun" toml:"sun"`
	Earth BodyConfig `yaml:"earth" toml:"earth"`
	Moon  BodyConfig `yaml:"moon" toml:"moon"`

	NormalScale        float32 `yaml:"normal_scale" toml:"normal_scale"`
	FastScale          float32 `yaml:"fast_scale" toml:"fast_scale"`
	AlignmentTolerance float32 `yaml:"alignment_tolerance" toml:"alignment_tolerance"`
}

// LightingConfig holds light colors and eclipse-dependent intensities.
type LightingConfig struct {
	SunColor              [3]float32 `yaml:"sun_color" toml:"sun_color"`
	MoonColor             [3]float32 `yaml:"moon_color" toml:"moon_color"`
	SunIntensity          float32    `yaml:"sun_intensity" toml:"sun_intensity"`
	SunEclipsedIntensity  float32    `yaml:"sun_eclipsed_intensity" toml:"sun_eclipsed_intensity"`
	MoonIntensity         float32    `yaml:"moon_intensity" toml:"moon_intensity"`
	MoonEclipsedIntensity float32    `yaml:"moon_eclipsed_intensity" toml:"moon_eclipsed_intensity"`
}

// CameraConfig holds the free-fly camera settings.
type CameraConfig struct {
	Position     [3]float32 `yaml:"position" toml:"position"`
	Yaw          float32    `yaml:"yaw" toml:"yaw"`     // Degrees
	Pitch        float32    `yaml:"pitch" toml:"pitch"` // Degrees
	Speed        float32    `yaml:"speed" toml:"speed"`
	Sensitivity  float32    `yaml:"sensitivity" toml:"sensitivity"`
	StrafeFactor float32    `yaml:"strafe_factor" toml:"strafe_factor"`
}

// KeyConfig maps actions to SDL key names ("G", "Escape", "F12", ...).
type KeyConfig struct {
	SeekSolar  string `yaml:"seek_solar" toml:"seek_solar"`
	SeekLunar  string `yaml:"seek_lunar" toml:"seek_lunar"`
	Resume     string `yaml:"resume" toml:"resume"`
	Pause      string `yaml:"pause" toml:"pause"`
	Forward    string `yaml:"forward" toml:"forward"`
	Back       string `yaml:"back" toml:"back"`
	Left       string `yaml:"left" toml:"left"`
	Right      string `yaml:"right" toml:"right"`
	Screenshot string `yaml:"screenshot" toml:"screenshot"`
	Quit       string `yaml:"quit" toml:"quit"`
}

// Screenshot formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Prefix string `yaml:"prefix" toml:"prefix"`
	Format string `yaml:"format" toml:"format"` // "png" or "webp"
}

// AudioConfig holds the eclipse chime settings. An empty chime path plays a
// synthesized tone instead of a WAV file.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"`
	SolarChime string  `yaml:"solar_chime" toml:"solar_chime"`
	LunarChime string  `yaml:"lunar_chime" toml:"lunar_chime"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level" toml:"level"`
	LogFile    string `yaml:"log_file" toml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// Default returns a Config with the stock scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        45,
			Near:       0.1,
			Far:        100,
			Sectors:    36,
			Stacks:     18,
		},
		Simulation: SimulationConfig{
			Sun: BodyConfig{
				Radius:  2.0,
				Color:   [3]float32{1.0, 0.95, 0.5},
				Texture: "textures/sun.jpg",
			},
			Earth: BodyConfig{
				Radius:        0.5,
				OrbitalRadius: 8.0,
				AngularSpeed:  0.5,
				SpinRate:      2.0,
				Color:         [3]float32{0.05, 0.2, 0.1},
				Texture:       "textures/earth.jpg",
			},
			Moon: BodyConfig{
				Radius:        0.15,
				OrbitalRadius: 0.9,
				AngularSpeed:  2.2,
				Color:         [3]float32{0.25, 0.25, 0.25},
				Texture:       "textures/moon.jpg",
			},
			NormalScale:        1.0,
			FastScale:          5.0,
			AlignmentTolerance: 0.05,
		},
		Lighting: LightingConfig{
			SunColor:              [3]float32{1.0, 0.95, 0.6},
			MoonColor:             [3]float32{0.6, 0.6, 0.7},
			SunIntensity:          1.2,
			SunEclipsedIntensity:  0.05,
			MoonIntensity:         0.15,
			MoonEclipsedIntensity: 0.25,
		},
		Camera: CameraConfig{
			Position:     [3]float32{0, 2, 20},
			Yaw:          -90,
			Pitch:        0,
			Speed:        5,
			Sensitivity:  0.1,
			StrafeFactor: 0.5,
		},
		Keys: KeyConfig{
			SeekSolar:  "G",
			SeekLunar:  "H",
			Resume:     "J",
			Pause:      "P",
			Forward:    "W",
			Back:       "S",
			Left:       "A",
			Right:      "D",
			Screenshot: "F12",
			Quit:       "Escape",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "heliosim",
			Format: FormatPNG,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if !(g.FOV > 0 && g.FOV < 180) {
		return fmt.Errorf("%w: fov %v must be in (0, 180)", ErrInvalid, g.FOV)
	}
	if !(g.Near > 0 && g.Far > g.Near) || math32.IsInf(g.Far, 1) {
		return fmt.Errorf("%w: clip planes near %v far %v", ErrInvalid, g.Near, g.Far)
	}
	if g.Sectors < 3 || g.Stacks < 2 {
		return fmt.Errorf("%w: tessellation %dx%d, need at least 3 sectors and 2 stacks", ErrInvalid, g.Sectors, g.Stacks)
	}

	s := c.Simulation
	bodies := []struct {
		name string
		body BodyConfig
	}{{"sun", s.Sun}, {"earth", s.Earth}, {"moon", s.Moon}}
	for _, b := range bodies {
		if !(b.body.Radius > 0) || math32.IsInf(b.body.Radius, 1) {
			return fmt.Errorf("%w: %s radius %v must be positive and finite", ErrInvalid, b.name, b.body.Radius)
		}
		if !(b.body.OrbitalRadius >= 0) || math32.IsInf(b.body.OrbitalRadius, 1) {
			return fmt.Errorf("%w: %s orbital radius %v must be finite and not negative", ErrInvalid, b.name, b.body.OrbitalRadius)
		}
	}
	if s.Sun.OrbitalRadius != 0 {
		return fmt.Errorf("%w: sun orbital radius must be 0", ErrInvalid)
	}
	if !(s.NormalScale >= 0 && s.FastScale >= 0) {
		return fmt.Errorf("%w: time scales must not be negative", ErrInvalid)
	}
	if !(s.AlignmentTolerance > 0) {
		return fmt.Errorf("%w: alignment tolerance %v must be positive", ErrInvalid, s.AlignmentTolerance)
	}

	if !slices.Contains([]string{FormatPNG, FormatWebP}, c.Screenshot.Format) {
		return fmt.Errorf("%w: screenshot format %q (want %q or %q)", ErrInvalid, c.Screenshot.Format, FormatPNG, FormatWebP)
	}
	if !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1) {
		return fmt.Errorf("%w: audio volume %v must be in [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
