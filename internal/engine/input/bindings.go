package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/heliosim/internal/config"
	"github.com/Faultbox/heliosim/internal/engine/camera"
	"github.com/Faultbox/heliosim/internal/sim"
)

// Bindings maps physical keys to simulation commands, camera movement, and
// application actions.
type Bindings struct {
	SeekSolar  sdl.Scancode
	SeekLunar  sdl.Scancode
	Resume     sdl.Scancode
	Pause      sdl.Scancode
	Forward    sdl.Scancode
	Back       sdl.Scancode
	Left       sdl.Scancode
	Right      sdl.Scancode
	Screenshot sdl.Scancode
	Quit       sdl.Scancode
}

// NewBindings resolves SDL key names such as "G" or "Escape".
func NewBindings(cfg config.KeyConfig) (*Bindings, error) {
	b := &Bindings{}
	keys := []struct {
		action string
		name   string
		dst    *sdl.Scancode
	}{
		{"seek_solar", cfg.SeekSolar, &b.SeekSolar},
		{"seek_lunar", cfg.SeekLunar, &b.SeekLunar},
		{"resume", cfg.Resume, &b.Resume},
		{"pause", cfg.Pause, &b.Pause},
		{"forward", cfg.Forward, &b.Forward},
		{"back", cfg.Back, &b.Back},
		{"left", cfg.Left, &b.Left},
		{"right", cfg.Right, &b.Right},
		{"screenshot", cfg.Screenshot, &b.Screenshot},
		{"quit", cfg.Quit, &b.Quit},
	}
	for _, k := range keys {
		sc := sdl.GetScancodeFromName(k.name)
		if sc == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("%w: unknown key %q for %s", config.ErrInvalid, k.name, k.action)
		}
		*k.dst = sc
	}
	return b, nil
}

// Commands returns the simulation commands for keys pressed this frame.
func (b *Bindings) Commands(in *Input) []sim.Command {
	var cmds []sim.Command
	for _, k := range []struct {
		key sdl.Scancode
		cmd sim.Command
	}{
		{b.SeekSolar, sim.CommandSeekSolar},
		{b.SeekLunar, sim.CommandSeekLunar},
		{b.Resume, sim.CommandResume},
		{b.Pause, sim.CommandTogglePause},
	} {
		if in.IsKeyPressed(k.key) {
			cmds = append(cmds, k.cmd)
		}
	}
	return cmds
}

// Movement returns the camera directions whose keys are held.
func (b *Bindings) Movement(in *Input) []camera.Movement {
	var dirs []camera.Movement
	for _, k := range []struct {
		key sdl.Scancode
		dir camera.Movement
	}{
		{b.Forward, camera.Forward},
		{b.Back, camera.Backward},
		{b.Left, camera.Left},
		{b.Right, camera.Right},
	} {
		if in.IsKeyHeld(k.key) {
			dirs = append(dirs, k.dir)
		}
	}
	return dirs
}
