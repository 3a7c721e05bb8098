// Package app wires the window, renderer, camera, and simulation into the
// frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heliosim/internal/config"
	"github.com/Faultbox/heliosim/internal/engine/camera"
	"github.com/Faultbox/heliosim/internal/engine/debug"
	"github.com/Faultbox/heliosim/internal/engine/input"
	"github.com/Faultbox/heliosim/internal/engine/mesh"
	"github.com/Faultbox/heliosim/internal/engine/renderer"
	"github.com/Faultbox/heliosim/internal/engine/window"
	"github.com/Faultbox/heliosim/internal/logger"
	"github.com/Faultbox/heliosim/internal/sim"
)

// Title is the window title prefix.
const Title = "Heliosim"

// App is the running program.
type App struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	bindings    *input.Bindings
	camera      *camera.FlyCamera
	sim         *sim.Simulation
	screenshots *debug.ScreenshotCapture
	chimes      *chimes

	bodies [sim.BodyCount]*renderer.Body
	frame  sim.Frame
}

// New creates the window and uploads the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	var err error
	a.sim, err = sim.New(cfg.SimConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	a.bindings, err = input.NewBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve key bindings: %w", err)
	}

	a.screenshots, err = debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix, cfg.Screenshot.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to set up screenshots: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:        Title,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		SunColor:  config.Vec3(cfg.Lighting.SunColor),
		MoonColor: config.Vec3(cfg.Lighting.MoonColor),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.loadBodies(); err != nil {
		a.Close()
		return nil, err
	}

	a.input = input.New()
	a.chimes = newChimes(cfg.Audio, a.log)

	a.camera = camera.NewFlyCamera(config.Vec3(cfg.Camera.Position))
	a.camera.SetOrientation(cfg.Camera.Yaw, cfg.Camera.Pitch)
	a.camera.Speed = cfg.Camera.Speed
	a.camera.Sensitivity = cfg.Camera.Sensitivity
	a.camera.StrafeFactor = cfg.Camera.StrafeFactor
	a.camera.FOV = cfg.Graphics.FOV

	a.log.Info("initialized",
		zap.Int("sectors", cfg.Graphics.Sectors),
		zap.Int("stacks", cfg.Graphics.Stacks),
	)
	return a, nil
}

// loadBodies builds one sphere per body and uploads its mesh and texture.
func (a *App) loadBodies() error {
	g := a.cfg.Graphics
	for _, b := range a.sim.Bodies() {
		m, err := mesh.GenerateSphere(b.Radius, g.Sectors, g.Stacks)
		if err != nil {
			return fmt.Errorf("failed to build %s mesh: %w", b.Kind, err)
		}
		gpu, err := a.renderer.UploadMesh(m)
		if err != nil {
			return fmt.Errorf("failed to upload %s mesh: %w", b.Kind, err)
		}
		a.bodies[b.Kind] = &renderer.Body{
			Mesh:     gpu,
			Texture:  a.renderer.LoadTexture(b.Texture),
			Color:    b.Color,
			Emissive: b.Kind == sim.Sun,
		}
		a.log.Debug("body uploaded",
			zap.Stringer("body", b.Kind),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("triangles", m.TriangleCount()),
		)
	}
	return nil
}

// Run starts the frame loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		screenshot := a.handleEvents()

		// 2. Move the camera
		dx, dy := a.input.MouseDelta()
		if dx != 0 || dy != 0 {
			a.camera.ProcessMouse(float32(dx), float32(dy))
		}
		for _, dir := range a.bindings.Movement(a.input) {
			a.camera.ProcessKeyboard(dir, dt)
		}

		// 3. Advance the simulation
		cmds := a.bindings.Commands(a.input)
		for _, cmd := range cmds {
			a.log.Debug("command", zap.Stringer("command", cmd))
		}
		a.frame = a.sim.Step(dt, cmds...)
		if a.frame.Event != sim.EventNone {
			a.log.Info(a.frame.Event.String(),
				zap.Float32("time", a.frame.Time),
				zap.Float32("cross", a.frame.Eclipse.Cross),
			)
			a.chimes.play(a.frame.Event)
		}
		if len(cmds) > 0 || a.frame.Event != sim.EventNone {
			a.updateTitle()
		}

		// 4. Render
		a.render()
		if screenshot {
			a.captureScreenshot()
		}

		// 5. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			a.updateTitle()
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents reacts to window and key events. It reports whether a
// screenshot was requested.
func (a *App) handleEvents() bool {
	screenshot := false
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())
		case input.EventKeyDown:
			if event.Repeat {
				continue
			}
			switch event.Key {
			case a.bindings.Quit:
				a.running = false
			case a.bindings.Screenshot:
				screenshot = true
			}
		}
	}
	return screenshot
}

func (a *App) render() {
	g := a.cfg.Graphics
	f := &a.frame

	a.renderer.Begin()
	a.renderer.SetCamera(
		a.camera.ViewMatrix(),
		a.camera.ProjectionMatrix(a.renderer.Aspect(), g.Near, g.Far),
		a.camera.Position,
	)
	a.renderer.SetLighting(f)
	for kind, body := range a.bodies {
		a.renderer.DrawBody(body, f.Models[kind])
	}
	a.renderer.End()
}

func (a *App) captureScreenshot() {
	width, height := a.renderer.Size()
	path, err := a.screenshots.CaptureFromPixels(a.renderer.ReadPixels(), width, height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) updateTitle() {
	a.window.SetTitle(StatusLine(a.frame))
}

// Close releases GPU resources and the window, in reverse creation order.
func (a *App) Close() {
	a.log.Info("closing")

	a.chimes.close()
	a.chimes = nil

	for i := len(a.bodies) - 1; i >= 0; i-- {
		b := a.bodies[i]
		if b == nil {
			continue
		}
		if a.renderer != nil {
			a.renderer.DeleteTexture(b.Texture)
		}
		b.Mesh.Delete()
		a.bodies[i] = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
