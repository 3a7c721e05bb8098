// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/heliosim/internal/engine/shader"
	"github.com/Faultbox/heliosim/internal/engine/shader/shaders"
	"github.com/Faultbox/heliosim/internal/logger"
	"github.com/Faultbox/heliosim/internal/sim"
	"github.com/Faultbox/heliosim/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	SunColor  math.Vec3
	MoonColor math.Vec3
}

// Body is everything needed to draw one celestial body.
type Body struct {
	Mesh     *GPUMesh
	Texture  uint32
	Color    math.Vec3
	Emissive bool // Lit from within, skips the lighting model
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program

	// 1x1 white texture used when a body texture is missing
	whiteTexture uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(shaders.BodyVertexShader, shaders.BodyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create body shader: %w", err)
	}
	r.program.Use()
	// Transform uniforms must be active in the body shader.
	for _, name := range []string{"model", "view", "projection"} {
		r.program.MustUniform(name)
	}
	r.program.SetInt("textureSample", 0)
	r.program.SetVec3("sunColor", cfg.SunColor)
	r.program.SetVec3("moonColor", cfg.MoonColor)

	r.whiteTexture = r.createWhiteTexture()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.whiteTexture != 0 {
		gl.DeleteTextures(1, &r.whiteTexture)
		r.whiteTexture = 0
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// SetCamera uploads the view and projection for this frame.
func (r *Renderer) SetCamera(view, projection math.Mat4, viewPos math.Vec3) {
	r.program.SetMat4("view", view)
	r.program.SetMat4("projection", projection)
	r.program.SetVec3("viewPos", viewPos)
}

// SetLighting uploads the frame's light position and intensities.
func (r *Renderer) SetLighting(f *sim.Frame) {
	r.program.SetVec3("sunPos", f.Positions.Sun.XZ(0))
	r.program.SetFloat("sunIntensity", f.SunIntensity)
	r.program.SetFloat("moonIntensity", f.MoonIntensity)
}

// DrawBody draws a body with the given model matrix.
func (r *Renderer) DrawBody(b *Body, model math.Mat4) {
	if b == nil || b.Mesh == nil {
		return
	}
	r.program.SetMat4("model", model)
	r.program.SetVec3("objectColor", b.Color)
	r.program.SetBool("emissive", b.Emissive)

	tex := b.Texture
	if tex == 0 {
		tex = r.whiteTexture
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	b.Mesh.Draw()
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ReadPixels reads back the default framebuffer as tightly packed RGBA rows,
// bottom row first.
func (r *Renderer) ReadPixels() []byte {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
