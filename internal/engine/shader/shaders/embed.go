// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BodyVertexShader is the vertex shader for the Sun, Earth and Moon.
//
//go:embed body.vert
var BodyVertexShader string

// BodyFragmentShader lights a body with the Sun as a point light and the
// Moon as a faint fill light. Emissive bodies skip lighting.
//
//go:embed body.frag
var BodyFragmentShader string
