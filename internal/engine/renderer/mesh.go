package renderer

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/heliosim/internal/engine/mesh"
)

// ErrEmptyMesh is returned when uploading a mesh with no triangles.
var ErrEmptyMesh = errors.New("renderer: mesh has no triangles")

// GPUMesh is a mesh uploaded to vertex and index buffers.
type GPUMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// UploadMesh copies m into static GPU buffers.
func (r *Renderer) UploadMesh(m *mesh.Mesh) (*GPUMesh, error) {
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, ErrEmptyMesh
	}

	g := &GPUMesh{indexCount: int32(len(m.Indices))}
	vertices := m.Interleaved()
	stride := int32(mesh.FloatsPerVertex * 4)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g, nil
}

// Draw issues the indexed draw call.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
}

// Delete releases the GPU buffers.
func (g *GPUMesh) Delete() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
