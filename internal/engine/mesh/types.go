// Package mesh builds static triangle meshes for the renderer.
package mesh

// FloatsPerVertex is the interleaved stride of Vertex in float32 units:
// position (3), normal (3), texture coordinate (2).
const FloatsPerVertex = 8

// Vertex is a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is an indexed triangle list ready for GPU upload.
// A Mesh is never modified after it is built.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32

	// Parameters the sphere was generated from.
	Radius  float32
	Sectors int
	Stacks  int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Interleaved returns the vertex data as one flat slice in the
// position/normal/uv layout of the vertex shader.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}
