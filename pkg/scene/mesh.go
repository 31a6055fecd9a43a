// Package scene provides the indexed triangle meshes the rasterizer draws
// and a few built-in scenes to look at.
package scene

import (
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// Mesh is a list of world-space vertices and the colored triangles that
// index into it.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (see CalculateBounds)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle with vertex indices and a fill color.
type Face struct {
	V     [3]int // Indices into Mesh.Vertices
	Color render.Color
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle. The vertices should appear counter-clockwise
// from the side the face is meant to be seen from.
func (m *Mesh) AddFace(a, b, c int, color render.Color) {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}, Color: color})
}

// AddQuad appends the quad a, b, c, d as the triangles (a, b, c) and
// (a, c, d), keeping the winding.
func (m *Mesh) AddQuad(a, b, c, d int, color render.Color) {
	m.AddFace(a, b, c, color)
	m.AddFace(a, c, d, color)
}

// Append copies the vertices and faces of o onto the end of m.
func (m *Mesh) Append(o *Mesh) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, o.Vertices...)
	for _, f := range o.Faces {
		m.AddFace(f.V[0]+base, f.V[1]+base, f.V[2]+base, f.Color)
	}
	m.CalculateBounds()
}

// Valid reports whether every face index refers to a vertex.
func (m *Mesh) Valid() bool {
	for _, f := range m.Faces {
		if !m.validFace(f) {
			return false
		}
	}
	return true
}

func (m *Mesh) validFace(f Face) bool {
	for _, i := range f.V {
		if i < 0 || i >= len(m.Vertices) {
			return false
		}
	}
	return true
}

// Triangles expands the mesh into world-space faces in face order, the
// form Renderer.RenderFrame consumes. Faces with out-of-range indices are
// left out.
func (m *Mesh) Triangles() []render.Face {
	out := make([]render.Face, 0, len(m.Faces))
	for _, f := range m.Faces {
		if !m.validFace(f) {
			continue
		}
		out = append(out, render.Face{
			Triangle: render.Tri(m.Vertices[f.V[0]], m.Vertices[f.V[1]], m.Vertices[f.V[2]]),
			Color:    f.Color,
		})
	}
	return out
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a linear transformation to all vertices.
func (m *Mesh) Transform(mat math3d.Mat3) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Translate moves every vertex by d.
func (m *Mesh) Translate(d math3d.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(d)
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
