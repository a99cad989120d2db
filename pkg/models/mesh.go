// Package models provides mesh loading and representation for rasterlab.
package models

import (
	"errors"
	"math"

	"github.com/taigrr/rasterlab/pkg/math3d"
)

// ErrMeshOpen is wrapped by every loader error caused by a mesh file that
// cannot be opened or read.
var ErrMeshOpen = errors.New("cannot open mesh")

// Mesh is a vertex list plus the polygons that reference it.
// A mesh is not modified after loading; transforms return a new mesh.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a polygon given as 0-based vertex indices in winding order.
type Face struct {
	V []int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
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

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// TriangleCount returns the number of triangles after fan triangulation.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.Faces {
		if len(f.V) >= 3 {
			n += len(f.V) - 2
		}
	}
	return n
}

// Resolve returns the positions of a face's vertices. ok is false when the
// face has fewer than three vertices or references a vertex that does not
// exist; such a face is unrenderable.
func (m *Mesh) Resolve(f Face) (pts []math3d.Vec3, ok bool) {
	if len(f.V) < 3 {
		return nil, false
	}
	pts = make([]math3d.Vec3, len(f.V))
	for i, idx := range f.V {
		if idx < 0 || idx >= len(m.Vertices) {
			return nil, false
		}
		pts[i] = m.Vertices[idx]
	}
	return pts, true
}

// FaceNormal returns the unit normal of the triangle (v0, v1, v2), using the
// right-hand rule on its winding. Degenerate triangles give the zero vector.
func FaceNormal(v0, v1, v2 math3d.Vec3) math3d.Vec3 {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	return edge1.Cross(edge2).Normalize()
}

// Transformed returns a copy of the mesh with every vertex transformed by mat.
// Faces are shared with the receiver.
func (m *Mesh) Transformed(mat math3d.Mat4) *Mesh {
	out := &Mesh{
		Name:     m.Name,
		Vertices: make([]math3d.Vec3, len(m.Vertices)),
		Faces:    m.Faces,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = mat.MulVec3(v)
	}
	out.CalculateBounds()
	return out
}

// Fitted returns a copy of the mesh centered on the origin and uniformly
// scaled so that its largest dimension equals extent. Empty or flat-to-a-point
// meshes are only centered.
func (m *Mesh) Fitted(extent float64) *Mesh {
	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	transform := math3d.Translate(m.Center().Scale(-1))
	if maxDim > 0 {
		scale := extent / maxDim
		transform = math3d.ScaleUniform(scale).Mul(transform)
	}
	return m.Transformed(transform)
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
	for i, f := range m.Faces {
		clone.Faces[i] = Face{V: append([]int(nil), f.V...)}
	}
	return clone
}
