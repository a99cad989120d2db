package render

import (
	"github.com/taigrr/rasterlab/pkg/math3d"
	"github.com/taigrr/rasterlab/pkg/models"
)

// Stats counts what a mesh pass did.
type Stats struct {
	Faces        int // faces drawn
	SkippedFaces int // faces referencing a missing vertex
	Triangles    int // triangles submitted after fan triangulation
	Degenerate   int // triangles that covered no area
	Lines        int // edges drawn
	Pixels       int // pixel writes (filled passes count covered pixels)
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Faces += o.Faces
	s.SkippedFaces += o.SkippedFaces
	s.Triangles += o.Triangles
	s.Degenerate += o.Degenerate
	s.Lines += o.Lines
	s.Pixels += o.Pixels
}

// Rasterizer draws meshes onto a framebuffer. There is no depth buffer:
// faces are drawn in submission order and later faces overwrite earlier ones.
type Rasterizer struct {
	fb     *Framebuffer
	proj   Projector
	shader *Shader

	// OnFace, if set, is called once for every face a pass processes,
	// including skipped ones.
	OnFace func()
}

// NewRasterizer creates a rasterizer drawing onto fb. A nil shader fills
// with flat red.
func NewRasterizer(fb *Framebuffer, proj Projector, shader *Shader) *Rasterizer {
	if shader == nil {
		shader = NewShader(ShadingFlat, ColorRed, nil)
	}
	return &Rasterizer{
		fb:     fb,
		proj:   proj,
		shader: shader,
	}
}

// Framebuffer returns the target framebuffer.
func (r *Rasterizer) Framebuffer() *Framebuffer {
	return r.fb
}

// Projector returns the projector in use.
func (r *Rasterizer) Projector() Projector {
	return r.proj
}

func (r *Rasterizer) faceDone() {
	if r.OnFace != nil {
		r.OnFace()
	}
}

// DrawMesh fills every renderable face of mesh. Each face gets one color
// from the shader, computed from its first three vertices; polygons are then
// split into a fan (v0, vi, vi+1) and each triangle is filled.
func (r *Rasterizer) DrawMesh(mesh *models.Mesh) Stats {
	var st Stats
	for _, face := range mesh.Faces {
		pts, ok := mesh.Resolve(face)
		if !ok {
			st.SkippedFaces++
			r.faceDone()
			continue
		}

		c := r.shader.FaceColor(pts[0], pts[1], pts[2])
		st.Add(r.drawPolygon(pts, c))
		st.Faces++
		r.faceDone()
	}
	return st
}

// drawPolygon fan-triangulates pts and fills each triangle with c.
func (r *Rasterizer) drawPolygon(pts []math3d.Vec3, c Color) Stats {
	var st Stats
	p0 := r.proj.ProjectVec2(pts[0])
	for i := 1; i+1 < len(pts); i++ {
		p1 := r.proj.ProjectVec2(pts[i])
		p2 := r.proj.ProjectVec2(pts[i+1])
		st.Triangles++
		n := DrawTriangle(r.fb, p0, p1, p2, c)
		if Degenerate(SignedArea(p0, p1, p2)) {
			st.Degenerate++
		}
		st.Pixels += n
	}
	return st
}
