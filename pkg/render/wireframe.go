package render

import (
	"github.com/taigrr/rasterlab/pkg/math3d"
	"github.com/taigrr/rasterlab/pkg/models"
)

// DrawLine3D projects both endpoints and draws the line between them.
func (r *Rasterizer) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	x1, y1 := r.proj.Project(p1)
	x2, y2 := r.proj.Project(p2)
	DrawLine(r.fb, x1, y1, x2, y2, color)
}

// DrawWireframe outlines every face of mesh, closing edge included.
// Edges touching a missing vertex are skipped individually; the rest of the
// face is still drawn. Shared edges are drawn once per face.
func (r *Rasterizer) DrawWireframe(mesh *models.Mesh, color Color) Stats {
	var st Stats
	n := len(mesh.Vertices)
	for _, face := range mesh.Faces {
		drawn := 0
		for i, i0 := range face.V {
			i1 := face.V[(i+1)%len(face.V)]
			if i0 < 0 || i0 >= n || i1 < 0 || i1 >= n {
				continue
			}
			r.DrawLine3D(mesh.Vertices[i0], mesh.Vertices[i1], color)
			drawn++
		}
		if drawn == 0 {
			st.SkippedFaces++
		} else {
			st.Faces++
			st.Lines += drawn
		}
		r.faceDone()
	}
	return st
}

// DrawPoints plots one pixel per vertex.
func (r *Rasterizer) DrawPoints(mesh *models.Mesh, color Color) Stats {
	var st Stats
	for _, v := range mesh.Vertices {
		x, y := r.proj.Project(v)
		if r.fb.InBounds(x, y) {
			r.fb.SetPixel(x, y, color)
			st.Pixels++
		}
	}
	return st
}

// DrawAxes draws the X (red) and Y (green) axes through the origin. Z points
// at the viewer and collapses to the origin pixel, drawn in blue.
func (r *Rasterizer) DrawAxes(length float64) {
	origin := math3d.Zero3()
	r.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)
	r.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen)
	r.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)
}
