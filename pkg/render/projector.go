package render

import (
	"math"

	"github.com/taigrr/rasterlab/pkg/math3d"
)

// DefaultScale is the projection scale used when none is configured.
const DefaultScale = 250.0

// Projector maps model space to pixel coordinates by dropping Z, scaling, and
// moving the origin to the centre of a Width x Height image. Screen Y grows
// downward, so model Y is negated.
type Projector struct {
	Scale  float64
	Width  int
	Height int
}

// NewProjector returns a projector for fb.
func NewProjector(fb *Framebuffer, scale float64) Projector {
	return Projector{Scale: scale, Width: fb.Width, Height: fb.Height}
}

// Project returns the pixel nearest to v. Positions far off screen are
// pulled in to a margin of a few image sizes, which keeps pixel walks such as
// DrawLine bounded; NaN coordinates land on the negative margin.
func (p Projector) Project(v math3d.Vec3) (x, y int) {
	sx, sy := p.ProjectF(v)
	lim := p.limit()
	return clampPixel(sx, lim), clampPixel(sy, lim)
}

func (p Projector) limit() float64 {
	return float64(4*(max(p.Width, 0)+max(p.Height, 0)) + 1)
}

func clampPixel(v, lim float64) int {
	if math.IsNaN(v) {
		return int(-lim)
	}
	return int(math.Round(math3d.Clamp(v, -lim, lim)))
}

// ProjectF returns the unrounded screen position of v.
func (p Projector) ProjectF(v math3d.Vec3) (x, y float64) {
	x = v.X*p.Scale + float64(p.Width)/2
	y = -v.Y*p.Scale + float64(p.Height)/2
	return x, y
}

// ProjectVec2 returns the unrounded screen position of v as a Vec2.
// Triangles are filled from these sub-pixel positions.
func (p Projector) ProjectVec2(v math3d.Vec3) math3d.Vec2 {
	return math3d.V2(p.ProjectF(v))
}
