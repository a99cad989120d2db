package render

import (
	"math"

	"github.com/taigrr/rasterlab/pkg/math3d"
)

const (
	// degenerateArea is the smallest |signed area| a triangle may have and
	// still be filled.
	degenerateArea = 1e-8

	// edgeEpsilon lets pixel centres lying on an edge count as inside.
	edgeEpsilon = -1e-5
)

// DrawTriangle fills the screen-space triangle (p0, p1, p2) with c and
// returns how many pixels were written.
//
// Every pixel in the triangle's bounding box (clamped to the framebuffer) is
// sampled at its centre. A pixel is inside when all three barycentric weights
// are >= -1e-5, in either winding. Triangles with |signed area| < 1e-8 draw
// nothing. No fill rule is applied, so pixels on an edge shared by two
// triangles are written by both.
func DrawTriangle(fb *Framebuffer, p0, p1, p2 math3d.Vec2, c Color) int {
	if fb.Width == 0 || fb.Height == 0 {
		return 0
	}

	area := SignedArea(p0, p1, p2)
	if Degenerate(area) {
		return 0
	}

	// Clamp while still in float space: a far-off vertex must not overflow
	// the int conversion.
	w, h := float64(fb.Width), float64(fb.Height)
	minX := int(math3d.Clamp(math.Floor(min3(p0.X, p1.X, p2.X)), 0, w))
	maxX := int(math3d.Clamp(math.Ceil(max3(p0.X, p1.X, p2.X)), -1, w-1))
	minY := int(math3d.Clamp(math.Floor(min3(p0.Y, p1.Y, p2.Y)), 0, h))
	maxY := int(math3d.Clamp(math.Ceil(max3(p0.Y, p1.Y, p2.Y)), -1, h-1))

	written := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0, w1, w2 := barycentric(p0, p1, p2, area, math3d.V2(float64(x)+0.5, float64(y)+0.5))
			if w0 >= edgeEpsilon && w1 >= edgeEpsilon && w2 >= edgeEpsilon {
				fb.SetPixel(x, y, c)
				written++
			}
		}
	}
	return written
}

// SignedArea returns cross(p1-p0, p2-p0): twice the triangle's area,
// positive when the vertices wind counter-clockwise in a Y-up frame.
func SignedArea(p0, p1, p2 math3d.Vec2) float64 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// Degenerate reports whether a signed area is too small to fill. NaN and
// infinite areas, from non-finite vertices, are degenerate too.
func Degenerate(area float64) bool {
	return !(math.Abs(area) >= degenerateArea) || math.IsInf(area, 0)
}

// barycentric returns the weights of p relative to the triangle (p0, p1, p2)
// whose signed area is area. Each weight is the sub-triangle area opposite
// its vertex divided by area, so the weights sum to 1.
func barycentric(p0, p1, p2 math3d.Vec2, area float64, p math3d.Vec2) (w0, w1, w2 float64) {
	a0 := p1.Sub(p).Cross(p2.Sub(p))
	a1 := p2.Sub(p).Cross(p0.Sub(p))
	a2 := p0.Sub(p).Cross(p1.Sub(p))
	return a0 / area, a1 / area, a2 / area
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
