package render

import "math"

// DrawLine draws a line from (x0, y0) to (x1, y1) with a DDA stepper.
// It takes max(|dx|, |dy|)+1 samples, each rounded to the nearest pixel, so
// both endpoints are always plotted. A zero-length line plots one pixel.
// Samples outside the framebuffer are dropped.
func DrawLine(fb *Framebuffer, x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		fb.SetPixel(x0, y0, c)
		return
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	x, y := float64(x0), float64(y0)
	for range steps + 1 {
		fb.SetPixel(int(math.Round(x)), int(math.Round(y)), c)
		x += xInc
		y += yInc
	}
}

// DrawLine draws a line on the framebuffer; see the package-level DrawLine.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	DrawLine(fb, x0, y0, x1, y1, c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
