package render

import (
	"image/color"
	"math"

	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/image/draw"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each cell covers two framebuffer rows: ▀ with fg=top pixel and
// bg=bottom pixel. Framebuffer (0, 0) maps to area.Min.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(x, topY)),
					Bg: rgbaToColor(fb.GetPixel(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// PreviewSize returns the pixel size that fits fb inside a cols x rows
// terminal, keeping its aspect ratio. Each row holds two pixels.
func PreviewSize(fb *Framebuffer, cols, rows int) (w, h int) {
	if fb.Width == 0 || fb.Height == 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	s := math.Min(float64(cols)/float64(fb.Width), float64(rows*2)/float64(fb.Height))
	w = max(1, min(cols, int(math.Round(float64(fb.Width)*s))))
	h = max(1, min(rows*2, int(math.Round(float64(fb.Height)*s))))
	return w, h
}

// Preview renders fb as a styled half-block string at most cols wide and
// rows tall, scaled with nearest-neighbour sampling.
func Preview(fb *Framebuffer, cols, rows int) string {
	w, h := PreviewSize(fb, cols, rows)
	if w == 0 {
		return ""
	}

	small := NewFramebuffer(w, h)
	dst := small.ToImage()
	src := fb.ToImage()
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	scr := uv.NewScreenBuffer(w, (h+1)/2)
	small.Draw(scr, scr.Bounds())
	return scr.Render()
}
