// Package render provides the software rasterizer: a flat RGBA frame buffer,
// line and triangle drawing, projection, shading and terminal preview.
package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Framebuffer is a row-major RGBA8 raster with its origin at the top-left.
// len(Pix) is always Width*Height*4.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFramebuffer creates a zeroed (transparent black) framebuffer.
// Negative dimensions are treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// FramebufferFromImage copies any image into a new framebuffer whose origin
// is the image's Bounds().Min.
func FramebufferFromImage(img image.Image) *Framebuffer {
	b := img.Bounds()
	fb := NewFramebuffer(b.Dx(), b.Dy())
	draw.Draw(fb.ToImage(), image.Rect(0, 0, fb.Width, fb.Height), img, b.Min, draw.Src)
	return fb
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// SetPixel sets a pixel at (x, y) to the given color.
// Writes outside the buffer are silently dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	fb.SetRGBA(x, y, c.R, c.G, c.B, c.A)
}

// SetRGBA writes the four channels of (x, y). Out-of-bounds writes are no-ops.
func (fb *Framebuffer) SetRGBA(x, y int, r, g, b, a uint8) {
	if !fb.InBounds(x, y) {
		return
	}
	i := (x + y*fb.Width) * 4
	fb.Pix[i] = r
	fb.Pix[i+1] = g
	fb.Pix[i+2] = b
	fb.Pix[i+3] = a
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if !fb.InBounds(x, y) {
		return Color{}
	}
	i := (x + y*fb.Width) * 4
	return Color{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	if len(fb.Pix) == 0 {
		return
	}
	fb.Pix[0], fb.Pix[1], fb.Pix[2], fb.Pix[3] = c.R, c.G, c.B, c.A
	// copy-doubling
	for n := 4; n < len(fb.Pix); n *= 2 {
		copy(fb.Pix[n:], fb.Pix[:n])
	}
}

// ToImage returns an *image.RGBA view of the framebuffer. The image shares
// Pix with the framebuffer, so later drawing shows through.
func (fb *Framebuffer) ToImage() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// Count returns how many pixels currently equal c.
func (fb *Framebuffer) Count(c Color) int {
	n := 0
	for i := 0; i+3 < len(fb.Pix); i += 4 {
		if fb.Pix[i] == c.R && fb.Pix[i+1] == c.G && fb.Pix[i+2] == c.B && fb.Pix[i+3] == c.A {
			n++
		}
	}
	return n
}
