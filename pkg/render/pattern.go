package render

// FillSplit paints rows above Height/2 with top and the remaining rows with
// bottom.
func (fb *Framebuffer) FillSplit(top, bottom Color) {
	half := fb.Height / 2
	for y := range fb.Height {
		c := bottom
		if y < half {
			c = top
		}
		for x := range fb.Width {
			fb.SetPixel(x, y, c)
		}
	}
}

// FillRect fills the w x h rectangle whose top-left corner is (x, y).
// The part outside the framebuffer is dropped.
func (fb *Framebuffer) FillRect(x, y, w, h int, c Color) {
	for py := max(y, 0); py < min(y+h, fb.Height); py++ {
		for px := max(x, 0); px < min(x+w, fb.Width); px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// DrawRectOutline draws a rectangle outline.
func (fb *Framebuffer) DrawRectOutline(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	// Top and bottom
	for px := x; px < x+w; px++ {
		fb.SetPixel(px, y, c)
		fb.SetPixel(px, y+h-1, c)
	}
	// Left and right
	for py := y; py < y+h; py++ {
		fb.SetPixel(x, py, c)
		fb.SetPixel(x+w-1, py, c)
	}
}

// FillCircle fills every pixel strictly inside the circle of radius r around
// (cx, cy): dx*dx + dy*dy < r*r.
func (fb *Framebuffer) FillCircle(cx, cy, r int, c Color) {
	if r <= 0 {
		return
	}
	r2 := r * r
	for y := max(cy-r, 0); y <= min(cy+r, fb.Height-1); y++ {
		dy := y - cy
		for x := max(cx-r, 0); x <= min(cx+r, fb.Width-1); x++ {
			dx := x - cx
			if dx*dx+dy*dy < r2 {
				fb.SetPixel(x, y, c)
			}
		}
	}
}

// Negate inverts the RGB channels of every pixel in place. Alpha is kept.
func (fb *Framebuffer) Negate() {
	for i := 0; i+3 < len(fb.Pix); i += 4 {
		fb.Pix[i] = 255 - fb.Pix[i]
		fb.Pix[i+1] = 255 - fb.Pix[i+1]
		fb.Pix[i+2] = 255 - fb.Pix[i+2]
	}
}

// Downsample2x returns a half-resolution copy where each pixel is the mean of
// a 2x2 block, per channel, rounded as (sum+2)/4. An odd last row or column
// is dropped.
func (fb *Framebuffer) Downsample2x() *Framebuffer {
	out := NewFramebuffer(fb.Width/2, fb.Height/2)
	for y := range out.Height {
		for x := range out.Width {
			i00 := (2*x + 2*y*fb.Width) * 4
			i10 := i00 + 4
			i01 := i00 + fb.Width*4
			i11 := i01 + 4
			dst := (x + y*out.Width) * 4
			for ch := range 4 {
				sum := int(fb.Pix[i00+ch]) + int(fb.Pix[i10+ch]) + int(fb.Pix[i01+ch]) + int(fb.Pix[i11+ch])
				out.Pix[dst+ch] = uint8((sum + 2) / 4)
			}
		}
	}
	return out
}
