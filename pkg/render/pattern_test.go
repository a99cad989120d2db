package render

import "testing"

func TestFillSplit(t *testing.T) {
	tests := []struct {
		h       int
		wantTop int
	}{
		{4, 2},
		{5, 2},
		{1, 0},
	}
	for _, tc := range tests {
		fb := NewFramebuffer(3, tc.h)
		fb.FillSplit(ColorCyan, ColorGreen)
		if got := fb.Count(ColorCyan); got != tc.wantTop*3 {
			t.Errorf("height %d: top pixels = %d, want %d", tc.h, got, tc.wantTop*3)
		}
		if got := fb.Count(ColorGreen); got != (tc.h-tc.wantTop)*3 {
			t.Errorf("height %d: bottom pixels = %d, want %d", tc.h, got, (tc.h-tc.wantTop)*3)
		}
	}
}

func TestFillRect(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.FillRect(2, 3, 4, 2, ColorRed)
	if got := fb.Count(ColorRed); got != 8 {
		t.Errorf("pixels = %d, want 8", got)
	}
	if fb.GetPixel(5, 4) != ColorRed || fb.GetPixel(6, 4) == ColorRed {
		t.Error("rectangle edges wrong")
	}

	clipped := NewFramebuffer(10, 10)
	clipped.FillRect(-2, -2, 4, 4, ColorRed)
	if got := clipped.Count(ColorRed); got != 4 {
		t.Errorf("clipped pixels = %d, want 4", got)
	}
}

func TestDrawRectOutline(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.DrawRectOutline(1, 1, 4, 3, ColorWhite)
	if got := fb.Count(ColorWhite); got != 10 {
		t.Errorf("outline pixels = %d, want 10", got)
	}
}

func TestFillCircle(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.FillCircle(10, 10, 3, ColorWhite)

	// dx*dx+dy*dy < 9 holds for 25 lattice points.
	if got := fb.Count(ColorWhite); got != 25 {
		t.Errorf("pixels = %d, want 25", got)
	}
	if fb.GetPixel(13, 10) == ColorWhite {
		t.Error("boundary point (r, 0) must be excluded")
	}
	if fb.GetPixel(12, 12) != ColorWhite {
		t.Error("(2, 2) offset is inside radius 3")
	}

	edge := NewFramebuffer(5, 5)
	edge.FillCircle(0, 0, 3, ColorWhite) // clipped, must not panic
	if edge.GetPixel(0, 0) != ColorWhite {
		t.Error("clipped circle centre not drawn")
	}
}

func TestNegate(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.SetRGBA(0, 0, 10, 20, 30, 40)
	fb.SetPixel(1, 0, ColorWhite)
	fb.Negate()

	if got := fb.GetPixel(0, 0); got != RGBA(245, 235, 225, 40) {
		t.Errorf("negated = %v, want (245, 235, 225, 40)", got)
	}
	if got := fb.GetPixel(1, 0); got != ColorBlack {
		t.Errorf("negated white = %v, want black", got)
	}
}

func TestDownsample2x(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	fb.SetRGBA(0, 0, 0, 255, 0, 255)
	fb.SetRGBA(1, 0, 1, 255, 0, 255)
	fb.SetRGBA(0, 1, 2, 255, 1, 255)
	fb.SetRGBA(1, 1, 3, 254, 1, 255)
	fb.SetPixel(2, 2, ColorWhite) // odd row and column are dropped

	out := fb.Downsample2x()
	if out.Width != 1 || out.Height != 1 {
		t.Fatalf("size = %dx%d, want 1x1", out.Width, out.Height)
	}
	// R: (6+2)/4 = 2, G: (1019+2)/4 = 255, B: (2+2)/4 = 1.
	if got := out.GetPixel(0, 0); got != RGBA(2, 255, 1, 255) {
		t.Errorf("average = %v, want (2, 255, 1, 255)", got)
	}

	if tiny := NewFramebuffer(1, 1).Downsample2x(); len(tiny.Pix) != 0 {
		t.Errorf("1x1 downsample has %d bytes", len(tiny.Pix))
	}
}
