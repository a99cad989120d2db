package render

import "testing"

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		wantPixels     int
	}{
		{"zero length", 0, 0, 0, 0, 1},
		{"horizontal", 0, 0, 5, 0, 6},
		{"reversed", 5, 0, 0, 0, 6},
		{"vertical", 3, 1, 3, 8, 8},
		{"diagonal", 0, 0, 3, 3, 4},
		{"steep", 0, 0, 2, 6, 7},
		{"partly off-screen", -5, 2, 5, 2, 6},
		{"fully off-screen", -5, -5, -1, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			DrawLine(fb, tc.x0, tc.y0, tc.x1, tc.y1, ColorWhite)

			if got := fb.Count(ColorWhite); got != tc.wantPixels {
				t.Errorf("pixels = %d, want %d", got, tc.wantPixels)
			}
			if fb.InBounds(tc.x0, tc.y0) && fb.GetPixel(tc.x0, tc.y0) != ColorWhite {
				t.Errorf("start (%d,%d) not plotted", tc.x0, tc.y0)
			}
			if fb.InBounds(tc.x1, tc.y1) && fb.GetPixel(tc.x1, tc.y1) != ColorWhite {
				t.Errorf("end (%d,%d) not plotted", tc.x1, tc.y1)
			}
		})
	}
}

func TestDrawLineSinglePixel(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.DrawLine(2, 3, 2, 3, ColorRed)
	if fb.Count(ColorRed) != 1 || fb.GetPixel(2, 3) != ColorRed {
		t.Error("zero-length line should plot exactly its one pixel")
	}
}

func BenchmarkDrawLine(b *testing.B) {
	fb := NewFramebuffer(512, 512)
	for b.Loop() {
		DrawLine(fb, 0, 0, 511, 300, ColorWhite)
	}
}
