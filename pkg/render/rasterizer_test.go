package render

import (
	"math"
	"math/rand"
	"testing"

	"github.com/taigrr/rasterlab/pkg/math3d"
	"github.com/taigrr/rasterlab/pkg/models"
)

// createTestRasterizer creates a 20x20 rasterizer where model units map to
// 10 pixels, so [-1, 1] spans the whole buffer.
func createTestRasterizer(shader *Shader) (*Rasterizer, *Framebuffer) {
	fb := NewFramebuffer(20, 20)
	return NewRasterizer(fb, NewProjector(fb, 10), shader), fb
}

// squareMesh is a unit square centred on the origin, as one quad.
func squareMesh() *models.Mesh {
	m := models.NewMesh("square")
	m.Vertices = []math3d.Vec3{
		math3d.V3(-0.5, -0.5, 0),
		math3d.V3(0.5, -0.5, 0),
		math3d.V3(0.5, 0.5, 0),
		math3d.V3(-0.5, 0.5, 0),
	}
	m.Faces = []models.Face{{V: []int{0, 1, 2, 3}}}
	m.CalculateBounds()
	return m
}

func TestDrawMeshQuad(t *testing.T) {
	r, fb := createTestRasterizer(NewShader(ShadingFlat, ColorRed, nil))
	st := r.DrawMesh(squareMesh())

	if st.Faces != 1 || st.Triangles != 2 || st.SkippedFaces != 0 {
		t.Errorf("stats = %+v, want 1 face, 2 triangles", st)
	}
	// Square spans pixels 5..14 on both axes.
	if got := fb.Count(ColorRed); got != 100 {
		t.Errorf("red pixels = %d, want 100", got)
	}
	if st.Pixels < 100 {
		t.Errorf("Pixels = %d, want at least 100 (diagonal may be written twice)", st.Pixels)
	}
	if fb.GetPixel(4, 10) == ColorRed || fb.GetPixel(15, 10) == ColorRed {
		t.Error("fill leaked outside the square")
	}
}

func TestDrawMeshSkipsUnrenderableFaces(t *testing.T) {
	m := squareMesh()
	m.Faces = append(m.Faces,
		models.Face{V: []int{0, 1, 9}},
		models.Face{V: []int{-1, 1, 2}},
	)

	faces := 0
	r, _ := createTestRasterizer(nil)
	r.OnFace = func() { faces++ }
	st := r.DrawMesh(m)

	if st.Faces != 1 || st.SkippedFaces != 2 {
		t.Errorf("stats = %+v, want 1 drawn, 2 skipped", st)
	}
	if faces != 3 {
		t.Errorf("OnFace called %d times, want 3", faces)
	}
}

func TestDrawMeshPaintersOrder(t *testing.T) {
	m := models.NewMesh("overlap")
	m.Vertices = []math3d.Vec3{
		math3d.V3(-1, -1, 0),
		math3d.V3(1, -1, 0),
		math3d.V3(0, 1, 0),
	}
	// Same triangle twice; the second, reversed, faces away and shades black.
	m.Faces = []models.Face{{V: []int{0, 1, 2}}, {V: []int{0, 2, 1}}}

	r, fb := createTestRasterizer(NewShader(ShadingLit, ColorRed, nil))
	r.DrawMesh(m)

	if got := fb.GetPixel(10, 10); got != Gray(0) {
		t.Errorf("centre pixel = %v, want opaque black from the later face", got)
	}
}

func TestDrawMeshDegenerate(t *testing.T) {
	m := models.NewMesh("line")
	m.Vertices = []math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(0.5, 0.5, 0), math3d.V3(1, 1, 0)}
	m.Faces = []models.Face{{V: []int{0, 1, 2}}}

	r, fb := createTestRasterizer(nil)
	st := r.DrawMesh(m)
	if st.Degenerate != 1 || st.Pixels != 0 {
		t.Errorf("stats = %+v, want 1 degenerate, 0 pixels", st)
	}
	if fb.Count(Color{}) != 400 {
		t.Error("degenerate face wrote pixels")
	}
}

func TestDrawMeshRandomDeterministic(t *testing.T) {
	renderOnce := func() []uint8 {
		r, fb := createTestRasterizer(NewShader(ShadingRandom, ColorRed, rand.New(rand.NewSource(7))))
		r.DrawMesh(squareMesh())
		return fb.Pix
	}
	a, b := renderOnce(), renderOnce()
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed rendered different images")
		}
	}
}

func TestDrawWireframe(t *testing.T) {
	r, fb := createTestRasterizer(nil)
	st := r.DrawWireframe(squareMesh(), ColorWhite)

	if st.Faces != 1 || st.Lines != 4 {
		t.Errorf("stats = %+v, want 1 face, 4 lines", st)
	}
	// Outline of a 11x11 pixel square: corners (5,5) to (15,15).
	if got := fb.Count(ColorWhite); got != 40 {
		t.Errorf("outline pixels = %d, want 40", got)
	}
	if fb.GetPixel(10, 10) == ColorWhite {
		t.Error("wireframe filled the interior")
	}
}

func TestDrawWireframeFarVertex(t *testing.T) {
	m := models.NewMesh("spike")
	m.Vertices = []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(1e17, 0, 0),
		math3d.V3(0, 0.5, 0),
		math3d.V3(math.NaN(), 0, 0),
	}
	m.Faces = []models.Face{{V: []int{0, 1, 2}}, {V: []int{0, 3, 2}}}

	r, fb := createTestRasterizer(nil)
	st := r.DrawWireframe(m, ColorWhite)

	if st.Lines != 6 || st.Faces != 2 {
		t.Errorf("stats = %+v, want 6 lines, 2 faces", st)
	}
	// The edge toward the far vertex runs off the right side.
	for x := 10; x < 20; x++ {
		if fb.GetPixel(x, 10) != ColorWhite {
			t.Errorf("pixel (%d, 10) not drawn", x)
		}
	}
	// The NaN vertex projects off the left side.
	for x := 0; x <= 10; x++ {
		if fb.GetPixel(x, 10) != ColorWhite {
			t.Errorf("pixel (%d, 10) not drawn", x)
		}
	}
}

func TestDrawMeshFarVertex(t *testing.T) {
	m := models.NewMesh("wedge")
	m.Vertices = []math3d.Vec3{
		math3d.V3(-1, -1, 0),
		math3d.V3(1e17, -1, 0),
		math3d.V3(-1, 1, 0),
		math3d.V3(math.Inf(1), 0, 0),
	}
	m.Faces = []models.Face{{V: []int{0, 1, 2}}, {V: []int{0, 3, 2}}}

	r, fb := createTestRasterizer(nil)
	st := r.DrawMesh(m)

	if st.Pixels != 400 || fb.Count(ColorRed) != 400 {
		t.Errorf("pixels = %d (%d red), want 400", st.Pixels, fb.Count(ColorRed))
	}
	if st.Triangles != 2 || st.Degenerate != 1 {
		t.Errorf("stats = %+v, want 2 triangles, 1 degenerate", st)
	}
}

func TestDrawWireframeBadIndices(t *testing.T) {
	m := squareMesh()
	m.Faces = []models.Face{
		{V: []int{0, 1, 9}},
		{V: []int{7, 8, 9}},
	}
	r, _ := createTestRasterizer(nil)
	st := r.DrawWireframe(m, ColorWhite)

	if st.Lines != 1 || st.Faces != 1 || st.SkippedFaces != 1 {
		t.Errorf("stats = %+v, want 1 line, 1 face, 1 skipped", st)
	}
}

func TestDrawPoints(t *testing.T) {
	m := squareMesh()
	m.Vertices = append(m.Vertices, math3d.V3(5, 5, 0)) // off-screen

	r, fb := createTestRasterizer(nil)
	st := r.DrawPoints(m, ColorWhite)

	if st.Pixels != 4 {
		t.Errorf("Pixels = %d, want 4", st.Pixels)
	}
	if fb.GetPixel(5, 15) != ColorWhite {
		t.Error("vertex (-0.5, -0.5) should land on (5, 15)")
	}
}

func TestDrawAxes(t *testing.T) {
	r, fb := createTestRasterizer(nil)
	r.DrawAxes(0.5)

	if fb.GetPixel(15, 10) != ColorRed {
		t.Error("X axis should end at (15, 10)")
	}
	if fb.GetPixel(10, 5) != ColorGreen {
		t.Error("Y axis should end at (10, 5)")
	}
	if fb.GetPixel(10, 10) != ColorBlue {
		t.Error("Z axis collapses onto the origin")
	}
}

func TestStatsAdd(t *testing.T) {
	a := Stats{Faces: 1, Pixels: 10}
	a.Add(Stats{Faces: 2, SkippedFaces: 1, Triangles: 3, Degenerate: 1, Lines: 4, Pixels: 5})
	want := Stats{Faces: 3, SkippedFaces: 1, Triangles: 3, Degenerate: 1, Lines: 4, Pixels: 15}
	if a != want {
		t.Errorf("Add = %+v, want %+v", a, want)
	}
}

func BenchmarkDrawMesh(b *testing.B) {
	fb := NewFramebuffer(512, 512)
	r := NewRasterizer(fb, NewProjector(fb, DefaultScale), NewShader(ShadingLit, ColorRed, nil))
	m := squareMesh()
	for b.Loop() {
		r.DrawMesh(m)
	}
}
