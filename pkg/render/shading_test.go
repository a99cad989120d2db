package render

import (
	"math"
	"math/rand"
	"testing"

	"github.com/taigrr/rasterlab/pkg/math3d"
)

var (
	triCCW = [3]math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0)}
	triCW  = [3]math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(0, 1, 0), math3d.V3(1, 0, 0)}
)

func TestParseShadingMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ShadingMode
		wantErr bool
	}{
		{"flat", ShadingFlat, false},
		{"", ShadingFlat, false},
		{"Random", ShadingRandom, false},
		{" lit ", ShadingLit, false},
		{"gouraud", ShadingFlat, true},
	}
	for _, tc := range tests {
		got, err := ParseShadingMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseShadingMode(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseShadingMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if ShadingLit.String() != "lit" {
		t.Errorf("ShadingLit.String() = %q", ShadingLit.String())
	}
}

func TestShaderFlat(t *testing.T) {
	s := NewShader(ShadingFlat, ColorRed, nil)
	if got := s.FaceColor(triCCW[0], triCCW[1], triCCW[2]); got != ColorRed {
		t.Errorf("flat color = %v, want red", got)
	}
}

func TestShaderRandomReproducible(t *testing.T) {
	a := NewShader(ShadingRandom, ColorRed, rand.New(rand.NewSource(42)))
	b := NewShader(ShadingRandom, ColorRed, rand.New(rand.NewSource(42)))

	distinct := make(map[Color]bool)
	for i := range 50 {
		ca := a.FaceColor(triCCW[0], triCCW[1], triCCW[2])
		cb := b.FaceColor(triCCW[0], triCCW[1], triCCW[2])
		if ca != cb {
			t.Fatalf("face %d: %v != %v for the same seed", i, ca, cb)
		}
		if ca.A != 255 {
			t.Fatalf("random color %v is not opaque", ca)
		}
		distinct[ca] = true
	}
	if len(distinct) < 2 {
		t.Error("random shading produced a single color")
	}
}

func TestShaderRandomWithoutSource(t *testing.T) {
	s := &Shader{Mode: ShadingRandom, Base: ColorBlue}
	if got := s.FaceColor(triCCW[0], triCCW[1], triCCW[2]); got != ColorBlue {
		t.Errorf("nil source color = %v, want base", got)
	}
}

func TestShaderLit(t *testing.T) {
	tests := []struct {
		name string
		tri  [3]math3d.Vec3
		want uint8
	}{
		{"facing viewer", triCCW, 255},
		{"facing away", triCW, 0},
		{"tilted 45 degrees", [3]math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 1)}, 180},
		{"edge on", [3]math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, 1)}, 0},
		{"degenerate", [3]math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(1, 1, 1), math3d.V3(2, 2, 2)}, 0},
	}
	s := NewShader(ShadingLit, ColorRed, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.FaceColor(tc.tri[0], tc.tri[1], tc.tri[2])
			if got != Gray(tc.want) {
				t.Errorf("lit color = %v, want grey %d", got, tc.want)
			}
		})
	}
}

func TestShaderLitDefaultsLight(t *testing.T) {
	s := &Shader{Mode: ShadingLit}
	if got := s.FaceColor(triCCW[0], triCCW[1], triCCW[2]); got != ColorWhite {
		t.Errorf("zero light should default to view direction, got %v", got)
	}
}

func TestShaderSetLight(t *testing.T) {
	tests := []struct {
		name string
		dir  math3d.Vec3
		want uint8
	}{
		{"long view direction", math3d.V3(0, 0, 40), 255},
		{"opposite", math3d.V3(0, 0, -3), 0},
		{"45 degrees", math3d.V3(0, 5, 5), 180},
		{"zero falls back to view", math3d.Vec3{}, 255},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewShader(ShadingLit, ColorRed, nil)
			s.SetLight(tc.dir)
			if l := s.Light.Len(); l != 0 && math.Abs(l-1) > 1e-12 {
				t.Errorf("stored light length = %v, want 1", l)
			}
			if got := s.FaceColor(triCCW[0], triCCW[1], triCCW[2]); got != Gray(tc.want) {
				t.Errorf("lit color = %v, want grey %d", got, tc.want)
			}
		})
	}
}
