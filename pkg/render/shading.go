package render

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/taigrr/rasterlab/pkg/math3d"
	"github.com/taigrr/rasterlab/pkg/models"
)

// ShadingMode selects how a face's single fill color is chosen.
type ShadingMode int

const (
	// ShadingFlat fills every face with the shader's base color.
	ShadingFlat ShadingMode = iota
	// ShadingRandom gives every face an independent random color.
	ShadingRandom
	// ShadingLit shades every face grey by the angle between its normal and
	// the light direction.
	ShadingLit
)

func (m ShadingMode) String() string {
	switch m {
	case ShadingFlat:
		return "flat"
	case ShadingRandom:
		return "random"
	case ShadingLit:
		return "lit"
	default:
		return fmt.Sprintf("ShadingMode(%d)", int(m))
	}
}

// ParseShadingMode parses "flat", "random" or "lit" (case-insensitive).
func ParseShadingMode(s string) (ShadingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "":
		return ShadingFlat, nil
	case "random":
		return ShadingRandom, nil
	case "lit":
		return ShadingLit, nil
	default:
		return ShadingFlat, fmt.Errorf("unknown shading mode %q", s)
	}
}

// Shader picks a face color. Rand is required for ShadingRandom. Light is a
// unit vector, set through SetLight; it defaults to the view direction
// (0, 0, 1) when zero.
type Shader struct {
	Mode  ShadingMode
	Base  Color
	Light math3d.Vec3
	Rand  *rand.Rand
}

// NewShader returns a shader with the default light direction. A non-nil
// rng is used for ShadingRandom.
func NewShader(mode ShadingMode, base Color, rng *rand.Rand) *Shader {
	s := &Shader{
		Mode: mode,
		Base: base,
		Rand: rng,
	}
	s.SetLight(math3d.ViewDir())
	return s
}

// SetLight points the light along dir, normalized once here so FaceColor
// can take the dot product directly.
func (s *Shader) SetLight(dir math3d.Vec3) {
	s.Light = dir.Normalize()
}

// FaceColor returns the fill color of the triangle (v0, v1, v2), given in
// model space. The random mode draws R, G, then B from s.Rand, one value in
// [0, 255] each, so a fixed seed reproduces the same sequence of colors.
func (s *Shader) FaceColor(v0, v1, v2 math3d.Vec3) Color {
	switch s.Mode {
	case ShadingRandom:
		if s.Rand == nil {
			return s.Base
		}
		r := uint8(s.Rand.Intn(256))
		g := uint8(s.Rand.Intn(256))
		b := uint8(s.Rand.Intn(256))
		return RGB(r, g, b)

	case ShadingLit:
		light := s.Light
		if light == (math3d.Vec3{}) {
			light = math3d.ViewDir()
		}
		n := models.FaceNormal(v0, v1, v2)
		brightness := math3d.Clamp(n.Dot(light), 0, 1)
		return MultiplyColor(ColorWhite, brightness)

	default:
		return s.Base
	}
}
