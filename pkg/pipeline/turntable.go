package pipeline

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/rasterlab/pkg/config"
	"github.com/taigrr/rasterlab/pkg/logging"
	"github.com/taigrr/rasterlab/pkg/math3d"
)

const (
	springFPS       = 60
	springFrequency = 12.0
	springDamping   = 1.0 // critically damped, never overshoots
	springSubsteps  = 15  // spring ticks between two frames
)

// YawSchedule returns the yaw, in radians, of each of n frames. Frame i
// targets 2*pi*i/n and the yaw eases toward it on a critically damped
// spring, so the sequence starts at 0, never decreases and never passes
// its target.
func YawSchedule(n int) []float64 {
	if n <= 0 {
		return nil
	}
	spring := harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping)
	yaws := make([]float64, n)
	var yaw, vel float64
	for i := range n {
		target := 2 * math.Pi * float64(i) / float64(n)
		for range springSubsteps {
			yaw, vel = spring.Update(yaw, vel, target)
		}
		yaws[i] = yaw
	}
	return yaws
}

// FrameName is the file name of frame i, e.g. frame_007.png.
func FrameName(i int, ext string) string {
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("frame_%03d%s", i, ext)
}

// Turntable renders cfg.Frames images of the mesh turning once about the Y
// axis into dir. The file extension of cfg.Output picks the format.
// Cancellation is checked between frames.
func Turntable(ctx context.Context, cfg config.Config, dir string, opts Options) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := logging.OrDiscard(opts.Logger)

	mesh, parse, err := LoadMesh(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame dir: %w", err)
	}

	ext := filepath.Ext(cfg.Output)
	yaws := YawSchedule(cfg.Frames)
	reports := make([]Report, 0, len(yaws))
	for i, yaw := range yaws {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		frame := cfg
		frame.Output = filepath.Join(dir, FrameName(i, ext))

		rep, err := RenderMesh(ctx, frame, mesh.Transformed(math3d.RotateY(yaw)), opts)
		if err != nil {
			return reports, fmt.Errorf("frame %d: %w", i, err)
		}
		rep.Parse = parse
		reports = append(reports, rep)
		logger.Debug("frame written", "frame", i, "yaw", yaw)
	}
	logger.Info("turntable complete", "frames", len(reports), "dir", dir)
	return reports, nil
}
