package pipeline

import (
	"context"
	"time"

	"github.com/taigrr/rasterlab/pkg/config"
	"github.com/taigrr/rasterlab/pkg/logging"
	"github.com/taigrr/rasterlab/pkg/render"
)

// patternRadius is the circle radius on a 1080 pixel tall canvas; other
// sizes scale it by their shorter side.
const patternRadius = 250

// DrawPattern paints the test card: cyan over green halves, an 11x11 red
// and an 11x11 blue square near the top-left corner, and a white circle in
// the centre.
func DrawPattern(w, h int) *render.Framebuffer {
	fb := render.NewFramebuffer(w, h)
	fb.FillSplit(render.ColorCyan, render.ColorGreen)
	fb.FillRect(20, 20, 11, 11, render.ColorRed)
	fb.FillRect(40, 20, 11, 11, render.ColorBlue)
	fb.FillCircle(w/2, h/2, min(w, h)*patternRadius/1080, render.ColorWhite)
	return fb
}

// Pattern draws the test card at cfg's size and writes cfg.Output. The
// report's Ratio is raw buffer bytes over encoded bytes.
func Pattern(ctx context.Context, cfg config.Config, opts Options) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	logger := logging.OrDiscard(opts.Logger)
	start := time.Now()

	fb := DrawPattern(cfg.Width, cfg.Height)
	rep, err := WriteImage(fb, cfg.Output)
	if err != nil {
		return rep, err
	}
	rep.Elapsed = time.Since(start)
	logger.Info("compression",
		"raw_bytes", rep.RawBytes,
		"encoded_bytes", rep.EncodedBytes,
		"ratio", rep.Ratio,
	)
	rep.log(logger, "pattern complete")
	return rep, nil
}

// Negate reads in, inverts its colours, optionally halves its resolution
// and writes out. Input and output formats follow their extensions.
func Negate(ctx context.Context, in, out string, downsample bool, opts Options) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	logger := logging.OrDiscard(opts.Logger)
	start := time.Now()

	fb, err := ReadImage(in)
	if err != nil {
		return Report{}, err
	}
	logger.Debug("image decoded", "path", in, "width", fb.Width, "height", fb.Height)

	fb.Negate()
	if downsample {
		fb = fb.Downsample2x()
	}

	rep, err := WriteImage(fb, out)
	if err != nil {
		return rep, err
	}
	rep.Elapsed = time.Since(start)
	rep.log(logger, "negate complete")
	return rep, nil
}
