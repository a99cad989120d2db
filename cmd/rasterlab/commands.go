package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/taigrr/rasterlab/pkg/config"
	"github.com/taigrr/rasterlab/pkg/logging"
	"github.com/taigrr/rasterlab/pkg/pipeline"
	"github.com/taigrr/rasterlab/pkg/render"
)

func runRender(mode pipeline.Mode) func(context.Context, []string, io.Writer) error {
	return func(ctx context.Context, args []string, _ io.Writer) error {
		s := newSettings(mode.String())
		axes := s.fs.Bool("axes", false, "Overlay the X and Y axes")
		bounds := s.fs.Bool("bounds", false, "Outline the mesh's projected bounding box")
		if err := s.parse(args); err != nil {
			return err
		}
		cfg, err := s.load()
		if err != nil {
			return err
		}

		_, err = pipeline.Render(ctx, cfg, pipeline.Options{
			Mode:   mode,
			Axes:   *axes,
			Bounds: *bounds,
			Logger: newLogger(cfg),
		})
		return err
	}
}

func parseMode(s string) (pipeline.Mode, error) {
	for _, m := range []pipeline.Mode{pipeline.ModeFill, pipeline.ModeWireframe, pipeline.ModePoints} {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want fill, wireframe or points)", s)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}

func runPreview(ctx context.Context, args []string, stdout io.Writer) error {
	s := newSettings("preview")
	modeName := s.fs.String("mode", "fill", "Pass to draw (fill, wireframe, points)")
	cols := s.fs.Int("cols", 0, "Preview width in cells (0 = terminal width)")
	rows := s.fs.Int("rows", 0, "Preview height in cells (0 = terminal height)")
	if err := s.parse(args); err != nil {
		return err
	}
	cfg, err := s.load()
	if err != nil {
		return err
	}
	mode, err := parseMode(*modeName)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	mesh, _, err := pipeline.LoadMesh(cfg, logger)
	if err != nil {
		return err
	}
	fb, stats, err := pipeline.Draw(cfg, mesh, pipeline.Options{Mode: mode, Logger: logger})
	if err != nil {
		return err
	}
	logger.Debug("preview drawn", "faces", stats.Faces, "pixels", stats.Pixels)

	tc, tr := terminalSize()
	if *cols > 0 {
		tc = *cols
	}
	if *rows > 0 {
		tr = *rows
	} else {
		tr-- // leave the prompt line
	}
	_, err = fmt.Fprintln(stdout, render.Preview(fb, tc, tr))
	return err
}

func runTurntable(ctx context.Context, args []string, _ io.Writer) error {
	s := newSettings("turntable")
	dir := s.fs.String("dir", "frames", "Directory for frame_NNN images")
	modeName := s.fs.String("mode", "fill", "Pass to draw (fill, wireframe, points)")
	if err := s.parse(args); err != nil {
		return err
	}
	cfg, err := s.load()
	if err != nil {
		return err
	}
	mode, err := parseMode(*modeName)
	if err != nil {
		return err
	}

	_, err = pipeline.Turntable(ctx, cfg, *dir, pipeline.Options{
		Mode:   mode,
		Logger: newLogger(cfg),
	})
	return err
}

func runWatch(ctx context.Context, args []string, _ io.Writer) error {
	s := newSettings("watch")
	modeName := s.fs.String("mode", "fill", "Pass to draw (fill, wireframe, points)")
	if err := s.parse(args); err != nil {
		return err
	}
	cfg, err := s.load()
	if err != nil {
		return err
	}
	mode, err := parseMode(*modeName)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	paths := []string{cfg.Mesh}
	if s.configPath != "" {
		paths = append(paths, s.configPath)
	}

	return pipeline.Watch(ctx, paths, logger, func(ctx context.Context) error {
		// The config file may have changed too.
		cfg, err := s.load()
		if err != nil {
			return err
		}
		cfg.Progress = false
		_, err = pipeline.Render(ctx, cfg, pipeline.Options{Mode: mode, Logger: logger})
		return err
	})
}

func runPattern(ctx context.Context, args []string, _ io.Writer) error {
	s := newSettings("pattern")
	if err := s.parse(args); err != nil {
		return err
	}
	cfg, err := s.load()
	if err != nil {
		return err
	}
	_, err = pipeline.Pattern(ctx, cfg, pipeline.Options{Logger: newLogger(cfg)})
	return err
}

func runNegate(ctx context.Context, args []string, _ io.Writer) error {
	def := config.Default()
	fs := newFlagSet("negate")
	out := fs.String("o", "output_negative.png", "Output image (.png, .bmp, .tiff)")
	downsample := fs.Bool("downsample", false, "Average 2x2 blocks into half resolution")
	level := fs.String("log", def.LogLevel, "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("negate needs exactly one input image, got %d", fs.NArg())
	}

	_, err := pipeline.Negate(ctx, fs.Arg(0), *out, *downsample, pipeline.Options{
		Logger: logging.New(nil, *level),
	})
	return err
}
