package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/taigrr/rasterlab/pkg/config"
	"github.com/taigrr/rasterlab/pkg/logging"
)

// settings binds the render config to a flag set. A -config file is loaded
// first; only flags given on the command line override it.
type settings struct {
	fs         *flag.FlagSet
	configPath string
	flags      config.Config
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func newSettings(name string) *settings {
	s := &settings{fs: newFlagSet(name)}
	fs := s.fs

	def := config.Default()
	fs.StringVar(&s.configPath, "config", "", "Config file (.toml, .yaml)")
	fs.StringVar(&s.flags.Output, "o", def.Output, "Output image (.png, .bmp, .tiff)")
	fs.StringVar(&s.flags.Mesh, "mesh", def.Mesh, "Mesh file (.obj, .glb); also accepted as the first argument")
	fs.IntVar(&s.flags.Width, "width", def.Width, "Image width")
	fs.IntVar(&s.flags.Height, "height", def.Height, "Image height")
	fs.StringVar(&s.flags.Shading, "shading", def.Shading, "Face shading (flat, random, lit)")
	fs.Float64Var(&s.flags.Scale, "scale", def.Scale, "Pixels per model unit")
	fs.Int64Var(&s.flags.Seed, "seed", def.Seed, "Seed for random shading")
	fs.StringVar(&s.flags.Color, "color", def.Color, "Base color (R,G,B)")
	fs.StringVar(&s.flags.Background, "bg", def.Background, "Background color (R,G,B or R,G,B,A)")
	fs.Float64Var(&s.flags.Fit, "fit", def.Fit, "Center the mesh and scale its largest side to this many units (0 = off)")
	fs.IntVar(&s.flags.Frames, "frames", def.Frames, "Turntable frame count")
	fs.StringVar(&s.flags.LogLevel, "log", def.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&s.flags.Progress, "progress", def.Progress, "Show a progress bar on a terminal")
	return s
}

func (s *settings) parse(args []string) error {
	return s.fs.Parse(args)
}

// load returns the effective config: defaults, then the -config file, then
// the flags that were set, then a positional mesh path.
func (s *settings) load() (config.Config, error) {
	cfg := config.Default()
	if s.configPath != "" {
		var err error
		if cfg, err = config.Load(s.configPath); err != nil {
			return cfg, err
		}
	}

	s.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = s.flags.Output
		case "mesh":
			cfg.Mesh = s.flags.Mesh
		case "width":
			cfg.Width = s.flags.Width
		case "height":
			cfg.Height = s.flags.Height
		case "shading":
			cfg.Shading = s.flags.Shading
		case "scale":
			cfg.Scale = s.flags.Scale
		case "seed":
			cfg.Seed = s.flags.Seed
		case "color":
			cfg.Color = s.flags.Color
		case "bg":
			cfg.Background = s.flags.Background
		case "fit":
			cfg.Fit = s.flags.Fit
		case "frames":
			cfg.Frames = s.flags.Frames
		case "log":
			cfg.LogLevel = s.flags.LogLevel
		case "progress":
			cfg.Progress = s.flags.Progress
		}
	})

	switch s.fs.NArg() {
	case 0:
	case 1:
		cfg.Mesh = s.fs.Arg(0)
	default:
		return cfg, fmt.Errorf("expected at most one mesh argument, got %d", s.fs.NArg())
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *log.Logger {
	return logging.New(nil, cfg.LogLevel)
}
