// Package config holds render settings and loads them from TOML or YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/rasterlab/pkg/render"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes one render pass.
type Config struct {
	Output     string  `toml:"output" yaml:"output"`
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	Mesh       string  `toml:"mesh" yaml:"mesh"`
	Shading    string  `toml:"shading" yaml:"shading"` // flat, random or lit
	Scale      float64 `toml:"scale" yaml:"scale"`
	Seed       int64   `toml:"seed" yaml:"seed"`
	Color      string  `toml:"color" yaml:"color"`           // "R,G,B"
	Background string  `toml:"background" yaml:"background"` // "R,G,B" or "R,G,B,A"
	Fit        float64 `toml:"fit" yaml:"fit"`               // largest mesh dimension after fitting; 0 keeps model units
	Frames     int     `toml:"frames" yaml:"frames"`         // turntable frame count
	LogLevel   string  `toml:"log_level" yaml:"log_level"`
	Progress   bool    `toml:"progress" yaml:"progress"`
}

// Default returns the built-in settings: a 512x512 PNG of a flat red mesh on
// transparent black, 250 pixels per model unit.
func Default() Config {
	return Config{
		Output:     "output.png",
		Width:      512,
		Height:     512,
		Mesh:       "stanford_bunny_simplified.obj",
		Shading:    "flat",
		Scale:      render.DefaultScale,
		Seed:       1,
		Color:      "255,0,0",
		Background: "0,0,0,0",
		Frames:     36,
		LogLevel:   "info",
		Progress:   true,
	}
}

// Load reads path over the defaults. The format is chosen by extension:
// .toml, or .yaml/.yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: unknown config extension %q", ErrInvalidConfig, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidConfig, c.Scale)
	}
	if c.Fit < 0 {
		return fmt.Errorf("%w: fit %v must not be negative", ErrInvalidConfig, c.Fit)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("%w: frames %d must be positive", ErrInvalidConfig, c.Frames)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	if _, err := c.ShadingMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.BaseColor(); err != nil {
		return fmt.Errorf("%w: color: %w", ErrInvalidConfig, err)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ShadingMode parses the Shading field.
func (c Config) ShadingMode() (render.ShadingMode, error) {
	return render.ParseShadingMode(c.Shading)
}

// BaseColor parses the Color field.
func (c Config) BaseColor() (render.Color, error) {
	return ParseColor(c.Color)
}

// BackgroundColor parses the Background field.
func (c Config) BackgroundColor() (render.Color, error) {
	return ParseColor(c.Background)
}

// ParseColor parses "R,G,B" or "R,G,B,A" with each channel in 0-255.
// Alpha defaults to 255.
func ParseColor(s string) (render.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return render.Color{}, fmt.Errorf("%q: want R,G,B or R,G,B,A", s)
	}

	ch := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return render.Color{}, fmt.Errorf("%q: channel %d must be an integer in 0-255", s, i)
		}
		ch[i] = uint8(v)
	}
	return render.RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}
