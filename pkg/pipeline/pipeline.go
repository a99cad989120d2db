// Package pipeline runs complete render passes: load a mesh, rasterize it
// into a framebuffer, encode the result and write it to disk.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/taigrr/rasterlab/pkg/codec"
	"github.com/taigrr/rasterlab/pkg/config"
	"github.com/taigrr/rasterlab/pkg/logging"
	"github.com/taigrr/rasterlab/pkg/math3d"
	"github.com/taigrr/rasterlab/pkg/models"
	"github.com/taigrr/rasterlab/pkg/render"
)

// Mode selects which mesh pass a render runs.
type Mode int

const (
	ModeFill      Mode = iota // filled, shaded triangles
	ModeWireframe             // polygon outlines in the base colour
	ModePoints                // one pixel per vertex in the base colour
)

func (m Mode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeWireframe:
		return "wireframe"
	case ModePoints:
		return "points"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options tune a render beyond what Config carries.
type Options struct {
	Mode   Mode
	Axes   bool        // overlay the X and Y axes
	Bounds bool        // outline the mesh's projected XY bounding box
	Logger *log.Logger // nil discards

	// Progress forces a progress bar onto this writer. When nil a bar is
	// drawn on stderr only if Config.Progress is set and stderr is a
	// terminal.
	Progress io.Writer
}

// Report describes one finished pass.
type Report struct {
	RunID        uuid.UUID
	Output       string
	Format       string
	Width        int
	Height       int
	Mesh         string
	Vertices     int
	Parse        models.ParseStats
	Stats        render.Stats
	RawBytes     int
	EncodedBytes int
	Ratio        float64
	Elapsed      time.Duration
}

func (r Report) log(logger *log.Logger, msg string) {
	logger.Info(msg,
		"run", r.RunID,
		"output", r.Output,
		"format", r.Format,
		"size", fmt.Sprintf("%dx%d", r.Width, r.Height),
		"faces", r.Stats.Faces,
		"skipped", r.Stats.SkippedFaces,
		"pixels", r.Stats.Pixels,
		"bytes", r.EncodedBytes,
		"ratio", fmt.Sprintf("%.2f", r.Ratio),
		"elapsed", r.Elapsed.Round(time.Millisecond),
	)
}

// Render loads cfg.Mesh, draws it and writes cfg.Output.
func Render(ctx context.Context, cfg config.Config, opts Options) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	logger := logging.OrDiscard(opts.Logger)

	mesh, parse, err := LoadMesh(cfg, logger)
	if err != nil {
		return Report{}, err
	}
	rep, err := RenderMesh(ctx, cfg, mesh, opts)
	rep.Parse = parse
	return rep, err
}

// LoadMesh reads cfg.Mesh and, when cfg.Fit is set, recentres and scales it
// so its largest dimension equals cfg.Fit.
func LoadMesh(cfg config.Config, logger *log.Logger) (*models.Mesh, models.ParseStats, error) {
	logger = logging.OrDiscard(logger)

	mesh, parse, err := models.LoadWithStats(cfg.Mesh)
	if err != nil {
		return nil, parse, fmt.Errorf("load mesh: %w", err)
	}
	logger.Info("mesh loaded",
		"name", mesh.Name,
		"vertices", mesh.VertexCount(),
		"faces", mesh.FaceCount(),
		"triangles", mesh.TriangleCount(),
	)
	if parse.SkippedVerts+parse.DroppedTokens+parse.ShortFaces > 0 {
		logger.Warn("malformed records dropped",
			"vertices", parse.SkippedVerts,
			"face_tokens", parse.DroppedTokens,
			"faces", parse.ShortFaces,
		)
	}

	if cfg.Fit > 0 {
		mesh = mesh.Fitted(cfg.Fit)
		logger.Debug("mesh fitted", "extent", cfg.Fit)
	}
	return mesh, parse, nil
}

// RenderMesh draws an already loaded mesh and writes cfg.Output.
func RenderMesh(ctx context.Context, cfg config.Config, mesh *models.Mesh, opts Options) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	logger := logging.OrDiscard(opts.Logger)
	start := time.Now()

	fb, stats, err := Draw(cfg, mesh, opts)
	if err != nil {
		return Report{}, err
	}
	rep, err := WriteImage(fb, cfg.Output)
	if err != nil {
		return rep, err
	}
	rep.Mesh = mesh.Name
	rep.Vertices = mesh.VertexCount()
	rep.Stats = stats
	rep.Elapsed = time.Since(start)

	if stats.Degenerate > 0 {
		logger.Debug("degenerate triangles skipped", "count", stats.Degenerate)
	}
	rep.log(logger, "render complete")
	return rep, nil
}

// Draw rasterizes mesh into a new framebuffer sized and coloured by cfg.
// Random shading is seeded from cfg.Seed, so equal configs give equal images.
func Draw(cfg config.Config, mesh *models.Mesh, opts Options) (*render.Framebuffer, render.Stats, error) {
	base, err := cfg.BaseColor()
	if err != nil {
		return nil, render.Stats{}, fmt.Errorf("base color: %w", err)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, render.Stats{}, fmt.Errorf("background color: %w", err)
	}
	mode, err := cfg.ShadingMode()
	if err != nil {
		return nil, render.Stats{}, err
	}

	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	fb.Clear(bg)

	shader := render.NewShader(mode, base, rand.New(rand.NewSource(cfg.Seed)))
	r := render.NewRasterizer(fb, render.NewProjector(fb, cfg.Scale), shader)

	if opts.Mode != ModePoints {
		if bar := newProgress(cfg, opts, mesh.FaceCount(), opts.Mode.String()); bar != nil {
			r.OnFace = func() { _ = bar.Add(1) }
			defer bar.Finish()
		}
	}

	var stats render.Stats
	switch opts.Mode {
	case ModeFill:
		stats = r.DrawMesh(mesh)
	case ModeWireframe:
		stats = r.DrawWireframe(mesh, base)
	case ModePoints:
		stats = r.DrawPoints(mesh, base)
	default:
		return nil, render.Stats{}, fmt.Errorf("unknown render mode %v", opts.Mode)
	}
	if opts.Axes {
		r.DrawAxes(1)
	}
	if opts.Bounds && mesh.VertexCount() > 0 {
		drawBounds(r, mesh)
	}
	return fb, stats, nil
}

// drawBounds outlines the screen rectangle covered by the mesh bounds in
// yellow. Z is ignored by the projection.
func drawBounds(r *render.Rasterizer, mesh *models.Mesh) {
	proj := r.Projector()
	x0, y0 := proj.Project(math3d.V3(mesh.BoundsMin.X, mesh.BoundsMax.Y, 0))
	x1, y1 := proj.Project(math3d.V3(mesh.BoundsMax.X, mesh.BoundsMin.Y, 0))
	r.Framebuffer().DrawRectOutline(x0, y0, x1-x0+1, y1-y0+1, render.ColorYellow)
}

// WriteImage encodes fb with the codec matching path's extension and writes
// it. The returned report carries a fresh RunID and the encoded sizes.
func WriteImage(fb *render.Framebuffer, path string) (Report, error) {
	rep := Report{
		RunID:  uuid.New(),
		Output: path,
		Width:  fb.Width,
		Height: fb.Height,
	}

	c, err := codec.ForPath(path)
	if err != nil {
		return rep, err
	}
	rep.Format = c.Name()

	data, err := c.Encode(fb.Pix, fb.Width, fb.Height)
	if err != nil {
		return rep, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return rep, fmt.Errorf("write output: %w", err)
	}

	rep.RawBytes = len(fb.Pix)
	rep.EncodedBytes = len(data)
	rep.Ratio = codec.Ratio(rep.RawBytes, rep.EncodedBytes)
	return rep, nil
}

// ReadImage decodes the image at path into a framebuffer.
func ReadImage(path string) (*render.Framebuffer, error) {
	c, err := codec.ForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	pix, w, h, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &render.Framebuffer{Width: w, Height: h, Pix: pix}, nil
}
